package checkout

import (
	"context"

	"github.com/lucasmre/storefront-api/models"
	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore writes orders to the orders and order_items tables.
func NewGormStore(db *gorm.DB) OrderStore {
	return &gormStore{db: db}
}

func (s *gormStore) InsertOrder(ctx context.Context, order *models.Order) error {
	// Postgres fills the uuid primary key; GORM reads it back via RETURNING.
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *gormStore) InsertOrderItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&items).Error
}
