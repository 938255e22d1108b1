package catalog

import (
	"context"

	"github.com/lucasmre/storefront-api/models"
	"gorm.io/gorm"
)

// DataServiceError reports a failed call to the backing data service.
type DataServiceError struct {
	Op  string
	Err error
}

func (e *DataServiceError) Error() string {
	return "catalog: " + e.Op + ": " + e.Err.Error()
}

func (e *DataServiceError) Unwrap() error { return e.Err }

// ProductSource lists product records from the data service, newest first.
// An empty category means no category filter.
type ProductSource interface {
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
}

// Client is the read-only view of the product catalog.
type Client struct {
	source ProductSource
}

func NewClient(source ProductSource) *Client {
	return &Client{source: source}
}

// FetchProducts returns all products ordered by creation time, most recent
// first. An empty catalog yields an empty slice, never nil.
func (c *Client) FetchProducts(ctx context.Context, category string) ([]models.Product, error) {
	products, err := c.source.ListProducts(ctx, category)
	if err != nil {
		return nil, &DataServiceError{Op: "fetch products", Err: err}
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

type gormSource struct {
	db *gorm.DB
}

// NewGormSource exposes the products table as a ProductSource.
func NewGormSource(db *gorm.DB) ProductSource {
	return &gormSource{db: db}
}

func (s *gormSource) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{}).Order("created_at desc")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
