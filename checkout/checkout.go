package checkout

import (
	"context"

	"github.com/lucasmre/storefront-api/cart"
	"github.com/lucasmre/storefront-api/models"
)

// OrderCreationError reports a failed order-header insert; nothing was written.
type OrderCreationError struct {
	Err error
}

func (e *OrderCreationError) Error() string {
	return "checkout: create order: " + e.Err.Error()
}

func (e *OrderCreationError) Unwrap() error { return e.Err }

// OrderLineCreationError reports a failed line-item insert. The order header
// with the given id already exists server-side with zero lines; it is not
// rolled back.
type OrderLineCreationError struct {
	OrderID string
	Err     error
}

func (e *OrderLineCreationError) Error() string {
	return "checkout: create order lines for order " + e.OrderID + ": " + e.Err.Error()
}

func (e *OrderLineCreationError) Unwrap() error { return e.Err }

// OrderStore writes order records to the data service.
type OrderStore interface {
	// InsertOrder persists the header and fills in its generated id.
	InsertOrder(ctx context.Context, order *models.Order) error
	InsertOrderItems(ctx context.Context, items []models.OrderItem) error
}

// CustomerInfo is the checkout form data attached to an order header.
type CustomerInfo struct {
	Name  string
	Email string
	Phone string
}

// Service submits orders to the data service.
type Service struct {
	store OrderStore
}

func NewService(store OrderStore) *Service {
	return &Service{store: store}
}

// CreateOrder inserts one pending order header and then its line items in a
// single batch. The two inserts are intentionally not atomic: a failed line
// insert leaves the pending header in place with no lines. There is no retry
// and no idempotency key; calling twice creates two independent orders.
func (s *Service) CreateOrder(ctx context.Context, customer CustomerInfo, totalAmount float64, items []cart.LineItem) (*models.Order, error) {
	order := &models.Order{
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		TotalAmount:   totalAmount,
		Status:        models.OrderStatusPending,
	}
	if err := s.store.InsertOrder(ctx, order); err != nil {
		return nil, &OrderCreationError{Err: err}
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	if err := s.store.InsertOrderItems(ctx, orderItems); err != nil {
		return nil, &OrderLineCreationError{OrderID: order.ID, Err: err}
	}

	return order, nil
}
