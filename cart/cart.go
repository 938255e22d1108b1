package cart

import (
	"context"
	"encoding/json"

	"github.com/lucasmre/storefront-api/models"
)

// LineItem is one product entry in a cart with its own quantity.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
	Quantity int     `json:"quantity"`
}

// Cart holds the ordered line items of one storefront session. Every mutation
// is mirrored to the session's Storage before returning, so the persisted
// state is the source of truth between requests.
type Cart struct {
	items   []LineItem
	storage Storage
}

func New(storage Storage) *Cart {
	return &Cart{storage: storage}
}

// Restore loads the persisted line items. Missing or corrupt state is treated
// as an empty cart, never as an error.
func (c *Cart) Restore(ctx context.Context) {
	c.items = nil
	data, err := c.storage.Load(ctx)
	if err != nil || len(data) == 0 {
		return
	}
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return
	}
	c.items = items
}

// Add merges the product into the cart: an existing line item gets its
// quantity incremented, otherwise a new line item with quantity 1 is appended.
func (c *Cart) Add(ctx context.Context, product models.Product) error {
	for i := range c.items {
		if c.items[i].ID == product.ID {
			c.items[i].Quantity++
			return c.persist(ctx)
		}
	}
	c.items = append(c.items, LineItem{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		ImageURL: product.ImageURL,
		Quantity: 1,
	})
	return c.persist(ctx)
}

// Remove deletes the line item with the given product id. Removing an absent
// id is a no-op.
func (c *Cart) Remove(ctx context.Context, productID string) error {
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.persist(ctx)
		}
	}
	return nil
}

// SetQuantity sets the line item's quantity, clamping values below 1 up to 1.
// A quantity can never drop below 1; setting an absent id is a no-op.
func (c *Cart) SetQuantity(ctx context.Context, productID string, quantity int) error {
	for i := range c.items {
		if c.items[i].ID == productID {
			if quantity < 1 {
				quantity = 1
			}
			c.items[i].Quantity = quantity
			return c.persist(ctx)
		}
	}
	return nil
}

// Total is the sum of price times quantity over all line items.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities, not the number of distinct products.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Clear empties the cart and persists the empty state.
func (c *Cart) Clear(ctx context.Context) error {
	c.items = nil
	return c.storage.Clear(ctx)
}

// Items returns a copy of the current line items; mutating it does not touch
// the cart or its persisted state.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) persist(ctx context.Context) error {
	items := c.items
	if items == nil {
		items = []LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.storage.Save(ctx, data)
}
