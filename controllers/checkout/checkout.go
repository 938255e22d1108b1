package checkoutControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/lucasmre/storefront-api/cart"
	"github.com/lucasmre/storefront-api/checkout"
	"github.com/lucasmre/storefront-api/validation"
)

// CheckoutRequest is the customer form submitted from the checkout page. The
// order total is computed from the server-held cart, never taken from the
// client.
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" validate:"required,phone"`
}

// POST /checkout
func Checkout(svc *checkout.Service, stores cart.Provider, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		ct := cart.New(stores.ForSession(c.GetString("session_id")))
		ct.Restore(c.Request.Context())

		items := ct.Items()
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		customer := checkout.CustomerInfo{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		}
		order, err := svc.CreateOrder(c.Request.Context(), customer, ct.Total(), items)
		if err != nil {
			log.Printf("❌ Order submission failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to place order, please try again later"})
			return
		}

		// The order is placed; a failed cart clear only costs the user a stale cart.
		if err := ct.Clear(c.Request.Context()); err != nil {
			log.Printf("❌ Failed to clear cart after order %s: %v", order.ID, err)
		}

		c.JSON(http.StatusCreated, order)
	}
}
