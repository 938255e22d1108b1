package cartControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasmre/storefront-api/cart"
	"github.com/lucasmre/storefront-api/catalog"
	"github.com/lucasmre/storefront-api/models"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateQuantityInput struct {
	// pointer so that 0 still binds; values below 1 are clamped, not rejected
	Quantity *int `json:"quantity" binding:"required"`
}

// sessionCart restores the cart persisted for the request's session.
func sessionCart(c *gin.Context, stores cart.Provider) *cart.Cart {
	ct := cart.New(stores.ForSession(c.GetString("session_id")))
	ct.Restore(c.Request.Context())
	return ct
}

func cartResponse(ct *cart.Cart) gin.H {
	return gin.H{
		"items":           ct.Items(),
		"total":           ct.Total(),
		"total_formatted": catalog.FormatPrice(ct.Total()),
		"item_count":      ct.ItemCount(),
	}
}

// GET /cart
func GetCart(stores cart.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse(sessionCart(c, stores)))
	}
}

// POST /cart/items
func AddCartItem(db *gorm.DB, stores cart.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Fetch product from DB
		var product models.Product
		if err := db.WithContext(c.Request.Context()).First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			log.Printf("❌ Failed to validate product %s: %v", input.ProductID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		if product.Stock == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Product out of stock"})
			return
		}

		ct := sessionCart(c, stores)
		if err := ct.Add(c.Request.Context(), product); err != nil {
			log.Printf("❌ Failed to save cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, cartResponse(ct))
	}
}

// PUT /cart/items/:product_id
func UpdateCartItem(stores cart.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ct := sessionCart(c, stores)
		if err := ct.SetQuantity(c.Request.Context(), c.Param("product_id"), *input.Quantity); err != nil {
			log.Printf("❌ Failed to save cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(ct))
	}
}

// DELETE /cart/items/:product_id
func DeleteCartItem(stores cart.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct := sessionCart(c, stores)
		if err := ct.Remove(c.Request.Context(), c.Param("product_id")); err != nil {
			log.Printf("❌ Failed to save cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(ct))
	}
}

// DELETE /cart
func ClearCart(stores cart.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct := sessionCart(c, stores)
		if err := ct.Clear(c.Request.Context()); err != nil {
			log.Printf("❌ Failed to clear cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
