package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lucasmre/storefront-api/cart"
	cartControllers "github.com/lucasmre/storefront-api/controllers/cart"
	"github.com/lucasmre/storefront-api/middleware"
	"gorm.io/gorm"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB, stores cart.Provider) {
	carts := r.Group("/cart", middleware.CartSession)
	{
		// Fetch the session's cart
		carts.GET("/", cartControllers.GetCart(stores))

		// Add a product to the cart
		carts.POST("/items", cartControllers.AddCartItem(db, stores))

		// Set a line item's quantity
		carts.PUT("/items/:product_id", cartControllers.UpdateCartItem(stores))

		// Remove a line item
		carts.DELETE("/items/:product_id", cartControllers.DeleteCartItem(stores))

		// Empty the cart
		carts.DELETE("/", cartControllers.ClearCart(stores))
	}
}
