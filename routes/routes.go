package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lucasmre/storefront-api/cart"
	"github.com/lucasmre/storefront-api/catalog"
	"github.com/lucasmre/storefront-api/checkout"
	"github.com/lucasmre/storefront-api/validation"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the storefront route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, stores cart.Provider) {
	client := catalog.NewClient(catalog.NewGormSource(db))
	svc := checkout.NewService(checkout.NewGormStore(db))
	v := validation.New()

	// Public product listing
	SetupProductRoutes(r, client)

	// Session-scoped cart
	SetupCartRoutes(r, db, stores)

	// Order submission
	SetupCheckoutRoutes(r, svc, stores, v)
}
