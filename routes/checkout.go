package routes

import (
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/lucasmre/storefront-api/cart"
	"github.com/lucasmre/storefront-api/checkout"
	checkoutControllers "github.com/lucasmre/storefront-api/controllers/checkout"
	"github.com/lucasmre/storefront-api/middleware"
)

func SetupCheckoutRoutes(r *gin.Engine, svc *checkout.Service, stores cart.Provider, v *validatorv10.Validate) {
	r.POST("/checkout", middleware.CartSession, checkoutControllers.Checkout(svc, stores, v))
}
