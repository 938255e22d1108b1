package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lucasmre/storefront-api/catalog"
	productcontroller "github.com/lucasmre/storefront-api/controllers/product"
)

func SetupProductRoutes(r *gin.Engine, client *catalog.Client) {
	products := r.Group("/products")
	{
		products.GET("/", productcontroller.GetProducts(client))
	}
}
