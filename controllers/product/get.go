package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasmre/storefront-api/catalog"
	"github.com/lucasmre/storefront-api/models"
)

// ProductView is a product enriched with the display fields the storefront
// page needs.
type ProductView struct {
	models.Product
	PriceFormatted string `json:"price_formatted"`
	LowStock       bool   `json:"low_stock"`
	OutOfStock     bool   `json:"out_of_stock"`
}

// GET /products?category=
func GetProducts(client *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := client.FetchProducts(c.Request.Context(), c.Query("category"))
		if err != nil {
			log.Printf("❌ Failed to fetch products: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products, please try again later"})
			return
		}

		views := make([]ProductView, 0, len(products))
		for _, p := range products {
			views = append(views, ProductView{
				Product:        p,
				PriceFormatted: catalog.FormatPrice(p.Price),
				LowStock:       p.Stock > 0 && p.Stock < 10,
				OutOfStock:     p.Stock == 0,
			})
		}
		c.JSON(http.StatusOK, views)
	}
}
