package cartControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lucasmre/storefront-api/cart"
	"github.com/lucasmre/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = "test-session"

func testRouter(stores cart.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("session_id", testSession) })
	r.GET("/cart", GetCart(stores))
	r.PUT("/cart/items/:product_id", UpdateCartItem(stores))
	r.DELETE("/cart/items/:product_id", DeleteCartItem(stores))
	r.DELETE("/cart", ClearCart(stores))
	return r
}

func seedCart(t *testing.T, stores cart.Provider) {
	t.Helper()
	ct := cart.New(stores.ForSession(testSession))
	require.NoError(t, ct.Add(context.Background(), models.Product{
		ID: "prod-a", Name: "Caneca", Price: 10.00, ImageURL: "caneca.jpg", Stock: 5,
	}))
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetCart(t *testing.T) {
	stores := cart.NewMemoryProvider()
	seedCart(t, stores)
	r := testRouter(stores)

	w := doJSON(r, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeCart(t, w)
	assert.Equal(t, float64(1), resp["item_count"])
	assert.Equal(t, 10.00, resp["total"])
	assert.Equal(t, "R$ 10,00", resp["total_formatted"])
}

func TestUpdateCartItemClampsQuantity(t *testing.T) {
	stores := cart.NewMemoryProvider()
	seedCart(t, stores)
	r := testRouter(stores)

	w := doJSON(r, http.MethodPut, "/cart/items/prod-a", `{"quantity": 0}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeCart(t, w)
	assert.Equal(t, float64(1), resp["item_count"], "quantity 0 clamps to 1, not an error")
}

func TestUpdateCartItemMissingQuantity(t *testing.T) {
	stores := cart.NewMemoryProvider()
	seedCart(t, stores)
	r := testRouter(stores)

	w := doJSON(r, http.MethodPut, "/cart/items/prod-a", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAbsentItemIsNoOp(t *testing.T) {
	stores := cart.NewMemoryProvider()
	seedCart(t, stores)
	r := testRouter(stores)

	w := doJSON(r, http.MethodDelete, "/cart/items/missing", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeCart(t, w)
	assert.Equal(t, float64(1), resp["item_count"])
}

func TestClearCart(t *testing.T) {
	stores := cart.NewMemoryProvider()
	seedCart(t, stores)
	r := testRouter(stores)

	w := doJSON(r, http.MethodDelete, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/cart", "")
	resp := decodeCart(t, w)
	assert.Equal(t, float64(0), resp["item_count"])
	assert.Empty(t, resp["items"])
}
