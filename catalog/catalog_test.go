package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/lucasmre/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	products []models.Product
	err      error
	category string
}

func (f *fakeSource) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	f.category = category
	return f.products, f.err
}

func TestFetchProducts(t *testing.T) {
	ctx := context.Background()
	source := &fakeSource{products: []models.Product{
		{ID: "p2", Name: "Camiseta"},
		{ID: "p1", Name: "Caneca"},
	}}
	client := NewClient(source)

	products, err := client.FetchProducts(ctx, "")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p2", products[0].ID)
}

func TestFetchProductsEmptyCatalog(t *testing.T) {
	client := NewClient(&fakeSource{products: nil})

	products, err := client.FetchProducts(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, products)
	assert.Empty(t, products)
}

func TestFetchProductsWrapsDataServiceError(t *testing.T) {
	cause := errors.New("connection refused")
	client := NewClient(&fakeSource{err: cause})

	_, err := client.FetchProducts(context.Background(), "")
	require.Error(t, err)

	var dsErr *DataServiceError
	require.ErrorAs(t, err, &dsErr)
	assert.ErrorIs(t, err, cause)
}

func TestFetchProductsPassesCategoryFilter(t *testing.T) {
	source := &fakeSource{}
	client := NewClient(source)

	_, err := client.FetchProducts(context.Background(), "canecas")
	require.NoError(t, err)
	assert.Equal(t, "canecas", source.category)
}
