package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func sampleProduct() Product {
	return Product{
		ID:            1,
		Name:          "Coffee Beans 1kg",
		Description:   strptr("Dark roast"),
		SKU:           strptr("COF-001"),
		Price:         18.50,
		Category:      strptr("beverages"),
		StockQuantity: 40,
		IsActive:      true,
	}
}

func TestPatchBodyOnlyTouchesPresentFields(t *testing.T) {
	var changes ProductChanges
	require.NoError(t, json.Unmarshal([]byte(`{"price":19.99,"stock_quantity":35}`), &changes))

	p := sampleProduct()
	changes.ApplyTo(&p)

	assert.Equal(t, 19.99, p.Price)
	assert.Equal(t, 35, p.StockQuantity)
	assert.Equal(t, "Coffee Beans 1kg", p.Name)
	require.NotNil(t, p.Category)
	assert.Equal(t, "beverages", *p.Category)
}

func TestPatchNullClearsNullableField(t *testing.T) {
	var changes ProductChanges
	require.NoError(t, json.Unmarshal([]byte(`{"category":null}`), &changes))

	p := sampleProduct()
	changes.ApplyTo(&p)

	assert.Nil(t, p.Category)
	assert.Equal(t, 18.50, p.Price)
}

func TestPutBodyResetsOmittedFields(t *testing.T) {
	var req CreateProduct
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Coffee Beans 1kg","price":18.50}`), &req))

	p := sampleProduct()
	req.Changes().ApplyTo(&p)

	assert.Nil(t, p.Description)
	assert.Nil(t, p.SKU)
	assert.Nil(t, p.Category)
	assert.Equal(t, 0, p.StockQuantity)
	assert.True(t, p.IsActive, "omitted is_active falls back to the schema default")
}

func TestPutBodyCanDisableProduct(t *testing.T) {
	var req CreateProduct
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Coffee Beans 1kg","price":18.50,"is_active":false}`), &req))

	p := sampleProduct()
	req.Changes().ApplyTo(&p)

	assert.False(t, p.IsActive)
}

func TestChangesNeverTouchIdentity(t *testing.T) {
	var changes ProductChanges
	require.NoError(t, json.Unmarshal([]byte(`{"product_id":99,"name":"renamed"}`), &changes))

	p := sampleProduct()
	changes.ApplyTo(&p)

	assert.Equal(t, uint(1), p.ID)
	assert.Equal(t, "renamed", p.Name)
}
