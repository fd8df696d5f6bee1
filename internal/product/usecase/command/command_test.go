package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadito/retail-api/internal/product/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
	"github.com/mercadito/retail-api/pkg/optional"
)

type fakeProductRepo struct {
	products map[uint]*domain.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*domain.Product{}, nextID: 1}
}

func (r *fakeProductRepo) Create(product *domain.Product) error {
	if product.SKU != nil {
		for _, p := range r.products {
			if p.SKU != nil && *p.SKU == *product.SKU {
				return apperror.Conflict("SKU already registered")
			}
		}
	}
	product.ID = r.nextID
	r.nextID++
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) FindByID(id uint) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, apperror.NotFound("Product not found")
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) FindBySKU(sku string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.SKU != nil && *p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("Product not found")
}

func (r *fakeProductRepo) FindAll(limit, offset int) ([]domain.Product, error) {
	out := []domain.Product{}
	for id := uint(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProductRepo) Save(product *domain.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return apperror.NotFound("Product not found")
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id uint) error {
	if _, ok := r.products[id]; !ok {
		return apperror.NotFound("Product not found")
	}
	delete(r.products, id)
	return nil
}

func strptr(s string) *string { return &s }

func TestCreateProductDefaultsToActive(t *testing.T) {
	h := NewCreateProductHandler(newFakeProductRepo())

	product, err := h.Handle(CreateProductCommand{CreateProduct: domain.CreateProduct{
		Name:  "Coffee Beans 1kg",
		Price: 18.50,
	}})
	require.NoError(t, err)

	assert.True(t, product.IsActive)
	assert.Equal(t, uint(1), product.ID)
}

func TestCreateProductValidation(t *testing.T) {
	h := NewCreateProductHandler(newFakeProductRepo())

	tests := []struct {
		req   domain.CreateProduct
		field string
	}{
		{domain.CreateProduct{Price: 5}, "name"},
		{domain.CreateProduct{Name: "x", Price: -1}, "price"},
		{domain.CreateProduct{Name: "x", Price: 1, StockQuantity: -2}, "stock_quantity"},
	}

	for _, tt := range tests {
		_, err := h.Handle(CreateProductCommand{CreateProduct: tt.req})
		require.Error(t, err)
		assert.Equal(t, tt.field, apperror.From(err).Field())
	}
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	repo := newFakeProductRepo()
	h := NewCreateProductHandler(repo)

	_, err := h.Handle(CreateProductCommand{CreateProduct: domain.CreateProduct{Name: "a", Price: 1, SKU: strptr("COF-001")}})
	require.NoError(t, err)

	_, err = h.Handle(CreateProductCommand{CreateProduct: domain.CreateProduct{Name: "b", Price: 2, SKU: strptr("COF-001")}})
	assert.True(t, apperror.IsConflict(err))
}

func TestCreateProductAllowsManyNullSKUs(t *testing.T) {
	repo := newFakeProductRepo()
	h := NewCreateProductHandler(repo)

	_, err := h.Handle(CreateProductCommand{CreateProduct: domain.CreateProduct{Name: "a", Price: 1}})
	require.NoError(t, err)

	_, err = h.Handle(CreateProductCommand{CreateProduct: domain.CreateProduct{Name: "b", Price: 2}})
	require.NoError(t, err)
}

func TestUpdateProductValidatesSetSlots(t *testing.T) {
	repo := newFakeProductRepo()
	require.NoError(t, repo.Create(&domain.Product{Name: "a", Price: 1, IsActive: true}))

	h := NewUpdateProductHandler(repo)
	_, err := h.Handle(UpdateProductCommand{ID: 1, Changes: domain.ProductChanges{
		Price: optional.Of(-3.0),
	}})
	require.Error(t, err)
	assert.Equal(t, "price", apperror.From(err).Field())
}

func TestUpdateProductPartialMerge(t *testing.T) {
	repo := newFakeProductRepo()
	require.NoError(t, repo.Create(&domain.Product{
		Name:     "Coffee Beans 1kg",
		Price:    18.50,
		Category: strptr("beverages"),
		IsActive: true,
	}))

	h := NewUpdateProductHandler(repo)
	updated, err := h.Handle(UpdateProductCommand{ID: 1, Changes: domain.ProductChanges{
		Price: optional.Of(19.99),
	}})
	require.NoError(t, err)

	assert.Equal(t, 19.99, updated.Price)
	require.NotNil(t, updated.Category)
	assert.Equal(t, "beverages", *updated.Category)
}
