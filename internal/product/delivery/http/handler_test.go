package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadito/retail-api/internal/product/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
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

func setupRouter(repo domain.ProductRepository) *mux.Router {
	router := mux.NewRouter()
	NewProductHandler(repo).RegisterRoutes(router)
	return router
}

func do(t *testing.T, router *mux.Router, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateProductEndpoint(t *testing.T) {
	router := setupRouter(newFakeProductRepo())

	rec := do(t, router, http.MethodPost, "/products", `{"name":"Coffee Beans 1kg","price":18.5,"sku":"COF-001"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(1), got["product_id"])
	assert.Equal(t, true, got["is_active"], "omitted is_active defaults to true")
}

func TestCreateProductTrailingSlash(t *testing.T) {
	router := setupRouter(newFakeProductRepo())

	rec := do(t, router, http.MethodPost, "/products/", `{"name":"Coffee Beans 1kg","price":18.5}`)
	require.Equal(t, http.StatusCreated, rec.Code, "slashed create must not redirect")

	rec = do(t, router, http.MethodGet, "/products/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestCreateProductDuplicateSKUIs400(t *testing.T) {
	router := setupRouter(newFakeProductRepo())

	rec := do(t, router, http.MethodPost, "/products", `{"name":"a","price":1,"sku":"COF-001"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPost, "/products", `{"name":"b","price":2,"sku":"COF-001"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "SKU already registered")
}

func TestPutResetsOmittedProductFields(t *testing.T) {
	router := setupRouter(newFakeProductRepo())

	rec := do(t, router, http.MethodPost, "/products", `{"name":"a","price":1,"category":"beverages","is_active":false}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPut, "/products/1", `{"name":"a","price":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Nil(t, got["category"])
	assert.Equal(t, true, got["is_active"], "omitted is_active resets to the default")
}

func TestPatchProductKeepsOtherFields(t *testing.T) {
	router := setupRouter(newFakeProductRepo())

	rec := do(t, router, http.MethodPost, "/products", `{"name":"a","price":1,"category":"beverages"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPatch, "/products/1", `{"price":2.5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2.5, got["price"])
	assert.Equal(t, "beverages", got["category"])
}

func TestGetProductNotFound(t *testing.T) {
	router := setupRouter(newFakeProductRepo())

	rec := do(t, router, http.MethodGet, "/products/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not found")
}
