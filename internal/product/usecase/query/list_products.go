package query

import (
	"github.com/mercadito/retail-api/internal/product/domain"
)

// ListProductsQuery represents the paginated list query
type ListProductsQuery struct {
	Skip  int
	Limit int
}

// ListProductsHandler handles list products queries
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(q ListProductsQuery) ([]domain.Product, error) {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 100
	}
	return h.repo.FindAll(q.Limit, q.Skip)
}
