package query

import (
	"github.com/mercadito/retail-api/internal/product/domain"
)

// GetProductQuery represents the query to get a product by id
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles get product queries
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	return h.repo.FindByID(q.ID)
}
