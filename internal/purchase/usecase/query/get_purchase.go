package query

import (
	"github.com/mercadito/retail-api/internal/purchase/domain"
)

// GetPurchaseQuery represents the query to get a purchase by id
type GetPurchaseQuery struct {
	ID uint
}

// GetPurchaseHandler handles get purchase queries
type GetPurchaseHandler struct {
	repo domain.PurchaseRepository
}

// NewGetPurchaseHandler creates a new get purchase handler
func NewGetPurchaseHandler(repo domain.PurchaseRepository) *GetPurchaseHandler {
	return &GetPurchaseHandler{repo: repo}
}

// Handle executes the get purchase query
func (h *GetPurchaseHandler) Handle(q GetPurchaseQuery) (*domain.Purchase, error) {
	return h.repo.FindByID(q.ID)
}
