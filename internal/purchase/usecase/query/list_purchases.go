package query

import (
	"github.com/mercadito/retail-api/internal/purchase/domain"
)

// ListPurchasesQuery represents the paginated list query
type ListPurchasesQuery struct {
	Skip  int
	Limit int
}

// ListPurchasesHandler handles list purchases queries
type ListPurchasesHandler struct {
	repo domain.PurchaseRepository
}

// NewListPurchasesHandler creates a new list purchases handler
func NewListPurchasesHandler(repo domain.PurchaseRepository) *ListPurchasesHandler {
	return &ListPurchasesHandler{repo: repo}
}

// Handle executes the list purchases query
func (h *ListPurchasesHandler) Handle(q ListPurchasesQuery) ([]domain.Purchase, error) {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 100
	}
	return h.repo.FindAll(q.Limit, q.Skip)
}
