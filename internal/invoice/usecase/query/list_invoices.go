package query

import (
	"github.com/mercadito/retail-api/internal/invoice/domain"
)

// ListInvoicesQuery represents the paginated list query
type ListInvoicesQuery struct {
	Skip  int
	Limit int
}

// ListInvoicesHandler handles list invoices queries
type ListInvoicesHandler struct {
	repo domain.InvoiceRepository
}

// NewListInvoicesHandler creates a new list invoices handler
func NewListInvoicesHandler(repo domain.InvoiceRepository) *ListInvoicesHandler {
	return &ListInvoicesHandler{repo: repo}
}

// Handle executes the list invoices query
func (h *ListInvoicesHandler) Handle(q ListInvoicesQuery) ([]domain.Invoice, error) {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 100
	}
	return h.repo.FindAll(q.Limit, q.Skip)
}
