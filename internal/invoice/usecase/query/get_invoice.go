package query

import (
	"github.com/mercadito/retail-api/internal/invoice/domain"
)

// GetInvoiceQuery represents the query to get an invoice by id
type GetInvoiceQuery struct {
	ID uint
}

// GetInvoiceHandler handles get invoice queries
type GetInvoiceHandler struct {
	repo domain.InvoiceRepository
}

// NewGetInvoiceHandler creates a new get invoice handler
func NewGetInvoiceHandler(repo domain.InvoiceRepository) *GetInvoiceHandler {
	return &GetInvoiceHandler{repo: repo}
}

// Handle executes the get invoice query
func (h *GetInvoiceHandler) Handle(q GetInvoiceQuery) (*domain.Invoice, error) {
	return h.repo.FindByID(q.ID)
}
