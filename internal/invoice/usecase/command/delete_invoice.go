package command

import (
	"github.com/mercadito/retail-api/internal/invoice/domain"
)

// DeleteInvoiceCommand represents the command to delete an invoice
type DeleteInvoiceCommand struct {
	ID uint
}

// DeleteInvoiceHandler handles invoice deletion
type DeleteInvoiceHandler struct {
	repo domain.InvoiceRepository
}

// NewDeleteInvoiceHandler creates a new delete invoice handler
func NewDeleteInvoiceHandler(repo domain.InvoiceRepository) *DeleteInvoiceHandler {
	return &DeleteInvoiceHandler{repo: repo}
}

// Handle removes the invoice and returns its pre-deletion state.
func (h *DeleteInvoiceHandler) Handle(cmd DeleteInvoiceCommand) (*domain.Invoice, error) {
	invoice, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return nil, err
	}

	return invoice, nil
}
