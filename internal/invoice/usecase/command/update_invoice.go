package command

import (
	"github.com/mercadito/retail-api/internal/invoice/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
)

// UpdateInvoiceCommand applies a change-set to an existing invoice.
type UpdateInvoiceCommand struct {
	ID      uint
	Changes domain.InvoiceChanges
}

// UpdateInvoiceHandler handles invoice updates
type UpdateInvoiceHandler struct {
	repo domain.InvoiceRepository
}

// NewUpdateInvoiceHandler creates a new update invoice handler
func NewUpdateInvoiceHandler(repo domain.InvoiceRepository) *UpdateInvoiceHandler {
	return &UpdateInvoiceHandler{repo: repo}
}

// Handle loads the record, merges the change-set and persists the result.
func (h *UpdateInvoiceHandler) Handle(cmd UpdateInvoiceCommand) (*domain.Invoice, error) {
	if status, ok := cmd.Changes.PaymentStatus.Get(); ok && !status.Valid() {
		return nil, apperror.Validation("payment_status", "invalid payment_status")
	}
	if method, ok := cmd.Changes.PaymentMethod.Get(); ok && !method.Valid() {
		return nil, apperror.Validation("payment_method", "invalid payment_method")
	}
	if amount, ok := cmd.Changes.TotalAmount.Get(); ok && amount < 0 {
		return nil, apperror.Validation("total_amount", "total_amount must not be negative")
	}

	invoice, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	cmd.Changes.ApplyTo(invoice)

	if err := h.repo.Save(invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}
