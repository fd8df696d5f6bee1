package command

import (
	"github.com/mercadito/retail-api/internal/invoice/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
)

// CreateInvoiceCommand represents the command to create an invoice
type CreateInvoiceCommand struct {
	domain.CreateInvoice
}

// CreateInvoiceHandler handles invoice creation
type CreateInvoiceHandler struct {
	repo domain.InvoiceRepository
}

// NewCreateInvoiceHandler creates a new create invoice handler
func NewCreateInvoiceHandler(repo domain.InvoiceRepository) *CreateInvoiceHandler {
	return &CreateInvoiceHandler{repo: repo}
}

// Handle executes the create invoice command. The owning user is not
// pre-checked; a dangling user_id fails at the store's foreign key.
func (h *CreateInvoiceHandler) Handle(cmd CreateInvoiceCommand) (*domain.Invoice, error) {
	if cmd.InvoiceNumber == "" {
		return nil, apperror.Validation("invoice_number", "invoice_number is required")
	}
	if cmd.InvoiceDate.IsZero() {
		return nil, apperror.Validation("invoice_date", "invoice_date is required")
	}
	if cmd.TotalAmount < 0 {
		return nil, apperror.Validation("total_amount", "total_amount must not be negative")
	}
	if !cmd.PaymentStatus.Valid() {
		return nil, apperror.Validation("payment_status", "invalid payment_status")
	}
	if !cmd.PaymentMethod.Valid() {
		return nil, apperror.Validation("payment_method", "invalid payment_method")
	}
	if cmd.UserID == 0 {
		return nil, apperror.Validation("user_id", "user_id is required")
	}

	if _, err := h.repo.FindByNumber(cmd.InvoiceNumber); err == nil {
		return nil, apperror.Conflict("Invoice number already registered")
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	invoice := &domain.Invoice{
		InvoiceNumber:  cmd.InvoiceNumber,
		InvoiceDate:    cmd.InvoiceDate,
		DueDate:        cmd.DueDate,
		TotalAmount:    cmd.TotalAmount,
		PaymentStatus:  cmd.PaymentStatus,
		PaymentMethod:  cmd.PaymentMethod,
		BillingAddress: cmd.BillingAddress,
		UserID:         cmd.UserID,
	}

	if err := h.repo.Create(invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}
