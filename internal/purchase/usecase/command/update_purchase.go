package command

import (
	"github.com/mercadito/retail-api/internal/purchase/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
)

// UpdatePurchaseCommand applies a change-set to an existing purchase.
type UpdatePurchaseCommand struct {
	ID      uint
	Changes domain.PurchaseChanges
}

// UpdatePurchaseHandler handles purchase updates
type UpdatePurchaseHandler struct {
	repo domain.PurchaseRepository
}

// NewUpdatePurchaseHandler creates a new update purchase handler
func NewUpdatePurchaseHandler(repo domain.PurchaseRepository) *UpdatePurchaseHandler {
	return &UpdatePurchaseHandler{repo: repo}
}

// Handle loads the record, merges the change-set and persists the result.
func (h *UpdatePurchaseHandler) Handle(cmd UpdatePurchaseCommand) (*domain.Purchase, error) {
	if quantity, ok := cmd.Changes.Quantity.Get(); ok && quantity <= 0 {
		return nil, apperror.Validation("quantity", "quantity must be positive")
	}
	if amount, ok := cmd.Changes.TotalAmount.Get(); ok && amount < 0 {
		return nil, apperror.Validation("total_amount", "total_amount must not be negative")
	}
	if method, ok := cmd.Changes.PaymentMethod.Get(); ok && !method.Valid() {
		return nil, apperror.Validation("payment_method", "invalid payment_method")
	}
	if status, ok := cmd.Changes.PaymentStatus.Get(); ok && !status.Valid() {
		return nil, apperror.Validation("payment_status", "invalid payment_status")
	}
	if status, ok := cmd.Changes.DeliveryStatus.Get(); ok && !status.Valid() {
		return nil, apperror.Validation("delivery_status", "invalid delivery_status")
	}

	purchase, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	cmd.Changes.ApplyTo(purchase)

	if err := h.repo.Save(purchase); err != nil {
		return nil, err
	}

	return purchase, nil
}
