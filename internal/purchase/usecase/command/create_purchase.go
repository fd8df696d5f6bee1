package command

import (
	"time"

	"github.com/mercadito/retail-api/internal/purchase/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
)

// CreatePurchaseCommand represents the command to create a purchase
type CreatePurchaseCommand struct {
	domain.CreatePurchase
}

// CreatePurchaseHandler handles purchase creation
type CreatePurchaseHandler struct {
	repo domain.PurchaseRepository
}

// NewCreatePurchaseHandler creates a new create purchase handler
func NewCreatePurchaseHandler(repo domain.PurchaseRepository) *CreatePurchaseHandler {
	return &CreatePurchaseHandler{repo: repo}
}

// Handle executes the create purchase command. The purchase date is stamped
// here, not taken from the caller. The owning user is not pre-checked; a
// dangling user_id fails at the store's foreign key.
func (h *CreatePurchaseHandler) Handle(cmd CreatePurchaseCommand) (*domain.Purchase, error) {
	if cmd.Quantity <= 0 {
		return nil, apperror.Validation("quantity", "quantity must be positive")
	}
	if cmd.TotalAmount < 0 {
		return nil, apperror.Validation("total_amount", "total_amount must not be negative")
	}
	if !cmd.PaymentMethod.Valid() {
		return nil, apperror.Validation("payment_method", "invalid payment_method")
	}
	if !cmd.PaymentStatus.Valid() {
		return nil, apperror.Validation("payment_status", "invalid payment_status")
	}
	if !cmd.DeliveryStatus.Valid() {
		return nil, apperror.Validation("delivery_status", "invalid delivery_status")
	}
	if cmd.UserID == 0 {
		return nil, apperror.Validation("user_id", "user_id is required")
	}

	purchase := &domain.Purchase{
		PurchaseDate:    time.Now(),
		ItemDescription: cmd.ItemDescription,
		Quantity:        cmd.Quantity,
		TotalAmount:     cmd.TotalAmount,
		PaymentMethod:   cmd.PaymentMethod,
		PaymentStatus:   cmd.PaymentStatus,
		DeliveryStatus:  cmd.DeliveryStatus,
		UserID:          cmd.UserID,
	}

	if err := h.repo.Create(purchase); err != nil {
		return nil, err
	}

	return purchase, nil
}
