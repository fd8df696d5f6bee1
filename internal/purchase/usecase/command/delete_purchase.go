package command

import (
	"github.com/mercadito/retail-api/internal/purchase/domain"
)

// DeletePurchaseCommand represents the command to delete a purchase
type DeletePurchaseCommand struct {
	ID uint
}

// DeletePurchaseHandler handles purchase deletion
type DeletePurchaseHandler struct {
	repo domain.PurchaseRepository
}

// NewDeletePurchaseHandler creates a new delete purchase handler
func NewDeletePurchaseHandler(repo domain.PurchaseRepository) *DeletePurchaseHandler {
	return &DeletePurchaseHandler{repo: repo}
}

// Handle removes the purchase and returns its last persisted state.
func (h *DeletePurchaseHandler) Handle(cmd DeletePurchaseCommand) (*domain.Purchase, error) {
	purchase, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return nil, err
	}

	return purchase, nil
}
