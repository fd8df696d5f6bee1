package command

import (
	"github.com/mercadito/retail-api/internal/product/domain"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles product deletion
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle removes the product and returns its pre-deletion state.
func (h *DeleteProductHandler) Handle(cmd DeleteProductCommand) (*domain.Product, error) {
	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return nil, err
	}

	return product, nil
}
