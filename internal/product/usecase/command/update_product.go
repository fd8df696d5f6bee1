package command

import (
	"github.com/mercadito/retail-api/internal/product/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
)

// UpdateProductCommand applies a change-set to an existing product.
type UpdateProductCommand struct {
	ID      uint
	Changes domain.ProductChanges
}

// UpdateProductHandler handles product updates
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle loads the record, merges the change-set and persists the result.
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if price, ok := cmd.Changes.Price.Get(); ok && price < 0 {
		return nil, apperror.Validation("price", "price must not be negative")
	}
	if qty, ok := cmd.Changes.StockQuantity.Get(); ok && qty < 0 {
		return nil, apperror.Validation("stock_quantity", "stock_quantity must not be negative")
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	cmd.Changes.ApplyTo(product)

	if err := h.repo.Save(product); err != nil {
		return nil, err
	}

	return product, nil
}
