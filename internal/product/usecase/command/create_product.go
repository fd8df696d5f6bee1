package command

import (
	"github.com/mercadito/retail-api/internal/product/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
)

// CreateProductCommand represents the command to create a product
type CreateProductCommand struct {
	domain.CreateProduct
}

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command. The sku pre-check only runs
// when a sku is supplied; null skus never conflict.
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, apperror.Validation("name", "name is required")
	}
	if cmd.Price < 0 {
		return nil, apperror.Validation("price", "price must not be negative")
	}
	if cmd.StockQuantity < 0 {
		return nil, apperror.Validation("stock_quantity", "stock_quantity must not be negative")
	}

	if cmd.SKU != nil {
		if _, err := h.repo.FindBySKU(*cmd.SKU); err == nil {
			return nil, apperror.Conflict("SKU already registered")
		} else if !apperror.IsNotFound(err) {
			return nil, err
		}
	}

	isActive := true
	if cmd.IsActive != nil {
		isActive = *cmd.IsActive
	}

	product := &domain.Product{
		Name:          cmd.Name,
		Description:   cmd.Description,
		SKU:           cmd.SKU,
		Price:         cmd.Price,
		Category:      cmd.Category,
		StockQuantity: cmd.StockQuantity,
		IsActive:      isActive,
	}

	if err := h.repo.Create(product); err != nil {
		return nil, err
	}

	return product, nil
}
