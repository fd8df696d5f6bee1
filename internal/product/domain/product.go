package domain

import (
	"github.com/mercadito/retail-api/pkg/optional"
)

// Product represents an item in the catalog.
type Product struct {
	ID            uint    `json:"product_id" gorm:"primaryKey;column:product_id"`
	Name          string  `json:"name" gorm:"size:200;not null"`
	Description   *string `json:"description" gorm:"type:text"`
	SKU           *string `json:"sku" gorm:"size:50;uniqueIndex"`
	Price         float64 `json:"price" gorm:"not null"`
	Category      *string `json:"category" gorm:"size:100"`
	StockQuantity int     `json:"stock_quantity" gorm:"not null;default:0"`
	IsActive      bool    `json:"is_active" gorm:"default:true"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// CreateProduct carries the caller-supplied fields for a new product.
// IsActive stays a pointer so an omitted field can fall back to the schema
// default of true.
type CreateProduct struct {
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	SKU           *string `json:"sku"`
	Price         float64 `json:"price"`
	Category      *string `json:"category"`
	StockQuantity int     `json:"stock_quantity"`
	IsActive      *bool   `json:"is_active"`
}

// ProductChanges is the product change-set: one slot per mutable column,
// never the identity.
type ProductChanges struct {
	Name          optional.Value[string]  `json:"name"`
	Description   optional.Value[*string] `json:"description"`
	SKU           optional.Value[*string] `json:"sku"`
	Price         optional.Value[float64] `json:"price"`
	Category      optional.Value[*string] `json:"category"`
	StockQuantity optional.Value[int]     `json:"stock_quantity"`
	IsActive      optional.Value[bool]    `json:"is_active"`
}

// ApplyTo merges the set slots into p, leaving unset fields untouched.
func (c ProductChanges) ApplyTo(p *Product) {
	optional.Apply(&p.Name, c.Name)
	optional.Apply(&p.Description, c.Description)
	optional.Apply(&p.SKU, c.SKU)
	optional.Apply(&p.Price, c.Price)
	optional.Apply(&p.Category, c.Category)
	optional.Apply(&p.StockQuantity, c.StockQuantity)
	optional.Apply(&p.IsActive, c.IsActive)
}

// Changes converts a full replacement payload into a change-set with every
// slot set: optional fields omitted from a PUT body overwrite with their
// schema defaults instead of surviving the replacement.
func (r CreateProduct) Changes() ProductChanges {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return ProductChanges{
		Name:          optional.Of(r.Name),
		Description:   optional.Of(r.Description),
		SKU:           optional.Of(r.SKU),
		Price:         optional.Of(r.Price),
		Category:      optional.Of(r.Category),
		StockQuantity: optional.Of(r.StockQuantity),
		IsActive:      optional.Of(isActive),
	}
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindBySKU(sku string) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	Save(product *Product) error
	Delete(id uint) error
}
