package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mercadito/retail-api/internal/invoice/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
	"github.com/mercadito/retail-api/pkg/database"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GORM invoice repository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// AutoMigrate runs database migrations. The users table must exist first.
func (r *GormInvoiceRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Invoice{})
}

// Create inserts a new invoice. A referential violation on user_id is not
// pre-checked anywhere and surfaces as a plain failure.
func (r *GormInvoiceRepository) Create(invoice *domain.Invoice) error {
	if err := r.db.Omit("User").Create(invoice).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.Conflict("Invoice number already registered")
		}
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// FindByID retrieves an invoice by ID
func (r *GormInvoiceRepository) FindByID(id uint) (*domain.Invoice, error) {
	var invoice domain.Invoice
	if err := r.db.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Invoice not found")
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}
	return &invoice, nil
}

// FindByNumber retrieves an invoice by its invoice number
func (r *GormInvoiceRepository) FindByNumber(number string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	if err := r.db.Where("invoice_number = ?", number).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Invoice not found")
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}
	return &invoice, nil
}

// FindByUserID retrieves every invoice owned by a user, unpaginated.
func (r *GormInvoiceRepository) FindByUserID(userID uint) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	if err := r.db.Where("user_id = ?", userID).Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to find invoices by user: %w", err)
	}
	return invoices, nil
}

// FindAll retrieves invoices with pagination
func (r *GormInvoiceRepository) FindAll(limit, offset int) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	if err := r.db.Limit(limit).Offset(offset).Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to find invoices: %w", err)
	}
	return invoices, nil
}

// Save persists a merged record.
func (r *GormInvoiceRepository) Save(invoice *domain.Invoice) error {
	if err := r.db.Omit("User").Save(invoice).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.Conflict("Invoice number already registered")
		}
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	return nil
}

// Delete removes an invoice from the store.
func (r *GormInvoiceRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Invoice{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete invoice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("Invoice not found")
	}
	return nil
}
