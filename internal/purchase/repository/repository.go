package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mercadito/retail-api/internal/purchase/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
)

// GormPurchaseRepository implements PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GORM purchase repository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// AutoMigrate runs database migrations. The users table must exist first.
func (r *GormPurchaseRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Purchase{})
}

// Create inserts a new purchase. Purchases carry no unique natural key, so
// there is no duplicate check here.
func (r *GormPurchaseRepository) Create(purchase *domain.Purchase) error {
	if err := r.db.Omit("User").Create(purchase).Error; err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

// FindByID retrieves a purchase by ID
func (r *GormPurchaseRepository) FindByID(id uint) (*domain.Purchase, error) {
	var purchase domain.Purchase
	if err := r.db.First(&purchase, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Purchase not found")
		}
		return nil, fmt.Errorf("failed to find purchase: %w", err)
	}
	return &purchase, nil
}

// FindByUserID retrieves every purchase owned by a user, unpaginated.
func (r *GormPurchaseRepository) FindByUserID(userID uint) ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	if err := r.db.Where("user_id = ?", userID).Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to find purchases by user: %w", err)
	}
	return purchases, nil
}

// FindAll retrieves purchases with pagination
func (r *GormPurchaseRepository) FindAll(limit, offset int) ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	if err := r.db.Limit(limit).Offset(offset).Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to find purchases: %w", err)
	}
	return purchases, nil
}

// Save persists a merged record.
func (r *GormPurchaseRepository) Save(purchase *domain.Purchase) error {
	if err := r.db.Omit("User").Save(purchase).Error; err != nil {
		return fmt.Errorf("failed to update purchase: %w", err)
	}
	return nil
}

// Delete removes a purchase from the store.
func (r *GormPurchaseRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Purchase{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete purchase: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("Purchase not found")
	}
	return nil
}
