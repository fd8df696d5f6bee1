package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mercadito/retail-api/internal/employee/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
	"github.com/mercadito/retail-api/pkg/database"
)

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GORM employee repository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormEmployeeRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Employee{})
}

// Create inserts a new employee.
func (r *GormEmployeeRepository) Create(employee *domain.Employee) error {
	if err := r.db.Create(employee).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.Conflict("Email already registered")
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// FindByID retrieves an employee by ID
func (r *GormEmployeeRepository) FindByID(id uint) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Employee not found")
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return &employee, nil
}

// FindByEmail retrieves an employee by email
func (r *GormEmployeeRepository) FindByEmail(email string) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.db.Where("email = ?", email).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Employee not found")
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return &employee, nil
}

// FindAll retrieves employees with pagination
func (r *GormEmployeeRepository) FindAll(limit, offset int) ([]domain.Employee, error) {
	var employees []domain.Employee
	if err := r.db.Limit(limit).Offset(offset).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to find employees: %w", err)
	}
	return employees, nil
}

// Save persists a merged record.
func (r *GormEmployeeRepository) Save(employee *domain.Employee) error {
	if err := r.db.Save(employee).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.Conflict("Email already registered")
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// Delete removes an employee from the store.
func (r *GormEmployeeRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("Employee not found")
	}
	return nil
}
