package domain

import (
	"time"

	"github.com/mercadito/retail-api/pkg/optional"
)

// Employee represents a member of staff.
type Employee struct {
	ID         uint       `json:"employee_id" gorm:"primaryKey;column:employee_id"`
	FirstName  string     `json:"first_name" gorm:"size:100;not null"`
	LastName   string     `json:"last_name" gorm:"size:100;not null"`
	Email      string     `json:"email" gorm:"size:255;uniqueIndex;not null"`
	JobTitle   *string    `json:"job_title" gorm:"size:150"`
	Department *string    `json:"department" gorm:"size:100"`
	Salary     *float64   `json:"salary"`
	HireDate   *time.Time `json:"hire_date" gorm:"type:date"`
}

// TableName specifies the table name
func (Employee) TableName() string {
	return "employees"
}

// CreateEmployee carries the caller-supplied fields for a new employee.
type CreateEmployee struct {
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	JobTitle   *string    `json:"job_title"`
	Department *string    `json:"department"`
	Salary     *float64   `json:"salary"`
	HireDate   *time.Time `json:"hire_date"`
}

// EmployeeChanges is the employee change-set: one slot per mutable column.
type EmployeeChanges struct {
	FirstName  optional.Value[string]     `json:"first_name"`
	LastName   optional.Value[string]     `json:"last_name"`
	Email      optional.Value[string]     `json:"email"`
	JobTitle   optional.Value[*string]    `json:"job_title"`
	Department optional.Value[*string]    `json:"department"`
	Salary     optional.Value[*float64]   `json:"salary"`
	HireDate   optional.Value[*time.Time] `json:"hire_date"`
}

// ApplyTo merges the set slots into e, leaving unset fields untouched.
func (c EmployeeChanges) ApplyTo(e *Employee) {
	optional.Apply(&e.FirstName, c.FirstName)
	optional.Apply(&e.LastName, c.LastName)
	optional.Apply(&e.Email, c.Email)
	optional.Apply(&e.JobTitle, c.JobTitle)
	optional.Apply(&e.Department, c.Department)
	optional.Apply(&e.Salary, c.Salary)
	optional.Apply(&e.HireDate, c.HireDate)
}

// Changes converts a full replacement payload into a change-set with every
// slot set.
func (r CreateEmployee) Changes() EmployeeChanges {
	return EmployeeChanges{
		FirstName:  optional.Of(r.FirstName),
		LastName:   optional.Of(r.LastName),
		Email:      optional.Of(r.Email),
		JobTitle:   optional.Of(r.JobTitle),
		Department: optional.Of(r.Department),
		Salary:     optional.Of(r.Salary),
		HireDate:   optional.Of(r.HireDate),
	}
}

// EmployeeRepository defines the contract for employee data access
type EmployeeRepository interface {
	Create(employee *Employee) error
	FindByID(id uint) (*Employee, error)
	FindByEmail(email string) (*Employee, error)
	FindAll(limit, offset int) ([]Employee, error)
	Save(employee *Employee) error
	Delete(id uint) error
}
