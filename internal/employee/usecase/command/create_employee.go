package command

import (
	"github.com/mercadito/retail-api/internal/employee/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
)

// CreateEmployeeCommand represents the command to create an employee
type CreateEmployeeCommand struct {
	domain.CreateEmployee
}

// CreateEmployeeHandler handles employee creation
type CreateEmployeeHandler struct {
	repo domain.EmployeeRepository
}

// NewCreateEmployeeHandler creates a new create employee handler
func NewCreateEmployeeHandler(repo domain.EmployeeRepository) *CreateEmployeeHandler {
	return &CreateEmployeeHandler{repo: repo}
}

// Handle executes the create employee command.
func (h *CreateEmployeeHandler) Handle(cmd CreateEmployeeCommand) (*domain.Employee, error) {
	if cmd.FirstName == "" {
		return nil, apperror.Validation("first_name", "first_name is required")
	}
	if cmd.LastName == "" {
		return nil, apperror.Validation("last_name", "last_name is required")
	}
	if cmd.Email == "" {
		return nil, apperror.Validation("email", "email is required")
	}

	if _, err := h.repo.FindByEmail(cmd.Email); err == nil {
		return nil, apperror.Conflict("Email already registered")
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	employee := &domain.Employee{
		FirstName:  cmd.FirstName,
		LastName:   cmd.LastName,
		Email:      cmd.Email,
		JobTitle:   cmd.JobTitle,
		Department: cmd.Department,
		Salary:     cmd.Salary,
		HireDate:   cmd.HireDate,
	}

	if err := h.repo.Create(employee); err != nil {
		return nil, err
	}

	return employee, nil
}
