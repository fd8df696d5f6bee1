package command

import (
	"github.com/mercadito/retail-api/internal/employee/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
)

// UpdateEmployeeCommand applies a change-set to an existing employee.
type UpdateEmployeeCommand struct {
	ID      uint
	Changes domain.EmployeeChanges
}

// UpdateEmployeeHandler handles employee updates
type UpdateEmployeeHandler struct {
	repo domain.EmployeeRepository
}

// NewUpdateEmployeeHandler creates a new update employee handler
func NewUpdateEmployeeHandler(repo domain.EmployeeRepository) *UpdateEmployeeHandler {
	return &UpdateEmployeeHandler{repo: repo}
}

// Handle loads the record, merges the change-set and persists the result.
func (h *UpdateEmployeeHandler) Handle(cmd UpdateEmployeeCommand) (*domain.Employee, error) {
	if email, ok := cmd.Changes.Email.Get(); ok && email == "" {
		return nil, apperror.Validation("email", "email must not be empty")
	}

	employee, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	cmd.Changes.ApplyTo(employee)

	if err := h.repo.Save(employee); err != nil {
		return nil, err
	}

	return employee, nil
}
