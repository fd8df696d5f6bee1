package command

import (
	"github.com/mercadito/retail-api/internal/employee/domain"
)

// DeleteEmployeeCommand represents the command to delete an employee
type DeleteEmployeeCommand struct {
	ID uint
}

// DeleteEmployeeHandler handles employee deletion
type DeleteEmployeeHandler struct {
	repo domain.EmployeeRepository
}

// NewDeleteEmployeeHandler creates a new delete employee handler
func NewDeleteEmployeeHandler(repo domain.EmployeeRepository) *DeleteEmployeeHandler {
	return &DeleteEmployeeHandler{repo: repo}
}

// Handle removes the employee and returns its pre-deletion state.
func (h *DeleteEmployeeHandler) Handle(cmd DeleteEmployeeCommand) (*domain.Employee, error) {
	employee, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return nil, err
	}

	return employee, nil
}
