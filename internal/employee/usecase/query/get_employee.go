package query

import (
	"github.com/mercadito/retail-api/internal/employee/domain"
)

// GetEmployeeQuery represents the query to get an employee by id
type GetEmployeeQuery struct {
	ID uint
}

// GetEmployeeHandler handles get employee queries
type GetEmployeeHandler struct {
	repo domain.EmployeeRepository
}

// NewGetEmployeeHandler creates a new get employee handler
func NewGetEmployeeHandler(repo domain.EmployeeRepository) *GetEmployeeHandler {
	return &GetEmployeeHandler{repo: repo}
}

// Handle executes the get employee query
func (h *GetEmployeeHandler) Handle(q GetEmployeeQuery) (*domain.Employee, error) {
	return h.repo.FindByID(q.ID)
}
