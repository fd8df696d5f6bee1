package query

import (
	"github.com/mercadito/retail-api/internal/employee/domain"
)

// ListEmployeesQuery represents the paginated list query
type ListEmployeesQuery struct {
	Skip  int
	Limit int
}

// ListEmployeesHandler handles list employees queries
type ListEmployeesHandler struct {
	repo domain.EmployeeRepository
}

// NewListEmployeesHandler creates a new list employees handler
func NewListEmployeesHandler(repo domain.EmployeeRepository) *ListEmployeesHandler {
	return &ListEmployeesHandler{repo: repo}
}

// Handle executes the list employees query
func (h *ListEmployeesHandler) Handle(q ListEmployeesQuery) ([]domain.Employee, error) {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 100
	}
	return h.repo.FindAll(q.Limit, q.Skip)
}
