package query

import (
	"github.com/mercadito/retail-api/internal/user/domain"
)

// ListUsersQuery represents the paginated list query
type ListUsersQuery struct {
	Skip  int
	Limit int
}

// ListUsersHandler handles list users queries
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(q ListUsersQuery) ([]domain.User, error) {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 100
	}
	return h.repo.FindAll(q.Limit, q.Skip)
}
