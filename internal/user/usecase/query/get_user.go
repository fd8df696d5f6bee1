package query

import (
	"github.com/mercadito/retail-api/internal/user/domain"
)

// GetUserQuery represents the query to get a user by id
type GetUserQuery struct {
	ID uint
}

// GetUserHandler handles get user queries
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(q GetUserQuery) (*domain.User, error) {
	return h.repo.FindByID(q.ID)
}
