package command

import (
	"github.com/mercadito/retail-api/internal/user/domain"
)

// DeleteUserCommand represents the command to delete a user
type DeleteUserCommand struct {
	ID uint
}

// DeleteUserHandler handles user deletion
type DeleteUserHandler struct {
	repo domain.UserRepository
}

// NewDeleteUserHandler creates a new delete user handler
func NewDeleteUserHandler(repo domain.UserRepository) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo}
}

// Handle removes the user and returns its pre-deletion state.
func (h *DeleteUserHandler) Handle(cmd DeleteUserCommand) (*domain.User, error) {
	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return nil, err
	}

	return user, nil
}
