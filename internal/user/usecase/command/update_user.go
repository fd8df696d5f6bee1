package command

import (
	"github.com/mercadito/retail-api/internal/user/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
)

// UpdateUserCommand applies a change-set to an existing user. PUT and PATCH
// differ only in how the change-set was built, never in how it is applied.
type UpdateUserCommand struct {
	ID      uint
	Changes domain.UserChanges
}

// UpdateUserHandler handles user updates
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle loads the record, merges the change-set and persists the result.
func (h *UpdateUserHandler) Handle(cmd UpdateUserCommand) (*domain.User, error) {
	if email, ok := cmd.Changes.Email.Get(); ok && email == "" {
		return nil, apperror.Validation("email", "email must not be empty")
	}

	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	cmd.Changes.ApplyTo(user)

	if err := h.repo.Save(user); err != nil {
		return nil, err
	}

	return user, nil
}
