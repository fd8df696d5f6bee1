package command

import (
	"time"

	"github.com/mercadito/retail-api/internal/user/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
)

// CreateUserCommand represents the command to create a user
type CreateUserCommand struct {
	domain.CreateUser
}

// CreateUserHandler handles user creation
type CreateUserHandler struct {
	repo domain.UserRepository
}

// NewCreateUserHandler creates a new create user handler
func NewCreateUserHandler(repo domain.UserRepository) *CreateUserHandler {
	return &CreateUserHandler{repo: repo}
}

// Handle executes the create user command. The email pre-check and the
// insert are separate round trips; the unique index backstops the race.
func (h *CreateUserHandler) Handle(cmd CreateUserCommand) (*domain.User, error) {
	if cmd.Email == "" {
		return nil, apperror.Validation("email", "email is required")
	}
	if cmd.PasswordHash == "" {
		return nil, apperror.Validation("password_hash", "password_hash is required")
	}

	if _, err := h.repo.FindByEmail(cmd.Email); err == nil {
		return nil, apperror.Conflict("Email already registered")
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	user := &domain.User{
		Email:            cmd.Email,
		PasswordHash:     cmd.PasswordHash,
		FirstName:        cmd.FirstName,
		LastName:         cmd.LastName,
		PhoneNumber:      cmd.PhoneNumber,
		Address:          cmd.Address,
		RegistrationDate: time.Now(),
	}

	if err := h.repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}
