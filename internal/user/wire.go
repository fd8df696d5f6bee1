//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/mercadito/retail-api/internal/user/delivery/http"
	"github.com/mercadito/retail-api/internal/user/domain"
	"github.com/mercadito/retail-api/internal/user/repository"
	"github.com/mercadito/retail-api/internal/user/usecase/command"
	"github.com/mercadito/retail-api/internal/user/usecase/query"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

var HandlerSet = wire.NewSet(
	command.NewCreateUserHandler,
	command.NewUpdateUserHandler,
	command.NewDeleteUserHandler,
	query.NewGetUserHandler,
	query.NewListUsersHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.UserHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewUserHandlerWithDI,
	)
	return nil, nil
}
