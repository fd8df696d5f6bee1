//go:build wireinject
// +build wireinject

package product

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/mercadito/retail-api/internal/product/delivery/http"
	"github.com/mercadito/retail-api/internal/product/domain"
	"github.com/mercadito/retail-api/internal/product/repository"
	"github.com/mercadito/retail-api/internal/product/usecase/command"
	"github.com/mercadito/retail-api/internal/product/usecase/query"
)

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

var HandlerSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewDeleteProductHandler,
	query.NewGetProductHandler,
	query.NewListProductsHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.ProductHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewProductHandlerWithDI,
	)
	return nil, nil
}
