package product

import (
	"context"

	"github.com/fekuna/retail-backoffice/internal/model"
	"github.com/fekuna/retail-backoffice/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListProducts(ctx context.Context) ([]model.Product, error)

	// FilterByNameCategory honors the "null" path sentinel: a literal "null"
	// for either segment disables that filter.
	FilterByNameCategory(ctx context.Context, name, category string) ([]model.Product, error)
	FilterByCategoryAndStore(ctx context.Context, category, storeID string) ([]model.Product, error)
	SearchBySubName(ctx context.Context, name string) ([]model.Product, error)

	ListByStore(ctx context.Context, storeID string) ([]model.Product, error)
	FilterInStore(ctx context.Context, category, name, storeID string) ([]model.Product, error)
	SearchInStore(ctx context.Context, name, storeID string) ([]model.Product, error)
}
