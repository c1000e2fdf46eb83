package product

import (
	"context"

	"github.com/fekuna/retail-backoffice/internal/model"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error

	// DeleteWithInventory removes the product and its inventory rows in one
	// transaction.
	DeleteWithInventory(ctx context.Context, id string) error

	// Catalog-wide filters.
	FindByCategory(ctx context.Context, category string) ([]model.Product, error)
	FindBySubName(ctx context.Context, name string) ([]model.Product, error)
	FindBySubNameAndCategory(ctx context.Context, name, category string) ([]model.Product, error)

	// Store-scoped filters (joined through inventory rows).
	FindByStore(ctx context.Context, storeID string) ([]model.Product, error)
	FindByStoreAndCategory(ctx context.Context, storeID, category string) ([]model.Product, error)
	FindByStoreAndSubName(ctx context.Context, storeID, name string) ([]model.Product, error)
	FindByStoreSubNameAndCategory(ctx context.Context, storeID, name, category string) ([]model.Product, error)
}
