package review

import (
	"context"

	"github.com/fekuna/retail-backoffice/internal/model"
)

// Repository stores reviews as standalone documents, not relational rows;
// customer names are resolved separately at read time.
type Repository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByStoreAndProduct(ctx context.Context, storeID, productID string) ([]model.Review, error)
	FindAll(ctx context.Context) ([]model.Review, error)
}
