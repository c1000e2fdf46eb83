package inventory

import (
	"context"
	"errors"

	"github.com/fekuna/retail-backoffice/internal/model"
)

// ErrNoInventoryRow signals that no stock-level row exists for the
// requested (product, store) pair.
var ErrNoInventoryRow = errors.New("no inventory row for this product")

type Repository interface {
	Create(ctx context.Context, inv *model.Inventory) error
	Update(ctx context.Context, inv *model.Inventory) error

	// FindByProductAndStore returns (nil, nil) when no row exists for the
	// pair.
	FindByProductAndStore(ctx context.Context, productID, storeID string) (*model.Inventory, error)

	DeleteByProduct(ctx context.Context, productID string) error
}
