package inventory

import (
	"context"

	"github.com/fekuna/retail-backoffice/internal/inventory/dto"
	"github.com/fekuna/retail-backoffice/internal/model"
)

type UseCase interface {
	// CreateInventory creates the stock-level row for a (product, store)
	// pair. At most one row may exist per pair; a second attempt fails with
	// a conflict.
	CreateInventory(ctx context.Context, input *dto.InventoryPayload) (*model.Inventory, error)

	// UpdateProductAndInventory updates a product and, when an inventory
	// payload is present, the stock level of its row in the given store.
	// Returns ErrNoInventoryRow when the pair has no row.
	UpdateProductAndInventory(ctx context.Context, input *dto.CombinedRequest) error

	DeleteByProduct(ctx context.Context, productID string) error

	// ValidateStock reports whether the store holds at least quantity units
	// of the product. A missing row counts as no stock.
	ValidateStock(ctx context.Context, quantity int, storeID, productID string) (bool, error)
}
