// Package validation holds the stateless predicate checks write operations
// run before touching storage.
package validation

import (
	"context"

	"github.com/fekuna/retail-backoffice/internal/model"
)

type ProductReader interface {
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)
}

type StoreReader interface {
	FindByID(ctx context.Context, id string) (*model.Store, error)
}

type InventoryReader interface {
	FindByProductAndStore(ctx context.Context, productID, storeID string) (*model.Inventory, error)
}

type Validator struct {
	products  ProductReader
	stores    StoreReader
	inventory InventoryReader
}

func NewValidator(products ProductReader, stores StoreReader, inventory InventoryReader) *Validator {
	return &Validator{products: products, stores: stores, inventory: inventory}
}

func (v *Validator) ProductExists(ctx context.Context, id string) (bool, error) {
	p, err := v.products.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

// ProductNameAvailable reports whether no product carries this exact name.
// Name-based only: duplicate SKUs are caught by the database's uniqueness
// constraint and surfaced as a conflict.
func (v *Validator) ProductNameAvailable(ctx context.Context, name string) (bool, error) {
	p, err := v.products.FindByName(ctx, name)
	if err != nil {
		return false, err
	}
	return p == nil, nil
}

func (v *Validator) StoreExists(ctx context.Context, id string) (bool, error) {
	s, err := v.stores.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return s != nil, nil
}

// InventoryRowAvailable reports whether a stock-level row may be created for
// the pair. Unresolvable product or store ids count as unavailable so no
// orphaned inventory can be created.
func (v *Validator) InventoryRowAvailable(ctx context.Context, productID, storeID string) (bool, error) {
	exists, err := v.ProductExists(ctx, productID)
	if err != nil || !exists {
		return false, err
	}
	exists, err = v.StoreExists(ctx, storeID)
	if err != nil || !exists {
		return false, err
	}

	inv, err := v.inventory.FindByProductAndStore(ctx, productID, storeID)
	if err != nil {
		return false, err
	}
	return inv == nil, nil
}

// FindInventoryRow returns the stock-level row for the pair, nil when absent.
func (v *Validator) FindInventoryRow(ctx context.Context, productID, storeID string) (*model.Inventory, error) {
	return v.inventory.FindByProductAndStore(ctx, productID, storeID)
}
