package order

import (
	"context"

	"github.com/fekuna/retail-backoffice/internal/model"
)

type Repository interface {
	// PlaceOrder persists a complete order as one transaction: it resolves
	// the customer by email (creating candidate when unknown), verifies the
	// store, writes the order header, conditionally deducts stock for every
	// line and writes the line rows. Any failure rolls the whole call back.
	//
	// On return ord.CustomerID carries the resolved customer id.
	PlaceOrder(ctx context.Context, candidate *model.Customer, ord *model.Order, items []model.OrderItem) error
}
