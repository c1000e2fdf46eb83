package customer

import (
	"context"

	"github.com/fekuna/retail-backoffice/internal/model"
)

// Repository is read-mostly: customers are created only by the order
// placement flow, inside its transaction.
type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
}
