package store

import (
	"context"

	"github.com/fekuna/retail-backoffice/internal/model"
)

type Repository interface {
	Create(ctx context.Context, store *model.Store) error
	FindByID(ctx context.Context, id string) (*model.Store, error)
}
