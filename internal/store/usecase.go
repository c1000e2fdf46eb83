package store

import (
	"context"

	"github.com/fekuna/retail-backoffice/internal/model"
	"github.com/fekuna/retail-backoffice/internal/store/dto"
)

type UseCase interface {
	CreateStore(ctx context.Context, input *dto.CreateStoreInput) (*model.Store, error)
	ValidateStore(ctx context.Context, id string) (bool, error)
}
