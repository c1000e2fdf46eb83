package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/retail-backoffice/internal/model"
	"github.com/fekuna/retail-backoffice/internal/store"
	"github.com/fekuna/retail-backoffice/internal/store/dto"
)

type storeUseCase struct {
	repo   store.Repository
	logger *zap.Logger
}

func NewStoreUseCase(repo store.Repository, logger *zap.Logger) store.UseCase {
	return &storeUseCase{repo: repo, logger: logger}
}

func (uc *storeUseCase) CreateStore(ctx context.Context, input *dto.CreateStoreInput) (*model.Store, error) {
	now := time.Now()
	s := &model.Store{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:      input.Name,
		Address:   input.Address,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *storeUseCase) ValidateStore(ctx context.Context, id string) (bool, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return s != nil, nil
}
