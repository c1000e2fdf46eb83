package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fekuna/retail-backoffice/internal/model"
	"github.com/fekuna/retail-backoffice/internal/store/dto"
)

type fakeStoreRepo struct {
	byID    map[string]*model.Store
	created *model.Store
}

func (f *fakeStoreRepo) Create(ctx context.Context, s *model.Store) error {
	f.created = s
	return nil
}

func (f *fakeStoreRepo) FindByID(ctx context.Context, id string) (*model.Store, error) {
	return f.byID[id], nil
}

func TestCreateStore(t *testing.T) {
	repo := &fakeStoreRepo{byID: map[string]*model.Store{}}
	uc := NewStoreUseCase(repo, zap.NewNop())

	s, err := uc.CreateStore(context.Background(), &dto.CreateStoreInput{
		Name: "Downtown", Address: "1 Main St",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Downtown", repo.created.Name)
	assert.Equal(t, "1 Main St", repo.created.Address)
}

func TestValidateStore(t *testing.T) {
	repo := &fakeStoreRepo{byID: map[string]*model.Store{
		"store-1": {Name: "Downtown"},
	}}
	uc := NewStoreUseCase(repo, zap.NewNop())

	ok, err := uc.ValidateStore(context.Background(), "store-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.ValidateStore(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
