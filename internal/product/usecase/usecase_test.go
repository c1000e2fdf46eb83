package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fekuna/retail-backoffice/internal/apperr"
	"github.com/fekuna/retail-backoffice/internal/model"
	"github.com/fekuna/retail-backoffice/internal/product"
	"github.com/fekuna/retail-backoffice/internal/product/dto"
)

// fakeProductRepo records which filter the usecase dispatched to. Only the
// reads and writes the tested flows use are implemented; the embedded
// interface panics on anything unexpected.
type fakeProductRepo struct {
	product.Repository
	byID    map[string]*model.Product
	byName  map[string]*model.Product
	created *model.Product
	deleted string
	calls   []string
}

func (f *fakeProductRepo) record(call string) []model.Product {
	f.calls = append(f.calls, call)
	return []model.Product{}
}

func (f *fakeProductRepo) Create(ctx context.Context, p *model.Product) error {
	f.created = p
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *model.Product) error {
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return f.byID[id], nil
}

func (f *fakeProductRepo) FindByName(ctx context.Context, name string) (*model.Product, error) {
	return f.byName[name], nil
}

func (f *fakeProductRepo) DeleteWithInventory(ctx context.Context, id string) error {
	f.deleted = id
	return nil
}

func (f *fakeProductRepo) FindByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return f.record("FindByCategory"), nil
}

func (f *fakeProductRepo) FindBySubName(ctx context.Context, name string) ([]model.Product, error) {
	return f.record("FindBySubName"), nil
}

func (f *fakeProductRepo) FindBySubNameAndCategory(ctx context.Context, name, category string) ([]model.Product, error) {
	return f.record("FindBySubNameAndCategory"), nil
}

func (f *fakeProductRepo) FindByStoreAndCategory(ctx context.Context, storeID, category string) ([]model.Product, error) {
	return f.record("FindByStoreAndCategory"), nil
}

func (f *fakeProductRepo) FindByStoreAndSubName(ctx context.Context, storeID, name string) ([]model.Product, error) {
	return f.record("FindByStoreAndSubName"), nil
}

func (f *fakeProductRepo) FindByStoreSubNameAndCategory(ctx context.Context, storeID, name, category string) ([]model.Product, error) {
	return f.record("FindByStoreSubNameAndCategory"), nil
}

func newFakeRepo() *fakeProductRepo {
	return &fakeProductRepo{
		byID: map[string]*model.Product{
			"prod-1": {BaseModel: model.BaseModel{ID: "prod-1"}, Name: "Widget", SKU: "WID-001"},
		},
		byName: map[string]*model.Product{
			"Widget": {BaseModel: model.BaseModel{ID: "prod-1"}, Name: "Widget"},
		},
	}
}

func TestCreateProduct(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, nil, nil, zap.NewNop())

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name: "Gadget", Category: "tools", Price: 4.50, SKU: "GAD-001",
	})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Gadget", repo.created.Name)
}

func TestCreateProduct_DuplicateName(t *testing.T) {
	uc := NewProductUseCase(newFakeRepo(), nil, nil, zap.NewNop())

	_, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name: "Widget", Category: "tools", Price: 4.50, SKU: "WID-999",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Equal(t, "Product already present in database", apperr.MessageOf(err))
}

func TestGetProduct_NotFound(t *testing.T) {
	uc := NewProductUseCase(newFakeRepo(), nil, nil, zap.NewNop())

	_, err := uc.GetProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "Product not found with id: missing", apperr.MessageOf(err))
}

func TestUpdateProduct(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, nil, nil, zap.NewNop())

	p, err := uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
		ID: "prod-1", Name: "Widget v2", Category: "tools", Price: 11, SKU: "WID-001",
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", p.Name)
	assert.False(t, p.UpdatedAt.IsZero())
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, nil, nil, zap.NewNop())

	require.NoError(t, uc.DeleteProduct(context.Background(), "prod-1"))
	assert.Equal(t, "prod-1", repo.deleted)

	err := uc.DeleteProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestFilterByNameCategory_Dispatch(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		nameArg  string
		category string
		want     string
	}{
		{"name sentinel filters by category", "null", "tools", "FindByCategory"},
		{"category sentinel filters by sub-name", "wid", "null", "FindBySubName"},
		{"both given", "wid", "tools", "FindBySubNameAndCategory"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := NewProductUseCase(repo, nil, nil, zap.NewNop())
			_, err := uc.FilterByNameCategory(ctx, tc.nameArg, tc.category)
			require.NoError(t, err)
			assert.Equal(t, []string{tc.want}, repo.calls)
		})
	}
}

func TestFilterInStore_Dispatch(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		category string
		nameArg  string
		want     string
	}{
		{"category sentinel", "null", "wid", "FindByStoreAndSubName"},
		{"name sentinel", "tools", "null", "FindByStoreAndCategory"},
		{"both given", "tools", "wid", "FindByStoreSubNameAndCategory"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := NewProductUseCase(repo, nil, nil, zap.NewNop())
			_, err := uc.FilterInStore(ctx, tc.category, tc.nameArg, "store-1")
			require.NoError(t, err)
			assert.Equal(t, []string{tc.want}, repo.calls)
		})
	}
}

func TestSearchBySubName_NoSearchBackendFallsBackToDB(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, nil, nil, zap.NewNop())

	_, err := uc.SearchBySubName(context.Background(), "wid")
	require.NoError(t, err)
	assert.Equal(t, []string{"FindBySubName"}, repo.calls)
}
