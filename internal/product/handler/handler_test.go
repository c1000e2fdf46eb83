package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fekuna/retail-backoffice/internal/apperr"
	"github.com/fekuna/retail-backoffice/internal/model"
	"github.com/fekuna/retail-backoffice/internal/product"
	"github.com/fekuna/retail-backoffice/internal/product/dto"
)

type fakeProductUseCase struct {
	product.UseCase
	products map[string]*model.Product
	created  *dto.CreateProductInput
	deleted  string
}

func (f *fakeProductUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if _, taken := f.products[input.Name]; taken {
		return nil, apperr.New(apperr.Conflict, "Product already present in database")
	}
	f.created = input
	return &model.Product{Name: input.Name}, nil
}

func (f *fakeProductUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "Product not found with id: %s", id)
}

func (f *fakeProductUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	out := []model.Product{}
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductUseCase) FilterByCategoryAndStore(ctx context.Context, category, storeID string) ([]model.Product, error) {
	return []model.Product{}, nil
}

func (f *fakeProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	f.deleted = id
	return nil
}

func newTestRouter(uc *fakeProductUseCase) *mux.Router {
	h := NewProductHandler(uc, zap.NewNop())
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func seededUseCase() *fakeProductUseCase {
	return &fakeProductUseCase{products: map[string]*model.Product{
		"Widget": {
			BaseModel: model.BaseModel{ID: "prod-1"},
			Name:      "Widget", Category: "tools", Price: 9.99, SKU: "WID-001",
		},
	}}
}

func TestCreateProduct(t *testing.T) {
	uc := seededUseCase()
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/product",
		strings.NewReader(`{"name":"Gadget","category":"tools","price":4.5,"sku":"GAD-001"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Product added successfully", body["message"])
	require.NotNil(t, uc.created)
	assert.Equal(t, "GAD-001", uc.created.SKU)
}

func TestCreateProduct_DuplicateName(t *testing.T) {
	r := newTestRouter(seededUseCase())

	req := httptest.NewRequest(http.MethodPost, "/product",
		strings.NewReader(`{"name":"Widget","category":"tools","price":9.99,"sku":"WID-002"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Product already present in database", body["message"])
}

func TestGetProductByID_EnvelopeKey(t *testing.T) {
	r := newTestRouter(seededUseCase())

	req := httptest.NewRequest(http.MethodGet, "/product/product/prod-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	p, ok := body["products"]
	require.True(t, ok, `single-product fetch uses the "products" key`)
	assert.Equal(t, "Widget", p.Name)
}

func TestGetProductByID_NotFound(t *testing.T) {
	r := newTestRouter(seededUseCase())

	req := httptest.NewRequest(http.MethodGet, "/product/product/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Product not found with id: nope", body["message"])
}

func TestFilterByCategoryAndStore_EnvelopeKey(t *testing.T) {
	r := newTestRouter(seededUseCase())

	req := httptest.NewRequest(http.MethodGet, "/product/filter/tools/store-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	_, ok := body["product"]
	assert.True(t, ok, `store filter responds under the "product" key`)
}

func TestDeleteProduct(t *testing.T) {
	uc := seededUseCase()
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/product/prod-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Deleted product successfully with id: prod-1", body["message"])
	assert.Equal(t, "prod-1", uc.deleted)
}
