package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/fekuna/retail-backoffice/internal/apperr"
	"github.com/fekuna/retail-backoffice/internal/model"
	"github.com/fekuna/retail-backoffice/internal/product"
	"github.com/fekuna/retail-backoffice/internal/product/dto"
	"github.com/fekuna/retail-backoffice/pkg/cache"
	"github.com/fekuna/retail-backoffice/pkg/search"
)

const (
	productIndex    = "products"
	listCacheKey    = "products:list:all"
	listCacheTTL    = 5 * time.Minute
	productNullFlag = "null"
)

type productUseCase struct {
	repo   product.Repository
	cache  *cache.RedisClient
	es     *search.Client
	logger *zap.Logger
	sf     singleflight.Group
}

func NewProductUseCase(repo product.Repository, cache *cache.RedisClient, es *search.Client, logger *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  cache,
		es:     es,
		logger: logger,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	existing, err := uc.repo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "Product already present in database")
	}

	now := time.Now()
	p := &model.Product{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:      input.Name,
		Category:  input.Category,
		Price:     input.Price,
		SKU:       input.SKU,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.New(apperr.NotFound, "Product not found with id: %s", id)
	}
	return p, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.New(apperr.NotFound, "Product not found with id: %s", input.ID)
	}

	p.Name = input.Name
	p.Category = input.Category
	p.Price = input.Price
	p.SKU = input.SKU
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.New(apperr.NotFound, "Id %s not present in database", id)
	}

	if err := uc.repo.DeleteWithInventory(ctx, id); err != nil {
		return err
	}

	go uc.invalidateListCache(context.Background())
	go uc.removeFromElastic(context.Background(), id)

	return nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	if uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, listCacheKey).Result(); err == nil {
			var products []model.Product
			if err := json.Unmarshal([]byte(val), &products); err == nil {
				return products, nil
			}
		}
	}

	// Collapse concurrent misses into a single DB load.
	v, err, _ := uc.sf.Do(listCacheKey, func() (interface{}, error) {
		products, err := uc.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		if uc.cache != nil {
			if data, err := json.Marshal(products); err == nil {
				uc.cache.Client.Set(ctx, listCacheKey, data, listCacheTTL)
			}
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Product), nil
}

func (uc *productUseCase) FilterByNameCategory(ctx context.Context, name, category string) ([]model.Product, error) {
	switch {
	case name == productNullFlag:
		return uc.repo.FindByCategory(ctx, category)
	case category == productNullFlag:
		return uc.repo.FindBySubName(ctx, name)
	default:
		return uc.repo.FindBySubNameAndCategory(ctx, name, category)
	}
}

func (uc *productUseCase) FilterByCategoryAndStore(ctx context.Context, category, storeID string) ([]model.Product, error) {
	return uc.repo.FindByStoreAndCategory(ctx, storeID, category)
}

func (uc *productUseCase) SearchBySubName(ctx context.Context, name string) ([]model.Product, error) {
	if uc.es != nil {
		products, err := uc.searchElastic(ctx, name)
		if err == nil {
			return products, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}
	return uc.repo.FindBySubName(ctx, name)
}

func (uc *productUseCase) ListByStore(ctx context.Context, storeID string) ([]model.Product, error) {
	return uc.repo.FindByStore(ctx, storeID)
}

func (uc *productUseCase) FilterInStore(ctx context.Context, category, name, storeID string) ([]model.Product, error) {
	switch {
	case category == productNullFlag:
		return uc.repo.FindByStoreAndSubName(ctx, storeID, name)
	case name == productNullFlag:
		return uc.repo.FindByStoreAndCategory(ctx, storeID, category)
	default:
		return uc.repo.FindByStoreSubNameAndCategory(ctx, storeID, name, category)
	}
}

func (uc *productUseCase) SearchInStore(ctx context.Context, name, storeID string) ([]model.Product, error) {
	return uc.repo.FindByStoreAndSubName(ctx, storeID, name)
}

func (uc *productUseCase) searchElastic(ctx context.Context, name string) ([]model.Product, error) {
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"query_string": map[string]interface{}{
				"query":  fmt.Sprintf("*%s*", name),
				"fields": []string{"name^3", "sku", "category"},
			},
		},
	}

	res, err := uc.es.Search(ctx, productIndex, q)
	if err != nil {
		return nil, err
	}

	products := []model.Product{}
	for _, hit := range res.Hits.Hits {
		var p model.Product
		if err := json.Unmarshal(hit.Source, &p); err == nil {
			products = append(products, p)
		}
	}
	return products, nil
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"name": { "type": "text" },
				"category": { "type": "keyword" },
				"sku": { "type": "keyword" },
				"price": { "type": "double" },
				"created_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, productIndex, mapping)

	if err := uc.es.Index(ctx, productIndex, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.String("id", p.ID), zap.Error(err))
	}
}

func (uc *productUseCase) removeFromElastic(ctx context.Context, id string) {
	if uc.es == nil {
		return
	}
	if err := uc.es.Delete(ctx, productIndex, id); err != nil {
		uc.logger.Error("failed to remove product from index", zap.String("id", id), zap.Error(err))
	}
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Client.Del(ctx, listCacheKey).Err(); err != nil {
		uc.logger.Error("failed to invalidate product list cache", zap.Error(err))
	}
}
