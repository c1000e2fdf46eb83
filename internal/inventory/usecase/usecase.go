package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/retail-backoffice/internal/apperr"
	"github.com/fekuna/retail-backoffice/internal/inventory"
	"github.com/fekuna/retail-backoffice/internal/inventory/dto"
	"github.com/fekuna/retail-backoffice/internal/model"
	"github.com/fekuna/retail-backoffice/internal/product"
	"github.com/fekuna/retail-backoffice/internal/validation"
	"github.com/fekuna/retail-backoffice/pkg/cache"
)

type inventoryUseCase struct {
	repo      inventory.Repository
	products  product.Repository
	validator *validation.Validator
	cache     *cache.RedisClient
	logger    *zap.Logger
}

func NewInventoryUseCase(repo inventory.Repository, products product.Repository, validator *validation.Validator, cache *cache.RedisClient, logger *zap.Logger) inventory.UseCase {
	return &inventoryUseCase{
		repo:      repo,
		products:  products,
		validator: validator,
		cache:     cache,
		logger:    logger,
	}
}

func (uc *inventoryUseCase) CreateInventory(ctx context.Context, input *dto.InventoryPayload) (*model.Inventory, error) {
	// The one-row-per-pair rule is enforced by a pre-check, so the
	// check-then-insert must not race with a concurrent creation of the
	// same pair.
	unlock, err := uc.lockPair(ctx, input.ProductID, input.StoreID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if exists, err := uc.validator.ProductExists(ctx, input.ProductID); err != nil {
		return nil, err
	} else if !exists {
		return nil, apperr.New(apperr.NotFound, "Product not found with id: %s", input.ProductID)
	}
	if exists, err := uc.validator.StoreExists(ctx, input.StoreID); err != nil {
		return nil, err
	} else if !exists {
		return nil, apperr.New(apperr.NotFound, "Store not found with id: %s", input.StoreID)
	}

	row, err := uc.validator.FindInventoryRow(ctx, input.ProductID, input.StoreID)
	if err != nil {
		return nil, err
	}
	if row != nil {
		return nil, apperr.New(apperr.Conflict, "Data already present in inventory")
	}

	inv := &model.Inventory{
		ID:         uuid.New().String(),
		ProductID:  input.ProductID,
		StoreID:    input.StoreID,
		StockLevel: input.StockLevel,
		UpdatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (uc *inventoryUseCase) UpdateProductAndInventory(ctx context.Context, input *dto.CombinedRequest) error {
	p, err := uc.products.FindByID(ctx, input.Product.ID)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.New(apperr.NotFound, "Id %s not present in database", input.Product.ID)
	}

	p.Name = input.Product.Name
	p.Category = input.Product.Category
	p.Price = input.Product.Price
	p.SKU = input.Product.SKU
	p.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, p); err != nil {
		return err
	}

	if input.Inventory == nil {
		return nil
	}

	row, err := uc.repo.FindByProductAndStore(ctx, input.Product.ID, input.Inventory.StoreID)
	if err != nil {
		return err
	}
	if row == nil {
		return inventory.ErrNoInventoryRow
	}

	row.StockLevel = input.Inventory.StockLevel
	row.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, row)
}

func (uc *inventoryUseCase) DeleteByProduct(ctx context.Context, productID string) error {
	if exists, err := uc.validator.ProductExists(ctx, productID); err != nil {
		return err
	} else if !exists {
		return apperr.New(apperr.NotFound, "Id %s not present in database", productID)
	}
	return uc.repo.DeleteByProduct(ctx, productID)
}

func (uc *inventoryUseCase) ValidateStock(ctx context.Context, quantity int, storeID, productID string) (bool, error) {
	row, err := uc.repo.FindByProductAndStore(ctx, productID, storeID)
	if err != nil {
		return false, err
	}
	if row == nil {
		return false, nil
	}
	return row.StockLevel >= quantity, nil
}

// lockPair takes the redis lock guarding one (product, store) pair. The
// returned func releases it. Lock failure degrades to proceeding unlocked
// when redis is not configured, and errors out when contention persists.
func (uc *inventoryUseCase) lockPair(ctx context.Context, productID, storeID string) (func(), error) {
	if uc.cache == nil {
		return func() {}, nil
	}

	lockKey := fmt.Sprintf("lock:inventory:%s:%s", productID, storeID)
	lockValue := uuid.New().String()

	acquired := false
	for i := 0; i < 3; i++ {
		ok, err := uc.cache.AcquireLock(ctx, lockKey, lockValue, 5*time.Second)
		if err != nil {
			uc.logger.Error("failed to acquire lock, redis error", zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if !acquired {
		return nil, apperr.New(apperr.Internal, "system busy, please try again later")
	}

	return func() {
		if err := uc.cache.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			uc.logger.Error("failed to release lock", zap.String("key", lockKey), zap.Error(err))
		}
	}, nil
}
