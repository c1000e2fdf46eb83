package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/fekuna/retail-backoffice/internal/model"
	"github.com/fekuna/retail-backoffice/pkg/cache"
)

const (
	reviewKeyPrefix = "review:"
	allReviewsKey   = "reviews:all"
)

// RedisRepository keeps each review as a JSON document under review:{id}
// with two id lists for lookup: one per (store, product) pair and one
// global. Lists keep insertion order, so reads come back oldest first.
type RedisRepository struct {
	client *cache.RedisClient
}

func NewRedisRepository(client *cache.RedisClient) *RedisRepository {
	return &RedisRepository{client: client}
}

func pairIndexKey(storeID, productID string) string {
	return fmt.Sprintf("reviews:index:%s:%s", storeID, productID)
}

func (r *RedisRepository) Create(ctx context.Context, review *model.Review) error {
	doc, err := json.Marshal(review)
	if err != nil {
		return errors.Wrap(err, "marshal review")
	}

	pipe := r.client.Client.TxPipeline()
	pipe.Set(ctx, reviewKeyPrefix+review.ID, doc, 0)
	pipe.RPush(ctx, pairIndexKey(review.StoreID, review.ProductID), review.ID)
	pipe.RPush(ctx, allReviewsKey, review.ID)
	_, err = pipe.Exec(ctx)
	return errors.Wrap(err, "store review")
}

func (r *RedisRepository) FindByStoreAndProduct(ctx context.Context, storeID, productID string) ([]model.Review, error) {
	ids, err := r.client.Client.LRange(ctx, pairIndexKey(storeID, productID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "list review ids for pair")
	}
	return r.fetch(ctx, ids)
}

func (r *RedisRepository) FindAll(ctx context.Context) ([]model.Review, error) {
	ids, err := r.client.Client.LRange(ctx, allReviewsKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "list review ids")
	}
	return r.fetch(ctx, ids)
}

func (r *RedisRepository) fetch(ctx context.Context, ids []string) ([]model.Review, error) {
	reviews := []model.Review{}
	if len(ids) == 0 {
		return reviews, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = reviewKeyPrefix + id
	}

	docs, err := r.client.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "fetch review documents")
	}

	for _, doc := range docs {
		s, ok := doc.(string)
		if !ok {
			// Document expired or deleted out-of-band; the index entry is
			// stale, skip it.
			continue
		}
		var rv model.Review
		if err := json.Unmarshal([]byte(s), &rv); err != nil {
			continue
		}
		reviews = append(reviews, rv)
	}
	return reviews, nil
}
