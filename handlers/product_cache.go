package handlers

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/Meenakshi-Adapa/CraftHub/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const productCacheKey = "products"

// The product list lives in a redis ZSET scored by product ID with JSON
// members. The cache is best-effort: a nil client or a redis failure falls
// back to the database.

func cachedProductList(ctx context.Context, rdb *redis.Client, start, stop int64) ([]models.Product, bool) {
	if rdb == nil {
		return nil, false
	}
	if rdb.ZCard(ctx, productCacheKey).Val() == 0 {
		return nil, false
	}

	members, err := rdb.ZRange(ctx, productCacheKey, start, stop).Result()
	if err != nil {
		return nil, false
	}

	products := make([]models.Product, 0, len(members))
	for _, member := range members {
		var product models.Product
		if err := json.Unmarshal([]byte(member), &product); err != nil {
			log.Warn().Err(err).Msg("failed to decode cached product")
			continue
		}
		products = append(products, product)
	}
	return products, true
}

func rebuildProductCache(ctx context.Context, rdb *redis.Client, db *gorm.DB) {
	if rdb == nil {
		return
	}

	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		log.Warn().Err(err).Msg("failed to load products for cache rebuild")
		return
	}

	rdb.Del(ctx, productCacheKey)
	for _, product := range products {
		cacheProduct(ctx, rdb, &product)
	}
}

func cacheProduct(ctx context.Context, rdb *redis.Client, product *models.Product) {
	if rdb == nil {
		return
	}

	productJSON, err := json.Marshal(product)
	if err != nil {
		log.Warn().Err(err).Uint("productID", product.ID).Msg("failed to encode product for cache")
		return
	}

	score := strconv.Itoa(int(product.ID))
	rdb.ZRemRangeByScore(ctx, productCacheKey, score, score)
	err = rdb.ZAdd(ctx, productCacheKey, redis.Z{
		Score:  float64(product.ID),
		Member: productJSON,
	}).Err()
	if err != nil {
		log.Warn().Err(err).Uint("productID", product.ID).Msg("failed to cache product")
	}
}

func evictProduct(ctx context.Context, rdb *redis.Client, productID uint) {
	if rdb == nil {
		return
	}

	score := strconv.Itoa(int(productID))
	if err := rdb.ZRemRangeByScore(ctx, productCacheKey, score, score).Err(); err != nil {
		log.Warn().Err(err).Uint("productID", productID).Msg("failed to evict product from cache")
	}
}
