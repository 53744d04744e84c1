package service

import (
	"context"
	"encoding/json"
	"errors"
	"lms_backend/internal/model"
	"lms_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	catalogCacheKey   = "lms:catalog:published"
	catalogVersionKey = "lms:catalog:version"
)

var errStaleCatalog = errors.New("catalog changed while loading")

// CatalogCache 已发布课程列表的读穿缓存；Redis 为 nil 时直接查库
type CatalogCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewCatalogCache(rdb *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{Redis: rdb, TTL: ttl}
}

func (c *CatalogCache) enabled() bool {
	return c != nil && c.Redis != nil
}

func (c *CatalogCache) GetOrLoad(ctx context.Context, load func() ([]model.CourseWithTest, error)) ([]model.CourseWithTest, error) {
	if !c.enabled() {
		return load()
	}

	val, err := c.Redis.Get(ctx, catalogCacheKey).Result()
	if err == nil {
		var courses []model.CourseWithTest
		if err := json.Unmarshal([]byte(val), &courses); err == nil {
			return courses, nil
		}
	} else if err != redis.Nil {
		// 缓存不可用时降级查库
		logger.Log.Warn("catalog cache read failed", zap.Error(err))
		return load()
	}

	version, err := c.version(ctx, c.Redis)
	if err != nil {
		logger.Log.Warn("catalog cache version read failed", zap.Error(err))
		return load()
	}

	courses, err := load()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(courses); err == nil {
		c.store(ctx, version, data)
	}
	return courses, nil
}

func (c *CatalogCache) version(ctx context.Context, cmd redis.Cmdable) (int64, error) {
	v, err := cmd.Get(ctx, catalogVersionKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return v, err
}

// store 仅在加载期间没有发生 Invalidate 时写入
func (c *CatalogCache) store(ctx context.Context, version int64, data []byte) {
	err := c.Redis.Watch(ctx, func(tx *redis.Tx) error {
		current, err := c.version(ctx, tx)
		if err != nil {
			return err
		}
		if current != version {
			return errStaleCatalog
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, catalogCacheKey, data, c.TTL)
			return nil
		})
		return err
	}, catalogVersionKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleCatalog), errors.Is(err, redis.TxFailedErr):
		logger.Log.Debug("catalog cache write skipped", zap.Error(err))
	default:
		logger.Log.Warn("catalog cache write failed", zap.Error(err))
	}
}

// Invalidate 课程或题目变更后调用
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	_, err := c.Redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, catalogVersionKey)
		pipe.Del(ctx, catalogCacheKey)
		return nil
	})
	if err != nil {
		logger.Log.Warn("catalog cache invalidate failed", zap.Error(err))
	}
}
