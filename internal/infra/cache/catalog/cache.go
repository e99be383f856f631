// Package catalog кэширует чтения каталога вендоров (услуги и расписание) в Redis.
// Кэш read-through: промах или ошибка Redis ведут к чтению из источника,
// ошибки источника не кэшируются.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const keyPrefix = "availability:catalog"

// Cache декоратор над Source с кэшем в Redis
type Cache struct {
	source Source
	rdb    RedisClient
	ttl    time.Duration
	log    Logger
}

// New создает кэш каталога
func New(source Source, rdb RedisClient, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		source: source,
		rdb:    rdb,
		ttl:    ttl,
		log:    log,
	}
}

// GetService получает услугу из кэша или из источника
func (c *Cache) GetService(ctx context.Context, vendorID, serviceID string) (*domain.Service, error) {
	key := fmt.Sprintf("%s:service:%s:%s", keyPrefix, vendorID, serviceID)

	var cached cachedService
	if c.load(ctx, key, &cached) {
		return cached.toDomain(), nil
	}

	service, err := c.source.GetService(ctx, vendorID, serviceID)
	if err != nil {
		return nil, err
	}
	// Пустой ответ не кэшируем, решение за вызывающим
	if service == nil {
		return nil, nil
	}

	c.store(ctx, key, fromService(service))
	return service, nil
}

// GetOpeningHours получает расписание вендора из кэша или из источника
func (c *Cache) GetOpeningHours(ctx context.Context, vendorID string) ([]domain.OpeningWindow, error) {
	key := fmt.Sprintf("%s:hours:%s", keyPrefix, vendorID)

	var cached []cachedWindow
	if c.load(ctx, key, &cached) {
		return toWindows(cached), nil
	}

	windows, err := c.source.GetOpeningHours(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, fromWindows(windows))
	return windows, nil
}

// load возвращает true, если значение найдено и успешно декодировано
func (c *Cache) load(ctx context.Context, key string, out interface{}) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.log.Warn("catalog cache: get %s failed, reading from source: %v", key, err)
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warn("catalog cache: corrupted entry %s: %v", key, err)
		return false
	}

	return true
}

func (c *Cache) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Error("catalog cache: marshal %s: %v", key, err)
		return
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("catalog cache: set %s failed: %v", key, err)
	}
}
