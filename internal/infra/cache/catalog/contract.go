package catalog

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Source источник данных каталога (клиент VendorService)
type Source interface {
	GetService(ctx context.Context, vendorID, serviceID string) (*domain.Service, error)
	GetOpeningHours(ctx context.Context, vendorID string) ([]domain.OpeningWindow, error)
}

// RedisClient подмножество команд Redis, нужное кэшу
// Реализуется *redis.Client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
