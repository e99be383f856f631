package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// CatalogClient интерфейс клиента каталога вендоров (VendorService или кэш над ним)
type CatalogClient interface {
	GetService(ctx context.Context, vendorID, serviceID string) (*domain.Service, error)
	// GetOpeningHours пустой слайс означает, что расписание не настроено
	GetOpeningHours(ctx context.Context, vendorID string) ([]domain.OpeningWindow, error)
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	ListByVendor(ctx context.Context, vendorID string) ([]domain.ResourceInstance, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListOccupying получает занимающие бронирования вендора, пересекающие окно фильтра
	ListOccupying(ctx context.Context, filter domain.OccupyingBookingsFilter) ([]*domain.Booking, error)
}

// Engine интерфейс движка доступности
type Engine interface {
	GenerateSlots(in availability.SlotInput) (availability.SlotResult, error)
	Location() *time.Location
}

// MetricsRecorder интерфейс для бизнес-метрик
type MetricsRecorder interface {
	ObserveSlotQuery(outcome string, slots int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
