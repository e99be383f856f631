package check_fleet_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// FleetRepository интерфейс репозитория автопарка
type FleetRepository interface {
	ListByVendor(ctx context.Context, vendorID string) ([]domain.FleetItem, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListOccupying(ctx context.Context, filter domain.OccupyingBookingsFilter) ([]*domain.Booking, error)
}

// Engine интерфейс движка доступности
type Engine interface {
	CheckFleet(in availability.FleetInput) availability.FleetResult
	Location() *time.Location
}

// MetricsRecorder интерфейс для бизнес-метрик
type MetricsRecorder interface {
	ObserveFleetCheck(available, unavailable int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
