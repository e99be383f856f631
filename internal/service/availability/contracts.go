package availability

import (
	"context"

	checkFleet "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_fleet_availability"
	getSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// SlotsUseCase интерфейс use case расчета слотов услуги
type SlotsUseCase interface {
	Execute(ctx context.Context, req *getSlots.Request) (*getSlots.Response, error)
}

// FleetUseCase интерфейс use case проверки автопарка
type FleetUseCase interface {
	Execute(ctx context.Context, req *checkFleet.Request) (*checkFleet.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
