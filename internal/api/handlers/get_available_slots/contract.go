package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetSlots(ctx context.Context, vendorID, serviceID, date string) (*models.SlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
