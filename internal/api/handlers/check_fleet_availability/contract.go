package check_fleet_availability

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

type AvailabilityService interface {
	CheckFleet(ctx context.Context, vendorID, startDate, endDate string) (*models.FleetResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
