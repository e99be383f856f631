package check_availability

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

type AvailabilityService interface {
	Check(ctx context.Context, req *models.CheckRequest) (*models.CheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
