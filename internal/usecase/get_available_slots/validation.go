package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает дату в зоне loc
func validateRequest(req *Request, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(req.VendorID) == "" {
		return time.Time{}, fmt.Errorf("%w: vendorId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return time.Time{}, fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Date) == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(req.Date), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in format YYYY-MM-DD", ErrInvalidInput)
	}

	return date, nil
}
