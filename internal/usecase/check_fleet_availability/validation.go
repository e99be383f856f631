package check_fleet_availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует запрос и возвращает диапазон [from, to)
// endDate не входит в диапазон: бронирование, начинающееся в endDate, не конфликтует
func validateRequest(req *Request, loc *time.Location) (domain.TimeInterval, error) {
	if strings.TrimSpace(req.VendorID) == "" {
		return domain.TimeInterval{}, fmt.Errorf("%w: vendorId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.StartDate) == "" {
		return domain.TimeInterval{}, fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.EndDate) == "" {
		return domain.TimeInterval{}, fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	from, err := parseDate(req.StartDate, loc)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: startDate: %v", ErrInvalidInput, err)
	}

	to, err := parseDate(req.EndDate, loc)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: endDate: %v", ErrInvalidInput, err)
	}

	interval, err := domain.NewTimeInterval(from, to)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: endDate must be after startDate", ErrInvalidInput)
	}

	return interval, nil
}

// parseDate разбирает YYYY-MM-DD (полночь в зоне loc) или RFC 3339
func parseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.ParseInLocation(domain.DateFormat, value, loc); err == nil {
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("expected YYYY-MM-DD or RFC 3339, got %q", value)
}
