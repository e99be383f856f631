package vendorservice

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ResourceRequirement требование услуги к группе ресурсов из VendorService
type ResourceRequirement struct {
	GroupID  string `json:"group_id"`
	Quantity int    `json:"quantity"`
}

// Service модель услуги из VendorService
type Service struct {
	ID                   string                `json:"id"`
	VendorID             string                `json:"vendor_id"`
	Name                 string                `json:"name"`
	DurationMinutes      int                   `json:"duration_minutes"`
	ResourceRequirements []ResourceRequirement `json:"resource_requirements"`
}

// TimeRange интервал работы; строки не валидируются здесь, некорректные интервалы отбрасывает движок
type TimeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// OpeningDay расписание на день недели (0 = воскресенье ... 6 = суббота)
type OpeningDay struct {
	DayOfWeek  int         `json:"day_of_week"`
	IsOpen     bool        `json:"is_open"`
	TimeRanges []TimeRange `json:"time_ranges"`
}

// OpeningHoursResponse ответ VendorService с расписанием вендора
type OpeningHoursResponse struct {
	VendorID     string       `json:"vendor_id"`
	OpeningHours []OpeningDay `json:"opening_hours"`
}

// ErrorResponse модель ошибки от VendorService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует услугу в доменную модель
func (s *Service) ToDomain() *domain.Service {
	reqs := make([]domain.ResourceRequirement, 0, len(s.ResourceRequirements))
	for _, r := range s.ResourceRequirements {
		reqs = append(reqs, domain.ResourceRequirement{GroupID: r.GroupID, Quantity: r.Quantity})
	}

	return &domain.Service{
		ID:                   s.ID,
		VendorID:             s.VendorID,
		Name:                 s.Name,
		DurationMinutes:      s.DurationMinutes,
		ResourceRequirements: reqs,
	}
}

// ToDomain конвертирует расписание в доменные окна
// Дни недели вне диапазона 0-6 пропускаются
func (r *OpeningHoursResponse) ToDomain() []domain.OpeningWindow {
	windows := make([]domain.OpeningWindow, 0, len(r.OpeningHours))
	for _, day := range r.OpeningHours {
		if day.DayOfWeek < int(time.Sunday) || day.DayOfWeek > int(time.Saturday) {
			continue
		}

		ranges := make([]domain.TimeRange, 0, len(day.TimeRanges))
		for _, tr := range day.TimeRanges {
			ranges = append(ranges, domain.TimeRange{
				From: types.TimeString(tr.From),
				To:   types.TimeString(tr.To),
			})
		}

		windows = append(windows, domain.OpeningWindow{
			DayOfWeek:  time.Weekday(day.DayOfWeek),
			IsOpen:     day.IsOpen,
			TimeRanges: ranges,
		})
	}
	return windows
}
