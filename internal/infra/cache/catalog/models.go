package catalog

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Модели хранятся в Redis в JSON; время работы сохраняется строкой как есть,
// чтобы некорректные интервалы доходили до движка и отбрасывались там же, где и без кэша

type cachedRequirement struct {
	GroupID  string `json:"g"`
	Quantity int    `json:"q"`
}

type cachedService struct {
	ID              string              `json:"id"`
	VendorID        string              `json:"vendor_id"`
	Name            string              `json:"name"`
	DurationMinutes int                 `json:"duration_minutes"`
	Requirements    []cachedRequirement `json:"requirements"`
}

type cachedRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type cachedWindow struct {
	DayOfWeek int           `json:"day"`
	IsOpen    bool          `json:"open"`
	Ranges    []cachedRange `json:"ranges"`
}

func fromService(s *domain.Service) cachedService {
	reqs := make([]cachedRequirement, 0, len(s.ResourceRequirements))
	for _, r := range s.ResourceRequirements {
		reqs = append(reqs, cachedRequirement{GroupID: r.GroupID, Quantity: r.Quantity})
	}
	return cachedService{
		ID:              s.ID,
		VendorID:        s.VendorID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Requirements:    reqs,
	}
}

func (c cachedService) toDomain() *domain.Service {
	reqs := make([]domain.ResourceRequirement, 0, len(c.Requirements))
	for _, r := range c.Requirements {
		reqs = append(reqs, domain.ResourceRequirement{GroupID: r.GroupID, Quantity: r.Quantity})
	}
	return &domain.Service{
		ID:                   c.ID,
		VendorID:             c.VendorID,
		Name:                 c.Name,
		DurationMinutes:      c.DurationMinutes,
		ResourceRequirements: reqs,
	}
}

func fromWindows(windows []domain.OpeningWindow) []cachedWindow {
	out := make([]cachedWindow, 0, len(windows))
	for _, w := range windows {
		ranges := make([]cachedRange, 0, len(w.TimeRanges))
		for _, r := range w.TimeRanges {
			ranges = append(ranges, cachedRange{From: r.From.String(), To: r.To.String()})
		}
		out = append(out, cachedWindow{DayOfWeek: int(w.DayOfWeek), IsOpen: w.IsOpen, Ranges: ranges})
	}
	return out
}

func toWindows(cached []cachedWindow) []domain.OpeningWindow {
	out := make([]domain.OpeningWindow, 0, len(cached))
	for _, w := range cached {
		ranges := make([]domain.TimeRange, 0, len(w.Ranges))
		for _, r := range w.Ranges {
			ranges = append(ranges, domain.TimeRange{From: types.TimeString(r.From), To: types.TimeString(r.To)})
		}
		out = append(out, domain.OpeningWindow{DayOfWeek: time.Weekday(w.DayOfWeek), IsOpen: w.IsOpen, TimeRanges: ranges})
	}
	return out
}
