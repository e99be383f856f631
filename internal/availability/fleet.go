package availability

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// FleetInput снимок данных для проверки автопарка на диапазон дат
type FleetInput struct {
	Range    domain.TimeInterval
	Items    []domain.FleetItem
	Bookings []*domain.Booking // Аренды вендора, пересекающие диапазон
}

// AvailableItem свободная единица автопарка
type AvailableItem struct {
	ID    string
	Model string
	Price float64
}

// UnavailableItem занятая единица автопарка с описанием конфликта
type UnavailableItem struct {
	ID           string
	Model        string
	ConflictInfo string
	Conflict     *domain.Booking
}

// FleetResult разбиение автопарка на свободные и занятые единицы
// Порядок внутри каждой части совпадает с порядком Items
type FleetResult struct {
	Available   []AvailableItem
	Unavailable []UnavailableItem
}

// CheckFleet классифицирует единицы автопарка
// Единица занята, если хотя бы одна занимающая аренда этой единицы пересекает диапазон.
// При нескольких конфликтах берется самый ранний по началу (затем по ID бронирования).
func (e *Engine) CheckFleet(in FleetInput) FleetResult {
	conflicts := make(map[string]*domain.Booking)
	for _, b := range in.Bookings {
		if !b.IsOccupying() || b.FleetItemID == "" {
			continue
		}
		if !domain.Overlaps(b.Interval, in.Range) {
			continue
		}
		if current, ok := conflicts[b.FleetItemID]; !ok || precedes(b, current) {
			conflicts[b.FleetItemID] = b
		}
	}

	result := FleetResult{
		Available:   make([]AvailableItem, 0, len(in.Items)),
		Unavailable: make([]UnavailableItem, 0),
	}

	for _, item := range in.Items {
		conflict, busy := conflicts[item.ID]
		if !busy {
			result.Available = append(result.Available, AvailableItem{
				ID:    item.ID,
				Model: item.Model,
				Price: item.PricePerDay,
			})
			continue
		}

		result.Unavailable = append(result.Unavailable, UnavailableItem{
			ID:           item.ID,
			Model:        item.Model,
			ConflictInfo: e.conflictInfo(conflict),
			Conflict:     conflict,
		})
	}

	return result
}

// conflictInfo формирует текст "Prenotato da <имя> fino al DD/MM/YYYY"
func (e *Engine) conflictInfo(b *domain.Booking) string {
	until := b.Interval.End.In(e.location).Format(domain.DisplayDateFormat)

	name := strings.TrimSpace(b.RequesterName)
	if name == "" {
		return fmt.Sprintf("Prenotato fino al %s", until)
	}
	return fmt.Sprintf("Prenotato da %s fino al %s", name, until)
}

func precedes(a, b *domain.Booking) bool {
	if !a.Interval.Start.Equal(b.Interval.Start) {
		return a.Interval.Start.Before(b.Interval.Start)
	}
	return a.ID < b.ID
}
