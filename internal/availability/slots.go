package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// SlotInput снимок данных для расчета слотов одной услуги на одну дату
type SlotInput struct {
	Date           time.Time // Календарная дата (используются только год/месяц/день)
	Now            time.Time // Текущий момент; слоты в прошлом не предлагаются
	OpeningWindows []domain.OpeningWindow
	Service        *domain.Service
	Inventory      []domain.ResourceInstance
	Bookings       []*domain.Booking // Занимающие бронирования вендора на эту дату
}

// SlotResult результат расчета слотов
type SlotResult struct {
	Status        domain.SlotStatus
	Slots         []string           // Время начала слотов "HH:MM" в хронологическом порядке
	SkippedRanges []domain.TimeRange // Некорректные интервалы работы, пропущенные при расчете
}

// GenerateSlots перебирает кандидатов с шагом SlotGranularity внутри интервалов работы
// и оставляет только те, где хватает ресурсов на всю длительность услуги
func (e *Engine) GenerateSlots(in SlotInput) (SlotResult, error) {
	if in.Service == nil || !in.Service.IsConfigured() {
		return SlotResult{}, ErrServiceMisconfigured
	}

	// Расписание не настроено вовсе - отличается от "закрыто сегодня"
	if len(in.OpeningWindows) == 0 {
		return SlotResult{Status: domain.SlotStatusNotConfigured, Slots: []string{}}, nil
	}

	day := e.calendarDay(in.Date)
	window, ok := domain.WindowForDay(in.OpeningWindows, day.Weekday())
	if !ok || !window.IsOpen {
		return SlotResult{Status: domain.SlotStatusClosed, Slots: []string{}}, nil
	}

	ranges, skipped := orderedRanges(window.TimeRanges)
	duration := time.Duration(in.Service.DurationMinutes) * time.Minute

	slots := make([]string, 0)
	var next time.Time // первый еще не проверенный кандидат; защищает от дублей при пересекающихся интервалах
	for _, r := range ranges {
		rangeStart, err := r.From.On(day)
		if err != nil {
			skipped = append(skipped, r)
			continue
		}
		rangeEnd, err := r.To.On(day)
		if err != nil {
			skipped = append(skipped, r)
			continue
		}

		candidate := rangeStart
		if in.Now.After(candidate) {
			candidate = in.Now
		}
		candidate = e.roundUp(candidate)
		if candidate.Before(next) {
			candidate = next
		}

		for end := candidate.Add(duration); !end.After(rangeEnd); end = candidate.Add(duration) {
			slot := domain.TimeInterval{Start: candidate, End: end}
			if CapacityAvailable(slot, in.Service, in.Inventory, in.Bookings) {
				slots = append(slots, candidate.In(e.location).Format(domain.TimeFormat))
			}
			candidate = candidate.Add(e.granularity)
		}
		if candidate.After(next) {
			next = candidate
		}
	}

	return SlotResult{
		Status:        domain.SlotStatusOpen,
		Slots:         slots,
		SkippedRanges: skipped,
	}, nil
}

// orderedRanges отбрасывает некорректные интервалы и сортирует остальные по началу
func orderedRanges(ranges []domain.TimeRange) (valid []domain.TimeRange, skipped []domain.TimeRange) {
	valid = make([]domain.TimeRange, 0, len(ranges))
	for _, r := range ranges {
		if !r.IsValid() {
			skipped = append(skipped, r)
			continue
		}
		valid = append(valid, r)
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].From.IsBefore(valid[j].From)
	})

	return valid, skipped
}
