package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// TimeRange интервал работы внутри дня, например 09:00-13:00
type TimeRange struct {
	From types.TimeString
	To   types.TimeString
}

// IsValid returns true if both bounds parse and From is before To
func (r TimeRange) IsValid() bool {
	return r.From.Validate() == nil && r.To.Validate() == nil && r.From.IsBefore(r.To)
}

// OpeningWindow расписание вендора на один день недели
type OpeningWindow struct {
	DayOfWeek  time.Weekday
	IsOpen     bool
	TimeRanges []TimeRange
}

// WindowForDay returns the opening window for the weekday, if configured
func WindowForDay(windows []OpeningWindow, day time.Weekday) (OpeningWindow, bool) {
	for _, w := range windows {
		if w.DayOfWeek == day {
			return w, true
		}
	}
	return OpeningWindow{}, false
}
