package domain

import (
	"errors"
	"time"
)

// ErrInvalidInterval возвращается, когда начало интервала не раньше его конца
var ErrInvalidInterval = errors.New("domain: interval start must be before end")

// TimeInterval полуоткрытый интервал [Start, End)
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval создает интервал, проверяя Start < End
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, ErrInvalidInterval
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Duration возвращает длительность интервала
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// Интервалы, которые только касаются границами (a.End == b.Start), НЕ пересекаются:
// - [10:00, 10:30) и [10:15, 10:45) → пересечение
// - [10:00, 10:30) и [10:30, 11:00) → нет пересечения
func Overlaps(a, b TimeInterval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
