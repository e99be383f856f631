// Package availability содержит чистый движок расчета доступности:
// генерацию свободных слотов услуги и проверку конфликтов автопарка.
// Движок не обращается к хранилищам и не хранит состояние между вызовами.
package availability

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ErrServiceMisconfigured возвращается, когда у услуги не задана длительность
var ErrServiceMisconfigured = errors.New("availability: service has no duration")

// Engine движок доступности, привязанный к одной временной зоне
type Engine struct {
	location    *time.Location
	granularity time.Duration
}

// NewEngine создает движок; nil location означает UTC
func NewEngine(location *time.Location) *Engine {
	if location == nil {
		location = time.UTC
	}
	return &Engine{
		location:    location,
		granularity: domain.SlotGranularity,
	}
}

// Location возвращает зону, в которой движок интерпретирует даты и время
func (e *Engine) Location() *time.Location {
	return e.location
}

// calendarDay возвращает полночь календарной даты date в зоне движка
// Используются только поля год/месяц/день, зона самого date игнорируется
func (e *Engine) calendarDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, e.location)
}

// roundUp округляет момент вверх до ближайшего кратного шага от местной полуночи
// 10:07 → 10:15, 10:15 → 10:15
func (e *Engine) roundUp(t time.Time) time.Time {
	local := t.In(e.location)
	elapsed := time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second +
		time.Duration(local.Nanosecond())

	rem := elapsed % e.granularity
	if rem == 0 {
		return t
	}
	return t.Add(e.granularity - rem)
}
