package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"

	// EndOfDay допустимое значение для времени закрытия "в полночь"
	EndOfDay TimeString = "24:00"

	minutesPerDay = 24 * 60
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате HH:MM
type TimeString string

// NewTimeString создает TimeString из time.Time (дата и зона отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку HH:MM (или HH:MM:SS) в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	if TimeString(s) == EndOfDay {
		return EndOfDay, nil
	}

	t, err := time.Parse(timeLayout, s)
	if err != nil {
		t, err = time.Parse(timeLayoutSeconds, s)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}

	return NewTimeString(t), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(t))
	return err
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	if t == EndOfDay {
		return minutesPerDay, nil
	}

	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		parsed, err = time.Parse(timeLayoutSeconds, string(t))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
		}
	}

	return parsed.Hour()*60 + parsed.Minute(), nil
}

// On возвращает момент времени на указанную дату в зоне этой даты
// Считается по настенным часам, поэтому переход на летнее время не сдвигает результат
func (t TimeString) On(date time.Time) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(), 0, minutes, 0, 0, date.Location()), nil
}

// IsBefore проверяет, что t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter проверяет, что t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner
// lib/pq отдает колонки TIME как time.Time, остальные драйверы - строкой
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.parseInto(string(v))
	case string:
		return t.parseInto(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}

// UnmarshalJSON реализует json.Unmarshaler
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeString, err)
	}
	return t.parseInto(s)
}

func (t *TimeString) parseInto(s string) error {
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
