package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusPaid      BookingStatus = "paid"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// BookingKind различает бронирование услуги и аренду единицы автопарка
type BookingKind string

const (
	KindService BookingKind = "service"
	KindRental  BookingKind = "rental"
)

// Booking represents a booking as seen by the availability engine (read-only)
type Booking struct {
	ID                  string
	VendorID            string
	Kind                BookingKind
	ServiceID           string // для KindService
	FleetItemID         string // для KindRental
	Interval            TimeInterval
	Status              BookingStatus
	AssignedResourceIDs []string
	RequesterName       string
}

// IsOccupying returns true if the booking blocks the time it covers
// Только confirmed и paid; pending и прочие статусы не занимают слот
func (b *Booking) IsOccupying() bool {
	return b.Status == StatusConfirmed || b.Status == StatusPaid
}

// HasResource returns true if the resource instance is assigned to the booking
func (b *Booking) HasResource(resourceID string) bool {
	for _, id := range b.AssignedResourceIDs {
		if id == resourceID {
			return true
		}
	}
	return false
}

// OccupyingBookingsFilter фильтр для выборки занимающих бронирований вендора
type OccupyingBookingsFilter struct {
	VendorID string      // Обязательный параметр
	Kind     BookingKind // Тип бронирования
	From     time.Time   // Начало окна (включительно)
	To       time.Time   // Конец окна (исключительно)
}
