package domain

import "time"

// SlotGranularity шаг генерации кандидатов на начало слота
const SlotGranularity = 15 * time.Minute

// DefaultTimezone зона, в которой интерпретируются даты и время, если не задана в конфиге
const DefaultTimezone = "UTC"

// FleetCheckBookingType значение bookingType для проверки автопарка
const FleetCheckBookingType = "rental_fleet_check"

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02/01/2006" // DD/MM/YYYY
)

// Сообщения для клиентов (фронтенд на итальянском)
const (
	MessageClosed        = "Negozio chiuso."
	MessageNotConfigured = "Orari non configurati."
)

// OccupyingStatuses список статусов, которые блокируют время
// Используется и для слотов услуг, и для проверки автопарка
var OccupyingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusPaid,
}
