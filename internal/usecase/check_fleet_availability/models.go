package check_fleet_availability

import "time"

// Request модель запроса на проверку автопарка
type Request struct {
	VendorID  string // ID вендора
	StartDate string // YYYY-MM-DD или RFC 3339
	EndDate   string // YYYY-MM-DD (день включительно) или RFC 3339
}

// Response модель ответа с разбиением автопарка
type Response struct {
	VendorID    string
	From        time.Time // Начало диапазона (включительно)
	To          time.Time // Конец диапазона (исключительно)
	Available   []AvailableVehicle
	Unavailable []UnavailableVehicle
}

// AvailableVehicle свободная единица автопарка
type AvailableVehicle struct {
	ID    string
	Model string
	Price float64
}

// UnavailableVehicle занятая единица автопарка
type UnavailableVehicle struct {
	ID           string
	Model        string
	ConflictInfo string
}
