package models

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	checkFleet "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_fleet_availability"
	getSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// Request модели

// CheckRequest запрос доступности; вид определяется полем BookingType
// - bookingType == "rental_fleet_check": vendorId, startDate, endDate
// - иначе: vendorId, serviceId, date
type CheckRequest struct {
	BookingType string `json:"bookingType,omitempty"`
	VendorID    string `json:"vendorId" validate:"required"`
	ServiceID   string `json:"serviceId,omitempty" validate:"required_unless=BookingType rental_fleet_check"`
	Date        string `json:"date,omitempty" validate:"required_unless=BookingType rental_fleet_check"`
	StartDate   string `json:"startDate,omitempty" validate:"required_if=BookingType rental_fleet_check"`
	EndDate     string `json:"endDate,omitempty" validate:"required_if=BookingType rental_fleet_check"`
}

// IsFleetCheck проверяет, что запрос относится к автопарку
func (r *CheckRequest) IsFleetCheck() bool {
	return r.BookingType == domain.FleetCheckBookingType
}

// Response модели

// SlotsResponse ответ со слотами услуги
// Message заполнен только для закрытого дня и ненастроенного расписания
// В теле ответа только slots и message, остальные поля для логов
type SlotsResponse struct {
	Slots           []string `json:"slots"`
	Message         string   `json:"message,omitempty"`
	Date            string   `json:"-"`
	VendorID        string   `json:"-"`
	ServiceID       string   `json:"-"`
	DurationMinutes int      `json:"-"`
}

// AvailableVehicle свободная единица автопарка
type AvailableVehicle struct {
	ID    string  `json:"id"`
	Model string  `json:"model"`
	Price float64 `json:"price"`
}

// UnavailableVehicle занятая единица автопарка
type UnavailableVehicle struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	ConflictInfo string `json:"conflictInfo"`
}

// FleetResponse ответ проверки автопарка
type FleetResponse struct {
	AvailableVehicles   []AvailableVehicle   `json:"availableVehicles"`
	UnavailableVehicles []UnavailableVehicle `json:"unavailableVehicles"`
}

// CheckResponse результат Check: заполнено ровно одно поле
type CheckResponse struct {
	Slots *SlotsResponse
	Fleet *FleetResponse
}

// Body возвращает тело HTTP ответа
func (r *CheckResponse) Body() interface{} {
	if r.Fleet != nil {
		return r.Fleet
	}
	return r.Slots
}

// FromSlotsResponse конвертирует ответ use case слотов
func FromSlotsResponse(resp *getSlots.Response) *SlotsResponse {
	slots := resp.Slots
	if slots == nil {
		slots = []string{}
	}

	return &SlotsResponse{
		Slots:           slots,
		Message:         resp.Message,
		Date:            resp.Date.Format(domain.DateFormat),
		VendorID:        resp.VendorID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
	}
}

// FromFleetResponse конвертирует ответ use case автопарка
func FromFleetResponse(resp *checkFleet.Response) *FleetResponse {
	out := &FleetResponse{
		AvailableVehicles:   make([]AvailableVehicle, 0, len(resp.Available)),
		UnavailableVehicles: make([]UnavailableVehicle, 0, len(resp.Unavailable)),
	}

	for _, v := range resp.Available {
		out.AvailableVehicles = append(out.AvailableVehicles, AvailableVehicle{ID: v.ID, Model: v.Model, Price: v.Price})
	}

	for _, v := range resp.Unavailable {
		out.UnavailableVehicles = append(out.UnavailableVehicles, UnavailableVehicle{ID: v.ID, Model: v.Model, ConflictInfo: v.ConflictInfo})
	}

	return out
}
