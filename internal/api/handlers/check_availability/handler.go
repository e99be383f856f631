package check_availability

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	availabilityService "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
	checkFleet "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_fleet_availability"
	getSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidBody                = "некорректное тело запроса"
	msgMissingFields              = "не заполнены обязательные поля"
	msgVendorNotFound             = "вендор не найден"
	msgServiceNotFound            = "услуга не найдена"
	msgServiceMisconfigured       = "у услуги не задана длительность"
	maxBodyBytes            int64 = 64 << 10
)

type Handler struct {
	service  AvailabilityService
	validate *validator.Validate
	logger   Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service:  service,
		validate: newValidator(),
		logger:   logger,
	}
}

// Handle POST /api/v1/availability
// Body: {vendorId, serviceId, date} или {bookingType: "rental_fleet_check", vendorId, startDate, endDate}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CheckRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /availability - Validation failed: %v", err)
		handlers.RespondBadRequest(w, describeValidationError(err))
		return
	}

	result, err := h.service.Check(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidInput),
			errors.Is(err, getSlots.ErrInvalidInput),
			errors.Is(err, checkFleet.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid input: vendor_id=%s, error=%v", req.VendorID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getSlots.ErrVendorNotFound):
			h.logger.Warn("POST /availability - Vendor not found: vendor_id=%s", req.VendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, getSlots.ErrServiceNotFound):
			h.logger.Warn("POST /availability - Service not found: vendor_id=%s, service_id=%s", req.VendorID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getSlots.ErrServiceMisconfigured):
			h.logger.Warn("POST /availability - Service misconfigured: vendor_id=%s, service_id=%s", req.VendorID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceMisconfigured)

		default:
			h.logger.Error("POST /availability - Failed to check availability: vendor_id=%s, booking_type=%s, error=%v",
				req.VendorID, req.BookingType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - Availability checked: vendor_id=%s, fleet=%t", req.VendorID, req.IsFleetCheck())
	handlers.RespondJSON(w, http.StatusOK, result.Body())
}
