package get_available_slots

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgMissingVendorID      = "ID вендора обязателен"
	msgMissingServiceID     = "ID услуги обязателен"
	msgMissingDate          = "дата обязательна"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgVendorNotFound       = "вендор не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgServiceMisconfigured = "у услуги не задана длительность"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendors/{vendorId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID := strings.TrimSpace(mux.Vars(r)["vendorId"])
	if vendorID == "" {
		h.logger.Warn("GET /vendors/{id}/available-slots - Missing vendor ID")
		handlers.RespondBadRequest(w, msgMissingVendorID)
		return
	}

	// Извлекаем serviceId из query параметров
	serviceID := strings.TrimSpace(r.URL.Query().Get("serviceId"))
	if serviceID == "" {
		h.logger.Warn("GET /vendors/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	// Извлекаем date из query параметров
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		h.logger.Warn("GET /vendors/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.service.GetSlots(r.Context(), vendorID, serviceID, date)
	if err != nil {
		// Обработка ошибок
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /vendors/{id}/available-slots - Invalid input: vendor_id=%s, error=%v", vendorID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrVendorNotFound):
			h.logger.Warn("GET /vendors/{id}/available-slots - Vendor not found: vendor_id=%s", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /vendors/{id}/available-slots - Service not found: vendor_id=%s, service_id=%s", vendorID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceMisconfigured):
			h.logger.Warn("GET /vendors/{id}/available-slots - Service misconfigured: vendor_id=%s, service_id=%s", vendorID, serviceID)
			handlers.RespondNotFound(w, msgServiceMisconfigured)

		default:
			h.logger.Error("GET /vendors/{id}/available-slots - Failed to get slots: vendor_id=%s, service_id=%s, error=%v",
				vendorID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vendors/{id}/available-slots - Slots retrieved successfully: vendor_id=%s, service_id=%s, slots_count=%d",
		vendorID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
