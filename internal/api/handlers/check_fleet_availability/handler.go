package check_fleet_availability

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	availabilityService "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	checkFleet "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_fleet_availability"
)

const msgMissingVendorID = "ID вендора обязателен"

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

// Handle GET /api/v1/vendors/{vendorId}/fleet-availability
// Query params: startDate, endDate (YYYY-MM-DD или RFC 3339; диапазон [startDate, endDate), endDate не входит)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID := strings.TrimSpace(mux.Vars(r)["vendorId"])
	if vendorID == "" {
		h.logger.Warn("GET /vendors/{id}/fleet-availability - Missing vendor ID")
		handlers.RespondBadRequest(w, msgMissingVendorID)
		return
	}

	query := r.URL.Query()
	startDate := query.Get("startDate")
	endDate := query.Get("endDate")

	result, err := h.service.CheckFleet(r.Context(), vendorID, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidInput),
			errors.Is(err, checkFleet.ErrInvalidInput):
			h.logger.Warn("GET /vendors/{id}/fleet-availability - Invalid input: vendor_id=%s, error=%v", vendorID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /vendors/{id}/fleet-availability - Failed to check fleet: vendor_id=%s, error=%v", vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vendors/{id}/fleet-availability - Fleet checked: vendor_id=%s, available=%d, unavailable=%d",
		vendorID, len(result.AvailableVehicles), len(result.UnavailableVehicles))
	handlers.RespondJSON(w, http.StatusOK, result)
}
