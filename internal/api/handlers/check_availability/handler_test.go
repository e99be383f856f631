package check_availability

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	availabilityService "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
	getSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

type fakeService struct {
	resp  *models.CheckResponse
	err   error
	got   *models.CheckRequest
	calls int
}

func (f *fakeService) Check(_ context.Context, req *models.CheckRequest) (*models.CheckResponse, error) {
	f.calls++
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(t *testing.T, svc *fakeService, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/availability", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Slots(t *testing.T) {
	svc := &fakeService{resp: &models.CheckResponse{Slots: &models.SlotsResponse{
		Slots:           []string{"10:30", "10:45"},
		Date:            "2025-06-02",
		VendorID:        "v-1",
		ServiceID:       "svc-1",
		DurationMinutes: 30,
	}}}

	rec := post(t, svc, `{"vendorId":"v-1","serviceId":"svc-1","date":"2025-06-02"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"slots":["10:30","10:45"]}`, rec.Body.String())
	assert.Equal(t, "svc-1", svc.got.ServiceID)
}

func TestHandle_ClosedDay(t *testing.T) {
	svc := &fakeService{resp: &models.CheckResponse{Slots: &models.SlotsResponse{
		Slots:    []string{},
		Message:  "Negozio chiuso.",
		Date:     "2025-06-03",
		VendorID: "v-1",
	}}}

	rec := post(t, svc, `{"vendorId":"v-1","serviceId":"svc-1","date":"2025-06-03"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"slots":[],"message":"Negozio chiuso."}`, rec.Body.String())
}

func TestHandle_Fleet(t *testing.T) {
	svc := &fakeService{resp: &models.CheckResponse{Fleet: &models.FleetResponse{
		AvailableVehicles:   []models.AvailableVehicle{{ID: "car-1", Model: "Fiat Panda", Price: 45}},
		UnavailableVehicles: []models.UnavailableVehicle{{ID: "car-2", Model: "Tesla", ConflictInfo: "Prenotato da Mario fino al 15/06/2025"}},
	}}}

	rec := post(t, svc, `{"bookingType":"rental_fleet_check","vendorId":"v-1","startDate":"2025-06-10","endDate":"2025-06-12"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"availableVehicles":[{"id":"car-1","model":"Fiat Panda","price":45}],
		"unavailableVehicles":[{"id":"car-2","model":"Tesla","conflictInfo":"Prenotato da Mario fino al 15/06/2025"}]
	}`, rec.Body.String())
	assert.True(t, svc.got.IsFleetCheck())
}

func TestHandle_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "malformed json", body: `{"vendorId":`, message: msgInvalidBody},
		{name: "fleet without dates", body: `{"bookingType":"rental_fleet_check","vendorId":"v-1"}`, message: "startDate, endDate"},
		{name: "slots without date", body: `{"vendorId":"v-1","serviceId":"svc-1"}`, message: "date"},
		{name: "no vendor", body: `{"serviceId":"svc-1","date":"2025-06-02"}`, message: "vendorId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			rec := post(t, svc, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":400`)
			assert.Contains(t, rec.Body.String(), tt.message)
			assert.Equal(t, 0, svc.calls)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid date", err: fmt.Errorf("%w: date must be in format YYYY-MM-DD", getSlots.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "missing fields", err: availabilityService.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "vendor not found", err: getSlots.ErrVendorNotFound, status: http.StatusNotFound},
		{name: "service not found", err: getSlots.ErrServiceNotFound, status: http.StatusNotFound},
		{name: "misconfigured", err: getSlots.ErrServiceMisconfigured, status: http.StatusNotFound},
		{name: "upstream", err: fmt.Errorf("%w: pq: connection refused", getSlots.ErrInternal), status: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, &fakeService{err: tt.err}, `{"vendorId":"v-1","serviceId":"svc-1","date":"2025-06-02"}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}
