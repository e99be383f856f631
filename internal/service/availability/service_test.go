package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
	checkFleet "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_fleet_availability"
	getSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

type fakeSlots struct {
	resp  *getSlots.Response
	err   error
	calls int
	req   *getSlots.Request
}

func (f *fakeSlots) Execute(_ context.Context, req *getSlots.Request) (*getSlots.Response, error) {
	f.calls++
	f.req = req
	return f.resp, f.err
}

type fakeFleet struct {
	resp  *checkFleet.Response
	err   error
	calls int
	req   *checkFleet.Request
}

func (f *fakeFleet) Execute(_ context.Context, req *checkFleet.Request) (*checkFleet.Response, error) {
	f.calls++
	f.req = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Check_DispatchesToSlots(t *testing.T) {
	slots := &fakeSlots{resp: &getSlots.Response{
		Date:            time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		VendorID:        "v-1",
		ServiceID:       "svc-1",
		DurationMinutes: 30,
		Status:          domain.SlotStatusOpen,
		Slots:           []string{"10:30", "10:45"},
	}}
	fleet := &fakeFleet{}
	svc := NewService(slots, fleet, nopLogger{})

	resp, err := svc.Check(context.Background(), &models.CheckRequest{VendorID: "v-1", ServiceID: "svc-1", Date: "2025-06-02"})

	require.NoError(t, err)
	require.NotNil(t, resp.Slots)
	assert.Nil(t, resp.Fleet)
	assert.Equal(t, []string{"10:30", "10:45"}, resp.Slots.Slots)
	assert.Equal(t, "2025-06-02", resp.Slots.Date)
	assert.Empty(t, resp.Slots.Message)
	assert.Equal(t, resp.Slots, resp.Body())

	assert.Equal(t, 1, slots.calls)
	assert.Equal(t, 0, fleet.calls)
	assert.Equal(t, &getSlots.Request{VendorID: "v-1", ServiceID: "svc-1", Date: "2025-06-02"}, slots.req)
}

func TestService_Check_DispatchesToFleet(t *testing.T) {
	slots := &fakeSlots{}
	fleet := &fakeFleet{resp: &checkFleet.Response{
		Available:   []checkFleet.AvailableVehicle{{ID: "car-1", Model: "Fiat Panda", Price: 45}},
		Unavailable: []checkFleet.UnavailableVehicle{{ID: "car-2", Model: "Tesla", ConflictInfo: "Prenotato fino al 15/06/2025"}},
	}}
	svc := NewService(slots, fleet, nopLogger{})

	resp, err := svc.Check(context.Background(), &models.CheckRequest{
		BookingType: "rental_fleet_check",
		VendorID:    "v-1",
		StartDate:   "2025-06-10",
		EndDate:     "2025-06-12",
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Fleet)
	assert.Nil(t, resp.Slots)
	assert.Equal(t, []models.AvailableVehicle{{ID: "car-1", Model: "Fiat Panda", Price: 45}}, resp.Fleet.AvailableVehicles)
	assert.Equal(t, "Prenotato fino al 15/06/2025", resp.Fleet.UnavailableVehicles[0].ConflictInfo)
	assert.Equal(t, resp.Fleet, resp.Body())

	assert.Equal(t, 0, slots.calls)
	assert.Equal(t, 1, fleet.calls)
}

func TestService_Check_UnknownBookingTypeIsSlotQuery(t *testing.T) {
	slots := &fakeSlots{resp: &getSlots.Response{Status: domain.SlotStatusClosed, Message: "Negozio chiuso.", Slots: []string{}}}
	svc := NewService(slots, &fakeFleet{}, nopLogger{})

	resp, err := svc.Check(context.Background(), &models.CheckRequest{
		BookingType: "service",
		VendorID:    "v-1",
		ServiceID:   "svc-1",
		Date:        "2025-06-03",
	})

	require.NoError(t, err)
	assert.Equal(t, "Negozio chiuso.", resp.Slots.Message)
	assert.Equal(t, []string{}, resp.Slots.Slots)
}

func TestService_Check_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CheckRequest
		missing string
	}{
		{
			name:    "fleet without dates",
			req:     models.CheckRequest{BookingType: "rental_fleet_check", VendorID: "v-1"},
			missing: "startDate, endDate",
		},
		{
			name:    "fleet without vendor",
			req:     models.CheckRequest{BookingType: "rental_fleet_check", StartDate: "2025-06-10", EndDate: "2025-06-12"},
			missing: "vendorId",
		},
		{
			name:    "slots without service",
			req:     models.CheckRequest{VendorID: "v-1", Date: "2025-06-02"},
			missing: "serviceId",
		},
		{
			name:    "slots with fleet fields only",
			req:     models.CheckRequest{VendorID: "v-1", StartDate: "2025-06-10", EndDate: "2025-06-12"},
			missing: "serviceId, date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := &fakeSlots{}
			fleet := &fakeFleet{}
			svc := NewService(slots, fleet, nopLogger{})

			_, err := svc.Check(context.Background(), &tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.missing)
			assert.Equal(t, 0, slots.calls+fleet.calls)
		})
	}
}

func TestService_PropagatesUseCaseErrors(t *testing.T) {
	slots := &fakeSlots{err: getSlots.ErrServiceNotFound}
	fleet := &fakeFleet{err: checkFleet.ErrInternal}
	svc := NewService(slots, fleet, nopLogger{})

	_, err := svc.GetSlots(context.Background(), "v-1", "svc-1", "2025-06-02")
	assert.ErrorIs(t, err, getSlots.ErrServiceNotFound)

	_, err = svc.CheckFleet(context.Background(), "v-1", "2025-06-10", "2025-06-12")
	assert.ErrorIs(t, err, checkFleet.ErrInternal)
}
