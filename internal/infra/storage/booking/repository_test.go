package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var columns = []string{
	"id", "vendor_id", "kind", "service_id", "fleet_item_id",
	"start_at", "end_at", "status", "assigned_resource_ids", "requester_name",
}

func TestRepository_ListOccupying(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	start := from.Add(10 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, vendor_id, kind, service_id, fleet_item_id, start_at, end_at, status, assigned_resource_ids, requester_name "+
			"FROM bookings WHERE vendor_id = $1 AND status IN ($2,$3) AND start_at < $4 AND end_at > $5 AND kind = $6 "+
			"ORDER BY start_at ASC, id ASC",
	)).
		WithArgs("v-1", "confirmed", "paid", sqlmock.AnyArg(), sqlmock.AnyArg(), "service").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("b-1", "v-1", "service", "svc-1", nil, start, start.Add(30*time.Minute), "confirmed", "{c-1,c-2}", "Mario").
			AddRow("b-2", "v-1", "service", "svc-1", nil, start.Add(time.Hour), start.Add(2*time.Hour), "paid", "{}", nil))

	repo := NewRepository(db)
	bookings, err := repo.ListOccupying(context.Background(), domain.OccupyingBookingsFilter{
		VendorID: "v-1",
		Kind:     domain.KindService,
		From:     from,
		To:       to,
	})

	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, "b-1", bookings[0].ID)
	assert.Equal(t, domain.KindService, bookings[0].Kind)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
	assert.Equal(t, []string{"c-1", "c-2"}, bookings[0].AssignedResourceIDs)
	assert.Equal(t, "Mario", bookings[0].RequesterName)
	assert.Equal(t, "", bookings[0].FleetItemID)
	assert.True(t, bookings[0].Interval.Start.Equal(start))

	assert.Empty(t, bookings[1].AssignedResourceIDs)
	assert.Equal(t, "", bookings[1].RequesterName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListOccupying_InvalidFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	_, err = repo.ListOccupying(context.Background(), domain.OccupyingBookingsFilter{From: now, To: now.Add(time.Hour)})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = repo.ListOccupying(context.Background(), domain.OccupyingBookingsFilter{VendorID: "v-1", From: now, To: now})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListOccupying_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM bookings").WillReturnError(errors.New("connection refused"))

	repo := NewRepository(db)
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	_, err = repo.ListOccupying(context.Background(), domain.OccupyingBookingsFilter{
		VendorID: "v-1",
		Kind:     domain.KindRental,
		From:     from,
		To:       from.AddDate(0, 0, 3),
	})

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
