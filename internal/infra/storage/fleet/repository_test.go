package fleet

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestRepository_ListByVendor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, vendor_id, model, price_per_day FROM fleet_items WHERE vendor_id = \$1 AND is_active = \$2 ORDER BY created_at ASC, id ASC`).
		WithArgs("v-1", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vendor_id", "model", "price_per_day"}).
			AddRow("car-1", "v-1", "Fiat Panda", 45.0).
			AddRow("car-2", "v-1", "Tesla Model 3", 120.5))

	items, err := NewRepository(db).ListByVendor(context.Background(), "v-1")

	require.NoError(t, err)
	assert.Equal(t, []domain.FleetItem{
		{ID: "car-1", VendorID: "v-1", Model: "Fiat Panda", PricePerDay: 45},
		{ID: "car-2", VendorID: "v-1", Model: "Tesla Model 3", PricePerDay: 120.5},
	}, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByVendor_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM fleet_items").
		WillReturnRows(sqlmock.NewRows([]string{"id", "vendor_id", "model", "price_per_day"}).
			AddRow("car-1", "v-1", "Fiat Panda", "not-a-number"))

	_, err = NewRepository(db).ListByVendor(context.Background(), "v-1")
	assert.ErrorIs(t, err, ErrScanRow)
}
