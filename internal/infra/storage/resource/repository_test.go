package resource

import (
	"context"
	"errors"
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

	mock.ExpectQuery(`SELECT id, vendor_id, group_id FROM resource_instances WHERE vendor_id = \$1 AND is_active = \$2`).
		WithArgs("v-1", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vendor_id", "group_id"}).
			AddRow("c-1", "v-1", "chair").
			AddRow("c-2", "v-1", "chair"))

	repo := NewRepository(db)
	instances, err := repo.ListByVendor(context.Background(), "v-1")

	require.NoError(t, err)
	assert.Equal(t, []domain.ResourceInstance{
		{ID: "c-1", VendorID: "v-1", GroupID: "chair"},
		{ID: "c-2", VendorID: "v-1", GroupID: "chair"},
	}, instances)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByVendor_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM resource_instances").
		WillReturnRows(sqlmock.NewRows([]string{"id", "vendor_id", "group_id"}))

	instances, err := NewRepository(db).ListByVendor(context.Background(), "v-1")

	require.NoError(t, err)
	assert.NotNil(t, instances)
	assert.Empty(t, instances)
}

func TestRepository_ListByVendor_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM resource_instances").WillReturnError(errors.New("timeout"))

	_, err = NewRepository(db).ListByVendor(context.Background(), "v-1")
	assert.ErrorIs(t, err, ErrExecQuery)
}
