package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения бронирований
// Сервис доступности бронирования не изменяет
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListOccupying получает занимающие бронирования вендора, пересекающие окно [From, To)
// Статусы ограничены domain.OccupyingStatuses.
// Пересечение проверяется по тому же правилу, что и domain.Overlaps: start_at < To AND end_at > From.
//
// Примеры использования:
//
//  1. Бронирования услуг на дату:
//     filter := domain.OccupyingBookingsFilter{VendorID: "v-1", Kind: domain.KindService, From: dayStart, To: dayEnd}
//
//  2. Аренды автопарка за период:
//     filter := domain.OccupyingBookingsFilter{VendorID: "v-1", Kind: domain.KindRental, From: start, To: end}
func (r *Repository) ListOccupying(ctx context.Context, filter domain.OccupyingBookingsFilter) ([]*domain.Booking, error) {
	if filter.VendorID == "" || !filter.From.Before(filter.To) {
		return nil, fmt.Errorf("%w: vendor %q, window %s - %s", ErrInvalidFilter, filter.VendorID, filter.From, filter.To)
	}

	statuses := make([]string, len(domain.OccupyingStatuses))
	for i, s := range domain.OccupyingStatuses {
		statuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"id",
		"vendor_id",
		"kind",
		"service_id",
		"fleet_item_id",
		"start_at",
		"end_at",
		"status",
		"assigned_resource_ids",
		"requester_name",
	).
		From("bookings").
		Where(squirrel.Eq{"vendor_id": filter.VendorID}).
		Where(squirrel.Eq{"status": statuses}).
		Where(squirrel.Lt{"start_at": filter.To}).
		Where(squirrel.Gt{"end_at": filter.From}).
		OrderBy("start_at ASC", "id ASC")

	// Фильтрация по типу (если указан)
	if filter.Kind != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": string(filter.Kind)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupying - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupying - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var serviceID, fleetItemID, requesterName sql.NullString
		var resourceIDs pq.StringArray

		err := rows.Scan(
			&booking.ID,
			&booking.VendorID,
			&booking.Kind,
			&serviceID,
			&fleetItemID,
			&booking.Interval.Start,
			&booking.Interval.End,
			&booking.Status,
			&resourceIDs,
			&requesterName,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.ServiceID = serviceID.String
		booking.FleetItemID = fleetItemID.String
		booking.RequesterName = requesterName.String
		booking.AssignedResourceIDs = []string(resourceIDs)

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
