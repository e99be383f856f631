package fleet

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения автопарка вендора
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автопарка
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByVendor получает активные единицы автопарка вендора
// Порядок стабилен (по дате добавления, затем по ID): в нем же они попадут в ответ
func (r *Repository) ListByVendor(ctx context.Context, vendorID string) ([]domain.FleetItem, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"vendor_id",
		"model",
		"price_per_day",
	).
		From("fleet_items").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByVendor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVendor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.FleetItem, 0)
	for rows.Next() {
		var item domain.FleetItem
		if err := rows.Scan(&item.ID, &item.VendorID, &item.Model, &item.PricePerDay); err != nil {
			return nil, fmt.Errorf("%w: ListByVendor - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByVendor - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
