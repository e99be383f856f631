package resource

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения ресурсов вендора (мастера, кабинеты, кресла)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByVendor получает активные экземпляры ресурсов вендора
func (r *Repository) ListByVendor(ctx context.Context, vendorID string) ([]domain.ResourceInstance, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"vendor_id",
		"group_id",
	).
		From("resource_instances").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("group_id ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByVendor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVendor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	instances := make([]domain.ResourceInstance, 0)
	for rows.Next() {
		var instance domain.ResourceInstance
		if err := rows.Scan(&instance.ID, &instance.VendorID, &instance.GroupID); err != nil {
			return nil, fmt.Errorf("%w: ListByVendor - scan row: %v", ErrScanRow, err)
		}
		instances = append(instances, instance)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByVendor - rows error: %v", ErrScanRow, err)
	}

	return instances, nil
}
