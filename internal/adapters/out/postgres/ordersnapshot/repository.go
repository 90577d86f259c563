package ordersnapshot

import (
	"context"
	"errors"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderSnapshotRepository implements OrderSnapshotRepository using GORM.
type GormOrderSnapshotRepository struct {
	db *gorm.DB
}

// NewGormOrderSnapshotRepository creates a new GORM order snapshot repository.
func NewGormOrderSnapshotRepository(db *gorm.DB) *GormOrderSnapshotRepository {
	return &GormOrderSnapshotRepository{db: db}
}

// Upsert stores or refreshes the snapshot of an order.
func (r *GormOrderSnapshotRepository) Upsert(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// Get retrieves a cached order by ID.
func (r *GormOrderSnapshotRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderSnapshotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForEpicerie retrieves every cached order of an épicerie, newest first.
func (r *GormOrderSnapshotRepository) GetAllForEpicerie(
	ctx context.Context,
	epicerieID kernel.ID,
) ([]*order.Order, error) {
	if err := epicerieID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderSnapshotDTO
	if err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&dtos, "epicerie_id = ?", epicerieID.Value()).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
