package livreursnapshot

import (
	"context"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/livreur"

	"gorm.io/gorm"
)

// GormLivreurSnapshotRepository implements LivreurSnapshotRepository using
// GORM.
type GormLivreurSnapshotRepository struct {
	db *gorm.DB
}

// NewGormLivreurSnapshotRepository creates a new GORM pool snapshot
// repository.
func NewGormLivreurSnapshotRepository(db *gorm.DB) *GormLivreurSnapshotRepository {
	return &GormLivreurSnapshotRepository{db: db}
}

// ReplacePool replaces the cached pool of an épicerie with the given members.
// Entries without a persistable identity are skipped, not rejected: a
// malformed list entry must not block caching the rest of the pool.
func (r *GormLivreurSnapshotRepository) ReplacePool(
	ctx context.Context,
	epicerieID kernel.ID,
	members []*livreur.Livreur,
) error {
	if err := epicerieID.Validate(); err != nil {
		return err
	}

	dtos := make([]LivreurPoolDTO, 0, len(members))
	for _, member := range members {
		if err := member.Validate(); err != nil {
			return err
		}
		if dto, ok := fromDomain(epicerieID, member); ok {
			dtos = append(dtos, dto)
		}
	}

	tx := r.db.WithContext(ctx)
	if err := tx.Delete(&LivreurPoolDTO{}, "epicerie_id = ?", epicerieID.Value()).Error; err != nil {
		return err
	}

	if len(dtos) == 0 {
		return nil
	}
	return tx.Create(&dtos).Error
}

// GetPool retrieves the cached pool of an épicerie, sorted by name.
func (r *GormLivreurSnapshotRepository) GetPool(
	ctx context.Context,
	epicerieID kernel.ID,
) ([]*livreur.Livreur, error) {
	if err := epicerieID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LivreurPoolDTO
	if err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "epicerie_id = ?", epicerieID.Value()).Error; err != nil {
		return nil, err
	}

	members := make([]*livreur.Livreur, 0, len(dtos))
	for _, dto := range dtos {
		member, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, nil
}
