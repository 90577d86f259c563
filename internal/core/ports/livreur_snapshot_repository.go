package ports

import (
	"context"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/livreur"
)

// LivreurSnapshotRepository is the persistence contract for the cached pool
// projection of an épicerie. The pool is replaced wholesale from confirmed
// list responses; entries with synthesized identities are render-only and are
// skipped on write.
type LivreurSnapshotRepository interface {
	// ReplacePool replaces the cached pool of an épicerie with the given
	// members.
	ReplacePool(ctx context.Context, epicerieID kernel.ID, members []*livreur.Livreur) error

	// GetPool retrieves the cached pool of an épicerie. An épicerie that was
	// never cached yields an empty slice, not an error.
	GetPool(ctx context.Context, epicerieID kernel.ID) ([]*livreur.Livreur, error)
}
