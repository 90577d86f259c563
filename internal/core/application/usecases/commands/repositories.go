// Package commands contains business operations that modify state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation, a
// server round trip, and snapshot persistence inside a transaction.
//
// A command never applies a change locally before the marketplace server has
// confirmed it: the snapshot cache is only ever written from confirmed
// responses.
package commands

import (
	"context"

	"epicerie/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure snapshot writes stay consistent across
// repositories.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderSnapshotRepoFactory provides access to the order snapshot
	// repository within a transaction.
	OrderSnapshotRepoFactory interface {
		OrderSnapshotRepository() ports.OrderSnapshotRepository
	}

	// LivreurSnapshotRepoFactory provides access to the livreur snapshot
	// repository within a transaction.
	LivreurSnapshotRepoFactory interface {
		LivreurSnapshotRepository() ports.LivreurSnapshotRepository
	}

	// OrderUoW manages transactions for order-snapshot-only operations.
	OrderUoW interface {
		TxManager
		OrderSnapshotRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LivreurUoW manages transactions for pool-snapshot-only operations.
	LivreurUoW interface {
		TxManager
		LivreurSnapshotRepoFactory
	}

	// LivreurUoWFactory creates new livreur unit of work instances.
	LivreurUoWFactory interface {
		Create() LivreurUoW
	}

	// UoW manages transactions across both snapshot repositories.
	UoW interface {
		TxManager
		OrderSnapshotRepoFactory
		LivreurSnapshotRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-repository
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
