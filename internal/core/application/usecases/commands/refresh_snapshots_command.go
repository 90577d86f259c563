package commands

import (
	"errors"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/pkg/guard"
)

var ErrRefreshSnapshotsCommandIsNotConstructed = errors.New(
	"RefreshSnapshotsCommand must be created via NewRefreshSnapshotsCommand constructor",
)

// RefreshSnapshotsCommand pulls the épicerie's orders and pool from the
// marketplace server and rewrites the snapshot cache from the confirmed
// responses. The periodic refresh job issues it on a schedule.
type RefreshSnapshotsCommand struct { //nolint:recvcheck //using for validation
	epicerieID kernel.ID

	guard guard.ConstructorGuard
}

// NewRefreshSnapshotsCommand creates a command to refresh the cache for one
// épicerie.
func NewRefreshSnapshotsCommand(epicerieID kernel.ID) (RefreshSnapshotsCommand, error) {
	command := RefreshSnapshotsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setEpicerieID(epicerieID); err != nil {
		return RefreshSnapshotsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshSnapshotsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshSnapshotsCommandIsNotConstructed)
}

// EpicerieID returns the épicerie id from the command.
func (c RefreshSnapshotsCommand) EpicerieID() kernel.ID {
	return c.epicerieID
}

func (c *RefreshSnapshotsCommand) setEpicerieID(epicerieID kernel.ID) error {
	if err := epicerieID.Validate(); err != nil {
		return err
	}

	c.epicerieID = epicerieID
	return nil
}
