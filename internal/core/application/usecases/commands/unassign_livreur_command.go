package commands

import (
	"errors"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/pkg/errs"
	"epicerie/internal/pkg/guard"
)

var (
	ErrUnassignLivreurCommandIsNotConstructed = errors.New(
		"UnassignLivreurCommand must be created via NewUnassignLivreurCommand constructor",
	)
	// ErrUnassignNotConfirmed is returned when the caller has not explicitly
	// confirmed the removal. Unassignment is destructive for the épicier's
	// workflow, so the UI must ask first.
	ErrUnassignNotConfirmed = errs.NewValueIsRequiredError("confirmation")
)

// UnassignLivreurCommand asks the marketplace server to release a livreur
// from an épicerie's pool back to the unassigned pool.
//
// The command carries an explicit confirmation flag set by the caller after
// the UI prompt; handlers reject unconfirmed removals before any round trip.
type UnassignLivreurCommand struct { //nolint:recvcheck //using for validation
	epicerieID kernel.ID
	livreurID  kernel.ID
	confirmed  bool

	guard guard.ConstructorGuard
}

// NewUnassignLivreurCommand creates a command to remove a livreur from a pool.
func NewUnassignLivreurCommand(epicerieID, livreurID kernel.ID, confirmed bool) (UnassignLivreurCommand, error) {
	command := UnassignLivreurCommand{
		confirmed: confirmed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEpicerieID(epicerieID),
		command.setLivreurID(livreurID),
	); err != nil {
		return UnassignLivreurCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignLivreurCommand) Validate() error {
	return c.guard.Validate(ErrUnassignLivreurCommandIsNotConstructed)
}

// EpicerieID returns the épicerie id from the command.
func (c UnassignLivreurCommand) EpicerieID() kernel.ID {
	return c.epicerieID
}

// LivreurID returns the livreur id from the command.
func (c UnassignLivreurCommand) LivreurID() kernel.ID {
	return c.livreurID
}

// IsConfirmed reports whether the caller confirmed the removal.
func (c UnassignLivreurCommand) IsConfirmed() bool {
	return c.confirmed
}

func (c *UnassignLivreurCommand) setEpicerieID(epicerieID kernel.ID) error {
	if err := epicerieID.Validate(); err != nil {
		return err
	}

	c.epicerieID = epicerieID
	return nil
}

func (c *UnassignLivreurCommand) setLivreurID(livreurID kernel.ID) error {
	if err := livreurID.Validate(); err != nil {
		return err
	}

	c.livreurID = livreurID
	return nil
}
