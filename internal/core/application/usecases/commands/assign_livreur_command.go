package commands

import (
	"errors"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/pkg/guard"
)

var ErrAssignLivreurCommandIsNotConstructed = errors.New(
	"AssignLivreurCommand must be created via NewAssignLivreurCommand constructor",
)

// AssignLivreurCommand asks the marketplace server to move an unassigned
// livreur into an épicerie's pool.
//
// Example:
//
//	cmd, err := NewAssignLivreurCommand(epicerieID, livreurID)
//	if err != nil {
//	    return err
//	}
//	pools, err := handler.Handle(ctx, cmd)
type AssignLivreurCommand struct { //nolint:recvcheck //using for validation
	epicerieID kernel.ID
	livreurID  kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignLivreurCommand creates a command to add a livreur to a pool.
func NewAssignLivreurCommand(epicerieID, livreurID kernel.ID) (AssignLivreurCommand, error) {
	command := AssignLivreurCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEpicerieID(epicerieID),
		command.setLivreurID(livreurID),
	); err != nil {
		return AssignLivreurCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignLivreurCommand) Validate() error {
	return c.guard.Validate(ErrAssignLivreurCommandIsNotConstructed)
}

// EpicerieID returns the épicerie id from the command.
func (c AssignLivreurCommand) EpicerieID() kernel.ID {
	return c.epicerieID
}

// LivreurID returns the livreur id from the command.
func (c AssignLivreurCommand) LivreurID() kernel.ID {
	return c.livreurID
}

func (c *AssignLivreurCommand) setEpicerieID(epicerieID kernel.ID) error {
	if err := epicerieID.Validate(); err != nil {
		return err
	}

	c.epicerieID = epicerieID
	return nil
}

func (c *AssignLivreurCommand) setLivreurID(livreurID kernel.ID) error {
	if err := livreurID.Validate(); err != nil {
		return err
	}

	c.livreurID = livreurID
	return nil
}
