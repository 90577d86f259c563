package commands

import (
	"errors"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand asks the marketplace server to hand a ready
// home-delivery order to a livreur from the owning épicerie's pool.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(orderID, epicerieID, livreurID)
//	if err != nil {
//	    return err
//	}
//	confirmed, err := handler.Handle(ctx, cmd)
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.ID
	epicerieID kernel.ID
	livreurID  kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order to a livreur.
func NewAssignOrderCommand(orderID, epicerieID, livreurID kernel.ID) (AssignOrderCommand, error) {
	command := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setEpicerieID(epicerieID),
		command.setLivreurID(livreurID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the order id from the command.
func (c AssignOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// EpicerieID returns the épicerie id from the command.
func (c AssignOrderCommand) EpicerieID() kernel.ID {
	return c.epicerieID
}

// LivreurID returns the livreur id from the command.
func (c AssignOrderCommand) LivreurID() kernel.ID {
	return c.livreurID
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setEpicerieID(epicerieID kernel.ID) error {
	if err := epicerieID.Validate(); err != nil {
		return err
	}

	c.epicerieID = epicerieID
	return nil
}

func (c *AssignOrderCommand) setLivreurID(livreurID kernel.ID) error {
	if err := livreurID.Validate(); err != nil {
		return err
	}

	c.livreurID = livreurID
	return nil
}
