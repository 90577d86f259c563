package commands

import (
	"errors"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/pkg/guard"
)

var ErrRequestTransitionCommandIsNotConstructed = errors.New(
	"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
)

// RequestTransitionCommand asks the marketplace server to move an order to a
// new status on behalf of a caller acting in a given role.
//
// The transition is validated locally against the role-gated table first, so
// an illegal request is rejected without a network round trip.
//
// Example:
//
//	cmd, err := NewRequestTransitionCommand(orderID, kernel.RoleEpicier, order.Accepted)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//	confirmed, err := handler.Handle(ctx, cmd)
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	role    kernel.Role
	target  order.Status

	guard guard.ConstructorGuard
}

// NewRequestTransitionCommand creates a command to request a status change.
// Validates that the order id, role and target status are well-formed; the
// transition itself is checked by the handler against the current order.
func NewRequestTransitionCommand(
	orderID kernel.ID,
	role kernel.Role,
	target order.Status,
) (RequestTransitionCommand, error) {
	command := RequestTransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRole(role),
		command.setTarget(target),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

// OrderID returns the order id from the command.
func (c RequestTransitionCommand) OrderID() kernel.ID {
	return c.orderID
}

// Role returns the caller's role from the command.
func (c RequestTransitionCommand) Role() kernel.Role {
	return c.role
}

// Target returns the requested status from the command.
func (c RequestTransitionCommand) Target() order.Status {
	return c.target
}

func (c *RequestTransitionCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestTransitionCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RequestTransitionCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
