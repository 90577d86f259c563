package order

import (
	"errors"
	"fmt"
	"time"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/pkg/errs"
	"epicerie/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the RestoreOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

	// ErrItemsAreFrozen is returned when an item preparation status is mutated
	// after the order left the preparation states.
	ErrItemsAreFrozen = errors.New("item statuses are frozen once the order leaves preparation")
)

// Order represents a marketplace order in the system. It is the aggregate root
// that manages the order lifecycle from acceptance through preparation to
// delivery or pickup.
//
// Order follows these invariants:
//   - Must carry valid server-assigned identifiers (order, client, épicerie)
//   - Total must be non-negative
//   - Must contain at least one item
//   - Status transitions follow the role-gated table in transitions.go
//   - A livreur may be referenced only once the status has reached Ready,
//     and only for home-delivery orders
//
// Orders are created server-side by a client checkout; the gateway only ever
// reconstructs them from marketplace responses or the snapshot cache, which is
// why RestoreOrder is the sole constructor.
type Order struct {
	// id is the server-assigned order identifier
	id kernel.ID

	// clientID references the client who placed the order
	clientID kernel.ID

	// epicerieID references the épicerie fulfilling the order
	epicerieID kernel.ID

	// status is the current state in the order lifecycle
	status Status

	// deliveryType says whether the order is picked up or delivered
	deliveryType DeliveryType

	// total is the order total; non-negative
	total decimal.Decimal

	// deliveryAddress is where a home-delivery order goes
	deliveryAddress string

	// deliveryPhone is an optional contact number for the livreur
	deliveryPhone string

	// livreurID is the assigned livreur (nil if unassigned)
	livreurID *kernel.ID

	// items is the non-empty ordered sequence of order lines
	items []*Item

	createdAt time.Time
	updatedAt time.Time

	// guard ensures the order was created via RestoreOrder
	guard guard.ConstructorGuard
}

// RestoreOrder reconstructs an Order aggregate from an external representation
// (a marketplace API response or the snapshot cache), re-validating every
// invariant so corrupt data cannot enter the domain.
//
// Returns:
//   - *Order: the reconstructed order if all validations pass
//   - error: validation error if any invariant is violated
func RestoreOrder(
	id, clientID, epicerieID kernel.ID,
	status Status,
	deliveryType DeliveryType,
	total decimal.Decimal,
	deliveryAddress, deliveryPhone string,
	livreurID *kernel.ID,
	items []*Item,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		epicerieID.Validate(),
		status.Validate(),
		deliveryType.Validate(),
	); err != nil {
		return nil, err
	}

	if total.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s is negative", total.String()))
	}

	if deliveryType == HomeDelivery && deliveryAddress == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	if livreurID != nil {
		if err := livreurID.Validate(); err != nil {
			return nil, err
		}
		if deliveryType != HomeDelivery {
			return nil, errs.NewValueIsInvalidError("a pickup order cannot have a livreur")
		}
	}
	if err := status.ValidateCanHaveLivreur(livreurID != nil); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		clientID:        clientID,
		epicerieID:      epicerieID,
		status:          status,
		deliveryType:    deliveryType,
		total:           total,
		deliveryAddress: deliveryAddress,
		deliveryPhone:   deliveryPhone,
		livreurID:       livreurID,
		items:           items,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their server-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's server-assigned identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// ClientID returns the identifier of the client who placed the order.
func (o *Order) ClientID() kernel.ID {
	return o.clientID
}

// EpicerieID returns the identifier of the épicerie fulfilling the order.
func (o *Order) EpicerieID() kernel.ID {
	return o.epicerieID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryType returns whether the order is picked up or home-delivered.
func (o *Order) DeliveryType() DeliveryType {
	return o.deliveryType
}

// Total returns the order total.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// DeliveryAddress returns the delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryPhone returns the optional contact phone number.
func (o *Order) DeliveryPhone() string {
	return o.deliveryPhone
}

// Livreur returns the assigned livreur's ID, or nil if no livreur is assigned.
func (o *Order) Livreur() *kernel.ID {
	return o.livreurID
}

// Items returns the order lines.
func (o *Order) Items() []*Item {
	return o.items
}

// CreatedAt returns the server-side creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the server-side last-update timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AllowedTargets returns the transitions the given role may request for this
// order in its current state. Surfaces render their action lists from this;
// nothing else recomputes eligibility from the raw status.
func (o *Order) AllowedTargets(role kernel.Role) []Status {
	return o.status.AllowedTargets(role, o.deliveryType)
}

// TransitionTo moves the order to target on behalf of the given role.
//
// The transition is validated locally against the table in transitions.go;
// an illegal (status, role, target) triple fails with a validation error and
// no state change. This mirrors presenting only legal choices in the UI while
// still rejecting illegal requests defensively.
func (o *Order) TransitionTo(role kernel.Role, target Status) error {
	newStatus, err := o.status.TransitionTo(role, o.deliveryType, target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CanAssignLivreur reports whether the order is eligible for livreur
// assignment: the order must be Ready and of the home-delivery type.
// Reaching that state unlocks eligibility only; it never assigns by itself.
func (o *Order) CanAssignLivreur() bool {
	return o.status == Ready && o.deliveryType == HomeDelivery
}

// AssignLivreur records the livreur assigned to this order.
//
// This method enforces the following business rules:
//   - the livreur ID must be valid
//   - the order must be Ready and of the home-delivery type
//
// Assignment does not change the order status; the livreur later moves the
// order to InDelivery or Delivered through TransitionTo.
func (o *Order) AssignLivreur(livreurID kernel.ID) error {
	if err := livreurID.Validate(); err != nil {
		return err
	}

	if !o.CanAssignLivreur() {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("a %s order in status %s is not eligible for livreur assignment",
				o.deliveryType.String(), o.status.String()))
	}

	o.livreurID = &livreurID
	return nil
}

// MarkItemStatus mutates the preparation status of the item at index.
// Item statuses may only change while the order is in a preparation state
// (Accepted or Preparing); afterwards they are frozen.
func (o *Order) MarkItemStatus(index int, status ItemStatus) error {
	if index < 0 || index >= len(o.items) {
		return errs.NewValueIsOutOfRangeError("index", index, 0, len(o.items)-1)
	}

	if !o.status.IsPreparation() {
		return ErrItemsAreFrozen
	}

	return o.items[index].setStatus(status)
}
