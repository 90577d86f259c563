package order

import (
	"fmt"

	"epicerie/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> Preparing ──> Ready ──┬──> Delivered
//	   │            │                              │
//	   │            │                              └──> InDelivery ──> Delivered
//	   └────────────┴──> Cancelled
//
// Pending is the initial state; Delivered and Cancelled are terminal.
// Which actor may request which transition is defined by the transition
// table in transitions.go.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status after a client checkout.
	// The épicier has not yet accepted the order.
	Pending

	// Accepted indicates the épicier has accepted the order.
	Accepted

	// Preparing indicates the épicier is picking and scanning items.
	Preparing

	// Ready indicates preparation is finished. Pickup orders wait for the
	// client; home-delivery orders become eligible for livreur assignment.
	Ready

	// InDelivery indicates a livreur is transporting a home-delivery order.
	InDelivery

	// Delivered indicates the order reached the client. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before preparation
	// completed. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Pending:       "PENDING",
		Accepted:      "ACCEPTED",
		Preparing:     "PREPARING",
		Ready:         "READY",
		InDelivery:    "IN_DELIVERY",
		Delivered:     "DELIVERED",
		Cancelled:     "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Accepted:   "ACCEPTED",
		Preparing:  "PREPARING",
		Ready:      "READY",
		InDelivery: "IN_DELIVERY",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// ParseStatus parses a status from its wire representation as returned by the
// marketplace API.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Accepted, Preparing, Ready, InDelivery,
// Delivered, Cancelled. StatusUnknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., the marketplace API, the snapshot cache) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further transitions.
// Delivered and Cancelled orders are immutable from the gateway's perspective.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsPreparation reports whether item-level preparation statuses may still be
// mutated. Once the order leaves these states, item statuses are frozen.
func (s Status) IsPreparation() bool {
	return s == Accepted || s == Preparing
}

// ValidateCanHaveLivreur validates the consistency between order status and
// livreur assignment. A livreur reference is allowed only once the order has
// reached Ready or later in the fulfillment path; it is never required, since
// pickup orders complete without one.
//
// Parameters:
//   - assigned: whether the order has a livreur assigned
//
// Returns:
//   - error: validation error if the status cannot carry a livreur reference
func (s Status) ValidateCanHaveLivreur(assigned bool) error {
	if assigned && s != Ready && s != InDelivery && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a livreur", s.String()))
	}
	return nil
}
