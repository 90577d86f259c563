package order

import (
	"fmt"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/pkg/errs"
)

// transitionRule describes one row of the transition table: from a given
// status, which actor may move the order to which targets. A rule with
// deliveryType set to DeliveryTypeUnknown applies to both delivery types;
// the split only matters from Ready, where pickup orders are handed over by
// the épicier while home-delivery orders belong to the livreur.
type transitionRule struct {
	role         kernel.Role
	deliveryType DeliveryType
	targets      []Status
}

// getTransitionRules returns the shared transition table consumed by every
// surface. It is the only place in the codebase that knows which (status,
// role, target) triples are legal; screens render action lists from it and
// the lifecycle controller rejects anything outside it before touching the
// network.
//
//	PENDING    EPICIER -> ACCEPTED, CANCELLED
//	ACCEPTED   EPICIER -> PREPARING, CANCELLED
//	PREPARING  EPICIER -> READY
//	READY      (pickup)        EPICIER -> DELIVERED
//	           (home delivery) LIVREUR -> IN_DELIVERY, DELIVERED
//	IN_DELIVERY LIVREUR -> DELIVERED
//
// Delivered and Cancelled have no rules: they are terminal. The client role
// has no rules at all; client cancellation is a separate request flow, not a
// status transition.
func getTransitionRules() map[Status][]transitionRule {
	return map[Status][]transitionRule{
		Pending: {
			{role: kernel.RoleEpicier, targets: []Status{Accepted, Cancelled}},
		},
		Accepted: {
			{role: kernel.RoleEpicier, targets: []Status{Preparing, Cancelled}},
		},
		Preparing: {
			{role: kernel.RoleEpicier, targets: []Status{Ready}},
		},
		Ready: {
			{role: kernel.RoleEpicier, deliveryType: Pickup, targets: []Status{Delivered}},
			{role: kernel.RoleLivreur, deliveryType: HomeDelivery, targets: []Status{InDelivery, Delivered}},
		},
		InDelivery: {
			{role: kernel.RoleLivreur, targets: []Status{Delivered}},
		},
	}
}

// AllowedTargets returns the set of statuses the given role may request from
// the current status for an order of the given delivery type. The result is
// what action lists render; an empty slice means the role has nothing to offer.
func (s Status) AllowedTargets(role kernel.Role, deliveryType DeliveryType) []Status {
	var targets []Status
	for _, rule := range getTransitionRules()[s] {
		if rule.role != role {
			continue
		}
		if rule.deliveryType != DeliveryTypeUnknown && rule.deliveryType != deliveryType {
			continue
		}
		targets = append(targets, rule.targets...)
	}
	return targets
}

// CanTransition reports whether the given role may move an order of the given
// delivery type from the current status to target.
func (s Status) CanTransition(role kernel.Role, deliveryType DeliveryType, target Status) bool {
	for _, allowed := range s.AllowedTargets(role, deliveryType) {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the requested transition against the transition table
// and returns the new status. This is local validation only; it never reaches
// the network, so callers can reject illegal requests without issuing a call.
//
// Returns:
//   - (target, nil) when the (status, role, target) triple is in the table
//   - (StatusUnknown, validation error) otherwise
func (s Status) TransitionTo(role kernel.Role, deliveryType DeliveryType, target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if err := role.Validate(); err != nil {
		return StatusUnknown, err
	}

	if !s.CanTransition(role, deliveryType, target) {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s may not move a %s order from %s to %s",
				role.String(), deliveryType.String(), s.String(), target.String()))
	}

	return target, nil
}
