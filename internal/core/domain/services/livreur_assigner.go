package services

import (
	"fmt"

	"epicerie/internal/core/domain/model/epicerie"
	"epicerie/internal/core/domain/model/livreur"
	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/pkg/errs"
)

// ErrLivreurNotInPool is returned when the requested livreur is not assigned
// to the épicerie that owns the order.
var ErrLivreurNotInPool = errs.NewBusinessRejectionError(
	"assign livreur to order", "livreur is not in the épicerie's pool")

// LivreurAssigner is a domain service validating that an order may be handed
// to a specific livreur, and applying the assignment to the order aggregate.
//
// Business rules:
//   - The order must be READY and HOME_DELIVERY
//   - The livreur must be in the pool of the épicerie that owns the order
//   - The livreur's identity must be addressable (never a synthesized
//     placeholder)
//
// The service only decides and applies locally; the caller is responsible for
// first confirming the assignment with the marketplace server.
type LivreurAssigner struct{}

// NewLivreurAssigner creates a new LivreurAssigner instance.
func NewLivreurAssigner() LivreurAssigner {
	return LivreurAssigner{}
}

// Validate checks every assignment precondition without mutating anything.
// Callers use it to reject an assignment before any network round trip.
func (a LivreurAssigner) Validate(o *order.Order, e *epicerie.Epicerie, identity livreur.Identity) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := e.Validate(); err != nil {
		return err
	}
	if err := identity.Validate(); err != nil {
		return err
	}

	if !o.EpicerieID().IsEqual(e.ID()) {
		return errs.NewBusinessRejectionError("assign livreur to order",
			fmt.Sprintf("order %s does not belong to épicerie %s", o.ID(), e.ID()))
	}

	if !o.CanAssignLivreur() {
		return errs.NewBusinessRejectionError("assign livreur to order",
			fmt.Sprintf("order %s is %s/%s, assignment needs a ready home-delivery order",
				o.ID(), o.Status(), o.DeliveryType()))
	}

	if !identity.Persistable() {
		return errs.NewBusinessRejectionError("assign livreur to order",
			"livreur has no server identity")
	}

	if !e.PoolContains(identity) {
		return ErrLivreurNotInPool
	}

	return nil
}

// Assign validates the assignment and records the livreur on the order.
// The order status does not change; the livreur drives it forward separately.
func (a LivreurAssigner) Assign(o *order.Order, e *epicerie.Epicerie, identity livreur.Identity) error {
	if err := a.Validate(o, e, identity); err != nil {
		return err
	}

	livreurID, err := identity.NumericID()
	if err != nil {
		return err
	}

	return o.AssignLivreur(livreurID)
}
