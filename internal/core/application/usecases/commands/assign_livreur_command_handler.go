package commands

import (
	"context"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/livreur"
	"epicerie/internal/core/ports"
	"epicerie/internal/pkg/errs"
)

// PoolListings carries the two driver lists as re-fetched from the server
// after a pool mutation. Both lists come from the same confirmed state, so
// a livreur never shows up on both sides at once.
type PoolListings struct {
	// Assigned is the épicerie's pool after the mutation.
	Assigned []*livreur.Livreur
	// Unassigned is every livreur outside any pool after the mutation.
	Unassigned []*livreur.Livreur
}

// ErrLivreurNotUnassigned is returned when the chosen livreur no longer
// appears in the unassigned list, typically because another épicerie claimed
// them since the list was rendered.
var ErrLivreurNotUnassigned = errs.NewBusinessRejectionError(
	"assign livreur to épicerie", "the livreur no longer appears in the unassigned list")

// AssignLivreurCommandHandler orchestrates pool assignment.
//
// A best-effort precondition re-fetches the unassigned list and rejects the
// command when the livreur is no longer in it. The check is advisory: when
// the list cannot be fetched the request goes through anyway and the server
// stays the authority over the assigned/unassigned partition.
//
// On server confirmation both driver lists are re-fetched rather than patched
// locally, and the refreshed pool replaces the cached projection. On
// rejection nothing changes anywhere.
type AssignLivreurCommandHandler struct {
	livreurGateway ports.LivreurGateway
	uowFactory     LivreurUoWFactory
}

// NewAssignLivreurCommandHandler creates a handler for pool assignment
// operations.
func NewAssignLivreurCommandHandler(
	livreurGateway ports.LivreurGateway,
	uowFactory LivreurUoWFactory,
) AssignLivreurCommandHandler {
	return AssignLivreurCommandHandler{
		livreurGateway: livreurGateway,
		uowFactory:     uowFactory,
	}
}

// Handle processes the pool assignment command and returns both re-fetched
// driver lists.
func (h AssignLivreurCommandHandler) Handle(
	ctx context.Context,
	command AssignLivreurCommand,
) (*PoolListings, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	// Advisory only: a failed fetch skips the check rather than blocking the
	// assignment.
	unassigned, err := h.livreurGateway.ListUnassigned(ctx)
	if err == nil && !containsLivreur(unassigned, command.LivreurID()) {
		return nil, ErrLivreurNotUnassigned
	}

	if err := h.livreurGateway.AssignToEpicerie(ctx, command.EpicerieID(), command.LivreurID()); err != nil {
		return nil, err
	}

	return refreshPools(ctx, h.livreurGateway, h.uowFactory, command.EpicerieID())
}

// containsLivreur reports whether the id addresses any member of the list.
// Fallback identities match too, they carry the same numeric id.
func containsLivreur(members []*livreur.Livreur, livreurID kernel.ID) bool {
	target, err := livreur.ConfirmedIdentity(livreurID)
	if err != nil {
		return false
	}
	for _, member := range members {
		if member.Identity().IsEqual(target) {
			return true
		}
	}
	return false
}

// refreshPools re-fetches both driver lists and replaces the cached pool
// projection with the confirmed assigned list.
func refreshPools(
	ctx context.Context,
	livreurGateway ports.LivreurGateway,
	uowFactory LivreurUoWFactory,
	epicerieID kernel.ID,
) (*PoolListings, error) {
	assigned, err := livreurGateway.ListAssigned(ctx, epicerieID)
	if err != nil {
		return nil, err
	}

	unassigned, err := livreurGateway.ListUnassigned(ctx)
	if err != nil {
		return nil, err
	}

	uow := uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LivreurSnapshotRepository().ReplacePool(ctx, epicerieID, assigned); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &PoolListings{Assigned: assigned, Unassigned: unassigned}, nil
}
