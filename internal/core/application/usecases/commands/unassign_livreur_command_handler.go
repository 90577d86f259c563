package commands

import (
	"context"

	"epicerie/internal/core/ports"
)

// UnassignLivreurCommandHandler orchestrates pool removal. Mirrors
// AssignLivreurCommandHandler: server first, then both lists re-fetched and
// the cached pool replaced.
type UnassignLivreurCommandHandler struct {
	livreurGateway ports.LivreurGateway
	uowFactory     LivreurUoWFactory
}

// NewUnassignLivreurCommandHandler creates a handler for pool removal
// operations.
func NewUnassignLivreurCommandHandler(
	livreurGateway ports.LivreurGateway,
	uowFactory LivreurUoWFactory,
) UnassignLivreurCommandHandler {
	return UnassignLivreurCommandHandler{
		livreurGateway: livreurGateway,
		uowFactory:     uowFactory,
	}
}

// Handle processes the removal command and returns both re-fetched driver
// lists. Unconfirmed removals fail with ErrUnassignNotConfirmed before any
// network round trip.
func (h UnassignLivreurCommandHandler) Handle(
	ctx context.Context,
	command UnassignLivreurCommand,
) (*PoolListings, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if !command.IsConfirmed() {
		return nil, ErrUnassignNotConfirmed
	}

	if err := h.livreurGateway.UnassignFromEpicerie(ctx, command.EpicerieID(), command.LivreurID()); err != nil {
		return nil, err
	}

	return refreshPools(ctx, h.livreurGateway, h.uowFactory, command.EpicerieID())
}
