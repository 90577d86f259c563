package marketapi

import (
	"context"
	"fmt"
	"net/http"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/livreur"
	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/pkg/errs"
)

// LivreurGateway implements ports.LivreurGateway against the marketplace API.
// The server owns the unassigned/assigned partition; this adapter only relays
// requests and normalizes responses.
type LivreurGateway struct {
	client *Client
}

// NewLivreurGateway creates a livreur gateway over the shared client.
func NewLivreurGateway(client *Client) *LivreurGateway {
	return &LivreurGateway{client: client}
}

// ListUnassigned retrieves every livreur not currently in any pool.
func (g *LivreurGateway) ListUnassigned(ctx context.Context) ([]*livreur.Livreur, error) {
	return g.list(ctx, "list unassigned livreurs", "/livreurs/unassigned")
}

// ListAssigned retrieves the pool of the given épicerie.
func (g *LivreurGateway) ListAssigned(
	ctx context.Context,
	epicerieID kernel.ID,
) ([]*livreur.Livreur, error) {
	if err := epicerieID.Validate(); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/livreurs/epicerie/available?epicerieId=%d", epicerieID.Value())
	return g.list(ctx, "list assigned livreurs", path)
}

func (g *LivreurGateway) list(
	ctx context.Context,
	operation, path string,
) ([]*livreur.Livreur, error) {
	raw, err := g.client.do(ctx, request{
		operation: operation,
		method:    http.MethodGet,
		path:      path,
	})
	if err != nil {
		return nil, err
	}

	payloads := decodeLivreurList(raw)
	members := make([]*livreur.Livreur, 0, len(payloads))
	for _, payload := range payloads {
		member, memberErr := toLivreur(payload)
		if memberErr != nil {
			return nil, memberErr
		}
		members = append(members, member)
	}
	return members, nil
}

// AssignToEpicerie asks the server to move a livreur into the épicerie's pool.
func (g *LivreurGateway) AssignToEpicerie(ctx context.Context, epicerieID, livreurID kernel.ID) error {
	if err := epicerieID.Validate(); err != nil {
		return err
	}
	if err := livreurID.Validate(); err != nil {
		return err
	}

	_, err := g.client.do(ctx, request{
		operation: "assign livreur to épicerie",
		method:    http.MethodPost,
		path:      fmt.Sprintf("/livreurs/epicerie/%d/assign", epicerieID.Value()),
		body:      map[string]int64{"livreurId": livreurID.Value()},
		notFound: func() error {
			return errs.NewObjectNotFoundError("livreur", livreurID.String())
		},
	})
	return err
}

// UnassignFromEpicerie asks the server to release a livreur back to the
// unassigned pool.
func (g *LivreurGateway) UnassignFromEpicerie(ctx context.Context, epicerieID, livreurID kernel.ID) error {
	if err := epicerieID.Validate(); err != nil {
		return err
	}
	if err := livreurID.Validate(); err != nil {
		return err
	}

	_, err := g.client.do(ctx, request{
		operation: "unassign livreur from épicerie",
		method:    http.MethodDelete,
		path: fmt.Sprintf("/livreurs/epicerie/%d/livreur/%d",
			epicerieID.Value(), livreurID.Value()),
		notFound: func() error {
			return errs.NewObjectNotFoundError("livreur", livreurID.String())
		},
	})
	return err
}

// AssignOrder asks the server to hand a ready home-delivery order to a
// livreur, and returns the confirmed order state.
func (g *LivreurGateway) AssignOrder(
	ctx context.Context,
	orderID, livreurID kernel.ID,
) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := livreurID.Validate(); err != nil {
		return nil, err
	}

	raw, err := g.client.do(ctx, request{
		operation: "assign livreur to order",
		method:    http.MethodPut,
		path:      fmt.Sprintf("/livreurs/order/%d/assign-livreur", orderID.Value()),
		body:      map[string]int64{"livreurId": livreurID.Value()},
		notFound: func() error {
			return errs.NewObjectNotFoundError("order", orderID.String())
		},
	})
	if err != nil {
		return nil, err
	}

	var payload orderPayload
	if err = decode("assign livreur to order", raw, &payload); err != nil {
		return nil, err
	}
	return toOrder(payload)
}
