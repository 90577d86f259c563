package marketapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/pkg/errs"
)

// OrderGateway implements ports.OrderGateway against the marketplace API.
type OrderGateway struct {
	client *Client
}

// NewOrderGateway creates an order gateway over the shared client.
func NewOrderGateway(client *Client) *OrderGateway {
	return &OrderGateway{client: client}
}

// Get retrieves the current server state of a single order.
func (g *OrderGateway) Get(ctx context.Context, orderID kernel.ID) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	raw, err := g.client.do(ctx, request{
		operation: "get order",
		method:    http.MethodGet,
		path:      fmt.Sprintf("/orders/%d", orderID.Value()),
		notFound: func() error {
			return errs.NewObjectNotFoundError("order", orderID.String())
		},
	})
	if err != nil {
		return nil, err
	}

	var payload orderPayload
	if err = decode("get order", raw, &payload); err != nil {
		return nil, err
	}
	return toOrder(payload)
}

// UpdateStatus asks the server to move an order to the target status and
// returns the confirmed order state.
func (g *OrderGateway) UpdateStatus(
	ctx context.Context,
	orderID kernel.ID,
	target order.Status,
) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}

	raw, err := g.client.do(ctx, request{
		operation: "update order status",
		method:    http.MethodPut,
		path:      fmt.Sprintf("/orders/%d/status", orderID.Value()),
		body:      map[string]string{"status": target.String()},
		notFound: func() error {
			return errs.NewObjectNotFoundError("order", orderID.String())
		},
	})
	if err != nil {
		return nil, err
	}

	var payload orderPayload
	if err = decode("update order status", raw, &payload); err != nil {
		return nil, err
	}
	return toOrder(payload)
}

// ListMine retrieves the orders visible to the authenticated caller,
// optionally narrowed to a single status.
func (g *OrderGateway) ListMine(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	path := "/orders/epicerie/my-orders"
	if status != nil {
		if err := status.Validate(); err != nil {
			return nil, err
		}
		path += "?" + url.Values{"status": {status.String()}}.Encode()
	}

	raw, err := g.client.do(ctx, request{
		operation: "list my orders",
		method:    http.MethodGet,
		path:      path,
	})
	if err != nil {
		return nil, err
	}

	var payloads []orderPayload
	if err = decode("list my orders", raw, &payloads); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(payloads))
	for _, payload := range payloads {
		o, orderErr := toOrder(payload)
		if orderErr != nil {
			return nil, orderErr
		}
		orders = append(orders, o)
	}
	return orders, nil
}
