// Package queries contains read operations for retrieving marketplace state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries prefer fresh server state and fall back to the snapshot cache only
// on transport failures, flagging stale responses for the caller.
package queries

import (
	"errors"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the current state of a single order.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	if resp.FromCache {
//	    // stale data, show the offline banner
//	}
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order id from the query.
func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse carries the order together with its freshness.
// FromCache is true when the server was unreachable and the snapshot cache
// answered instead.
type GetOrderQueryResponse struct {
	Order     *order.Order
	FromCache bool
}
