package queries

import (
	"errors"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/pkg/guard"
)

var ErrGetMyOrdersQueryIsNotConstructed = errors.New(
	"GetMyOrdersQuery must be created via NewGetMyOrdersQuery constructor",
)

// GetMyOrdersQuery retrieves the orders visible to the authenticated caller.
// The server scopes the list by the caller's role; an optional status narrows
// it further.
//
// Épicier callers pass their épicerie id so a transport failure can fall back
// to the cached snapshots. Other roles have no cache and get the transport
// error as is.
type GetMyOrdersQuery struct { //nolint:recvcheck //using for validation
	epicerieID *kernel.ID
	status     *order.Status

	guard guard.ConstructorGuard
}

// NewGetMyOrdersQuery creates a query to list the caller's orders.
// epicerieID may be nil for clients and livreurs; status may be nil to list
// every order regardless of lifecycle stage.
func NewGetMyOrdersQuery(epicerieID *kernel.ID, status *order.Status) (GetMyOrdersQuery, error) {
	query := GetMyOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setEpicerieID(epicerieID); err != nil {
		return GetMyOrdersQuery{}, err
	}
	if err := query.setStatus(status); err != nil {
		return GetMyOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyOrdersQueryIsNotConstructed)
}

// EpicerieID returns the optional épicerie id used for cache fallback.
func (q GetMyOrdersQuery) EpicerieID() *kernel.ID {
	return q.epicerieID
}

// Status returns the optional status filter.
func (q GetMyOrdersQuery) Status() *order.Status {
	return q.status
}

func (q *GetMyOrdersQuery) setEpicerieID(epicerieID *kernel.ID) error {
	if epicerieID == nil {
		return nil
	}
	if err := epicerieID.Validate(); err != nil {
		return err
	}

	id := *epicerieID
	q.epicerieID = &id
	return nil
}

func (q *GetMyOrdersQuery) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	s := *status
	q.status = &s
	return nil
}

// GetMyOrdersQueryResponse carries the order list together with its
// freshness.
type GetMyOrdersQueryResponse struct {
	Orders    []*order.Order
	FromCache bool
}
