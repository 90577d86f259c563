package queries

import (
	"errors"
	"time"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCachedOrderSummariesQueryIsNotConstructed = errors.New(
	"GetCachedOrderSummariesQuery must be created via NewGetCachedOrderSummariesQuery constructor",
)

// GetCachedOrderSummariesQuery reads lightweight order rows straight from the
// snapshot cache for the épicier dashboard. It never touches the network and
// is cheap enough to run on every screen refresh.
type GetCachedOrderSummariesQuery struct { //nolint:recvcheck //using for validation
	epicerieID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCachedOrderSummariesQuery creates a query for cached order summaries.
func NewGetCachedOrderSummariesQuery(epicerieID kernel.ID) (GetCachedOrderSummariesQuery, error) {
	query := GetCachedOrderSummariesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setEpicerieID(epicerieID); err != nil {
		return GetCachedOrderSummariesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCachedOrderSummariesQuery) Validate() error {
	return q.guard.Validate(ErrGetCachedOrderSummariesQueryIsNotConstructed)
}

// EpicerieID returns the épicerie id from the query.
func (q GetCachedOrderSummariesQuery) EpicerieID() kernel.ID {
	return q.epicerieID
}

func (q *GetCachedOrderSummariesQuery) setEpicerieID(epicerieID kernel.ID) error {
	if err := epicerieID.Validate(); err != nil {
		return err
	}

	q.epicerieID = epicerieID
	return nil
}

// GetCachedOrderSummariesQueryResponse is a read model row for the dashboard
// list: just enough to render a line without loading the full aggregate.
type GetCachedOrderSummariesQueryResponse struct {
	ID           kernel.ID
	Status       order.Status
	DeliveryType order.DeliveryType
	Total        decimal.Decimal
	UpdatedAt    time.Time
}
