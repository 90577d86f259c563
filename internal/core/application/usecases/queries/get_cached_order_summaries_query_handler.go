package queries

import (
	"context"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCachedOrderSummariesQueryHandler reads dashboard rows from the snapshot
// cache. Uses direct SQL for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetCachedOrderSummariesQueryHandler(db)
//	rows, err := handler.Handle(ctx, query)
//	for _, row := range rows {
//	    fmt.Printf("#%s %s %s\n", row.ID, row.Status, row.Total)
//	}
type GetCachedOrderSummariesQueryHandler struct {
	db *gorm.DB
}

// NewGetCachedOrderSummariesQueryHandler creates a handler for cached
// summary reads. Requires a GORM database connection for query execution.
func NewGetCachedOrderSummariesQueryHandler(db *gorm.DB) GetCachedOrderSummariesQueryHandler {
	return GetCachedOrderSummariesQueryHandler{db: db}
}

// Handle executes the query. Returns summary rows sorted newest first.
func (h GetCachedOrderSummariesQueryHandler) Handle(
	ctx context.Context,
	query GetCachedOrderSummariesQuery,
) ([]GetCachedOrderSummariesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]GetCachedOrderSummariesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			delivery_type,
			total,
			updated_at
		FROM order_snapshots
		WHERE epicerie_id = ?
		ORDER BY updated_at DESC
	`, query.EpicerieID().Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary GetCachedOrderSummariesQueryResponse
		var id int64
		var status, deliveryType, total string

		err = rows.Scan(
			&id,
			&status,
			&deliveryType,
			&total,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID

		summary.Status, err = order.ParseStatus(status)
		if err != nil {
			return nil, err
		}

		summary.DeliveryType, err = order.ParseDeliveryType(deliveryType)
		if err != nil {
			return nil, err
		}

		summary.Total, err = decimal.NewFromString(total)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
