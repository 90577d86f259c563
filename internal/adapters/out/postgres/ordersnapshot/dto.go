// Package ordersnapshot persists confirmed order states in the local cache.
// This package implements the repository pattern for order snapshots,
// handling the conversion between domain aggregates and database rows.
//
// Rows are only ever written from confirmed marketplace responses; the cache
// mirrors server state, it never gets ahead of it.
package ordersnapshot

import (
	"encoding/json"
	"time"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderSnapshotDTO represents the database row for a cached order.
// Indexed by épicerie for the dashboard list query.
type OrderSnapshotDTO struct {
	ID              int64 `gorm:"primaryKey"`
	ClientID        int64 `gorm:"index"`
	EpicerieID      int64 `gorm:"index"`
	Status          string
	DeliveryType    string
	Total           decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryAddress string
	DeliveryPhone   string
	LivreurID       *int64
	Items           []byte `gorm:"type:jsonb"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order snapshots.
func (OrderSnapshotDTO) TableName() string {
	return "order_snapshots"
}

// itemDTO is the JSON shape of one order line inside the items column.
// Decimals travel as strings to keep their exact scale.
type itemDTO struct {
	ProductID *int64 `json:"productId"`
	Recharge  bool   `json:"recharge"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
	Status    string `json:"status"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderSnapshotDTO, error) {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		var productID *int64
		if id := item.ProductID(); id != nil {
			raw := id.Value()
			productID = &raw
		}

		items = append(items, itemDTO{
			ProductID: productID,
			Recharge:  item.IsRecharge(),
			Quantity:  item.Quantity().String(),
			UnitPrice: item.UnitPrice().String(),
			LineTotal: item.LineTotal().String(),
			Status:    item.Status().String(),
		})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderSnapshotDTO{}, err
	}

	var livreurID *int64
	if id := aggregate.Livreur(); id != nil {
		raw := id.Value()
		livreurID = &raw
	}

	return OrderSnapshotDTO{
		ID:              aggregate.ID().Value(),
		ClientID:        aggregate.ClientID().Value(),
		EpicerieID:      aggregate.EpicerieID().Value(),
		Status:          aggregate.Status().String(),
		DeliveryType:    aggregate.DeliveryType().String(),
		Total:           aggregate.Total(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		DeliveryPhone:   aggregate.DeliveryPhone(),
		LivreurID:       livreurID,
		Items:           rawItems,
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database row back to an order aggregate.
// Reconstruction goes through RestoreOrder so every invariant is re-checked.
func toDomain(dto OrderSnapshotDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.NewID(dto.ClientID)
	if err != nil {
		return nil, err
	}
	epicerieID, err := kernel.NewID(dto.EpicerieID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	deliveryType, err := order.ParseDeliveryType(dto.DeliveryType)
	if err != nil {
		return nil, err
	}

	var livreurID *kernel.ID
	if dto.LivreurID != nil {
		lID, livreurErr := kernel.NewID(*dto.LivreurID)
		if livreurErr != nil {
			return nil, livreurErr
		}
		livreurID = &lID
	}

	var rawItems []itemDTO
	if err = json.Unmarshal(dto.Items, &rawItems); err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(rawItems))
	for _, raw := range rawItems {
		item, itemErr := itemToDomain(raw)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, clientID, epicerieID,
		status, deliveryType,
		dto.Total,
		dto.DeliveryAddress, dto.DeliveryPhone,
		livreurID,
		items,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func itemToDomain(raw itemDTO) (*order.Item, error) {
	quantity, err := decimal.NewFromString(raw.Quantity)
	if err != nil {
		return nil, err
	}
	unitPrice, err := decimal.NewFromString(raw.UnitPrice)
	if err != nil {
		return nil, err
	}
	lineTotal, err := decimal.NewFromString(raw.LineTotal)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseItemStatus(raw.Status)
	if err != nil {
		return nil, err
	}

	var productID *kernel.ID
	if raw.ProductID != nil {
		pID, idErr := kernel.NewID(*raw.ProductID)
		if idErr != nil {
			return nil, idErr
		}
		productID = &pID
	}

	return order.RestoreItem(productID, raw.Recharge, quantity, unitPrice, lineTotal, status)
}
