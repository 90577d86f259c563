package marketapi

import (
	"encoding/json"
	"fmt"
	"time"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/livreur"
	"epicerie/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// orderPayload is the wire shape of an order. Older server versions still
// emit "DELIVERY" as the delivery type; ParseDeliveryType canonicalizes it.
type orderPayload struct {
	ID              int64              `json:"id"`
	ClientID        int64              `json:"clientId"`
	EpicerieID      int64              `json:"epicerieId"`
	Status          string             `json:"status"`
	DeliveryType    string             `json:"deliveryType"`
	Total           decimal.Decimal    `json:"total"`
	DeliveryAddress string             `json:"deliveryAddress"`
	DeliveryPhone   string             `json:"deliveryPhone"`
	LivreurID       *int64             `json:"livreurId"`
	Items           []orderItemPayload `json:"items"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type orderItemPayload struct {
	ProductID *int64          `json:"productId"`
	Recharge  bool            `json:"recharge"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
	Status    string          `json:"status"`
}

// toOrder reconstructs the order aggregate from a confirmed server response.
// Orders are authoritative state, so a malformed payload is an error rather
// than something to paper over.
func toOrder(payload orderPayload) (*order.Order, error) {
	id, err := kernel.NewID(payload.ID)
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.NewID(payload.ClientID)
	if err != nil {
		return nil, err
	}
	epicerieID, err := kernel.NewID(payload.EpicerieID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(payload.Status)
	if err != nil {
		return nil, err
	}
	deliveryType, err := order.ParseDeliveryType(payload.DeliveryType)
	if err != nil {
		return nil, err
	}

	var livreurID *kernel.ID
	if payload.LivreurID != nil {
		lID, livreurErr := kernel.NewID(*payload.LivreurID)
		if livreurErr != nil {
			return nil, livreurErr
		}
		livreurID = &lID
	}

	items := make([]*order.Item, 0, len(payload.Items))
	for _, raw := range payload.Items {
		item, itemErr := toItem(raw)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, clientID, epicerieID,
		status, deliveryType,
		payload.Total,
		payload.DeliveryAddress, payload.DeliveryPhone,
		livreurID,
		items,
		payload.CreatedAt, payload.UpdatedAt,
	)
}

func toItem(payload orderItemPayload) (*order.Item, error) {
	// the server omits the item status on lines it has not touched yet
	rawStatus := payload.Status
	if rawStatus == "" {
		rawStatus = order.ItemPending.String()
	}
	status, err := order.ParseItemStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	var productID *kernel.ID
	if payload.ProductID != nil {
		pID, idErr := kernel.NewID(*payload.ProductID)
		if idErr != nil {
			return nil, idErr
		}
		productID = &pID
	}

	return order.RestoreItem(productID, payload.Recharge,
		payload.Quantity, payload.UnitPrice, payload.LineTotal, status)
}

// livreurPayload is the wire shape of a livreur list entry. The id field is
// unreliable: some server versions only populate userId, and a few entries
// carry neither.
type livreurPayload struct {
	ID        *int64   `json:"id"`
	UserID    *int64   `json:"userId"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Available bool     `json:"available"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// decodeLivreurList normalizes a livreur collection response. A missing,
// null or non-array body becomes an empty list instead of an error.
func decodeLivreurList(raw []byte) []livreurPayload {
	var payloads []livreurPayload
	if err := json.Unmarshal(raw, &payloads); err != nil {
		return nil
	}
	return payloads
}

// toLivreur normalizes one list entry. No entry is ever dropped: a missing id
// falls back to the user id, and an entry with neither gets a synthesized
// placeholder identity usable for rendering only. A blank name and an
// out-of-range position are likewise repaired rather than rejected.
func toLivreur(payload livreurPayload) (*livreur.Livreur, error) {
	identity, err := resolveIdentity(payload)
	if err != nil {
		return nil, err
	}

	name := payload.Name
	if name == "" {
		name = fmt.Sprintf("livreur %s", identity.String())
	}

	var position *livreur.Position
	if payload.Latitude != nil && payload.Longitude != nil {
		candidate := &livreur.Position{Latitude: *payload.Latitude, Longitude: *payload.Longitude}
		if candidate.Validate() == nil {
			position = candidate
		}
	}

	return livreur.NewLivreur(identity, name, payload.Phone, payload.Available, position)
}

func resolveIdentity(payload livreurPayload) (livreur.Identity, error) {
	switch {
	case payload.ID != nil:
		id, err := kernel.NewID(*payload.ID)
		if err != nil {
			return livreur.SynthesizedIdentity(), nil
		}
		return livreur.ConfirmedIdentity(id)
	case payload.UserID != nil:
		userID, err := kernel.NewID(*payload.UserID)
		if err != nil {
			return livreur.SynthesizedIdentity(), nil
		}
		return livreur.FallbackIdentity(userID)
	default:
		return livreur.SynthesizedIdentity(), nil
	}
}
