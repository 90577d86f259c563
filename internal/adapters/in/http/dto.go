package http

import (
	"errors"
	"net/http"
	"time"

	"epicerie/internal/core/application/usecases/commands"
	"epicerie/internal/core/domain/model/livreur"
	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorBody is the error response shape shared by all endpoints.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorResponse maps the three error kinds onto HTTP statuses: validation
// problems are 422, server-side rejections 409, unreachable upstream 502 and
// unknown resources 404.
func errorResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errs.KindOf(err) == errs.KindValidation:
		status = http.StatusUnprocessableEntity
	case errs.KindOf(err) == errs.KindBusiness:
		status = http.StatusConflict
	case errs.KindOf(err) == errs.KindTransport:
		status = http.StatusBadGateway
	}

	return c.JSON(status, errorBody{Code: status, Message: err.Error()})
}

type orderItemResponse struct {
	ProductID *int64 `json:"productId"`
	Recharge  bool   `json:"recharge"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
	Status    string `json:"status"`
}

type orderResponse struct {
	ID              int64               `json:"id"`
	ClientID        int64               `json:"clientId"`
	EpicerieID      int64               `json:"epicerieId"`
	Status          string              `json:"status"`
	DeliveryType    string              `json:"deliveryType"`
	Total           string              `json:"total"`
	DeliveryAddress string              `json:"deliveryAddress"`
	DeliveryPhone   string              `json:"deliveryPhone"`
	LivreurID       *int64              `json:"livreurId"`
	Items           []orderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// orderEnvelope wraps an order with its provenance: FromCache marks
// last-known state served while the marketplace was unreachable.
type orderEnvelope struct {
	Order     orderResponse `json:"order"`
	FromCache bool          `json:"fromCache"`
}

type orderListEnvelope struct {
	Orders    []orderResponse `json:"orders"`
	FromCache bool            `json:"fromCache"`
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		var productID *int64
		if id := item.ProductID(); id != nil {
			raw := id.Value()
			productID = &raw
		}
		items = append(items, orderItemResponse{
			ProductID: productID,
			Recharge:  item.IsRecharge(),
			Quantity:  item.Quantity().String(),
			UnitPrice: item.UnitPrice().String(),
			LineTotal: item.LineTotal().String(),
			Status:    item.Status().String(),
		})
	}

	var livreurID *int64
	if id := o.Livreur(); id != nil {
		raw := id.Value()
		livreurID = &raw
	}

	return orderResponse{
		ID:              o.ID().Value(),
		ClientID:        o.ClientID().Value(),
		EpicerieID:      o.EpicerieID().Value(),
		Status:          o.Status().String(),
		DeliveryType:    o.DeliveryType().String(),
		Total:           o.Total().String(),
		DeliveryAddress: o.DeliveryAddress(),
		DeliveryPhone:   o.DeliveryPhone(),
		LivreurID:       livreurID,
		Items:           items,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func toOrderListResponse(orders []*order.Order) []orderResponse {
	response := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response
}

// livreurResponse renders a pool member. ID is absent for synthesized
// placeholder identities; Ref is always populated and safe to display.
type livreurResponse struct {
	ID           *int64   `json:"id"`
	Ref          string   `json:"ref"`
	IdentityKind string   `json:"identityKind"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Available    bool     `json:"available"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type livreurListEnvelope struct {
	Livreurs  []livreurResponse `json:"livreurs"`
	FromCache bool              `json:"fromCache"`
}

type poolListingsResponse struct {
	Assigned   []livreurResponse `json:"assigned"`
	Unassigned []livreurResponse `json:"unassigned"`
}

func toLivreurResponse(member *livreur.Livreur) livreurResponse {
	identity := member.Identity()

	var id *int64
	if numericID, err := identity.NumericID(); err == nil {
		raw := numericID.Value()
		id = &raw
	}

	var latitude, longitude *float64
	if position := member.Position(); position != nil {
		lat, lng := position.Latitude, position.Longitude
		latitude, longitude = &lat, &lng
	}

	return livreurResponse{
		ID:           id,
		Ref:          identity.String(),
		IdentityKind: identity.Kind().String(),
		Name:         member.Name(),
		Phone:        member.Phone(),
		Available:    member.IsAvailable(),
		Latitude:     latitude,
		Longitude:    longitude,
	}
}

func toLivreurListResponse(members []*livreur.Livreur) []livreurResponse {
	response := make([]livreurResponse, 0, len(members))
	for _, member := range members {
		response = append(response, toLivreurResponse(member))
	}
	return response
}

func toPoolListingsResponse(listings *commands.PoolListings) poolListingsResponse {
	return poolListingsResponse{
		Assigned:   toLivreurListResponse(listings.Assigned),
		Unassigned: toLivreurListResponse(listings.Unassigned),
	}
}

// updateStatusRequest is the body of PUT /orders/:id/status.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// assignLivreurRequest is the body of POST /livreurs/assign and
// PUT /orders/:id/livreur.
type assignLivreurRequest struct {
	LivreurID int64 `json:"livreurId"`
}
