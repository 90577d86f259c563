// Package http exposes the gateway's API to the three mobile roles. Handlers
// translate requests into commands and queries, and map the error kinds onto
// HTTP statuses. Role gating here is a convenience only: the transition table
// and the marketplace server remain the authorities.
package http

import (
	"net/http"
	"strconv"

	"epicerie/internal/core/application/usecases/commands"
	"epicerie/internal/core/application/usecases/queries"
	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/order"
	"epicerie/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	requestTransitionHandler commands.RequestTransitionCommandHandler
	assignLivreurHandler     commands.AssignLivreurCommandHandler
	unassignLivreurHandler   commands.UnassignLivreurCommandHandler
	assignOrderHandler       commands.AssignOrderCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	getMyOrdersHandler    queries.GetMyOrdersQueryHandler
	listUnassignedHandler queries.ListUnassignedLivreursQueryHandler
	listAssignedHandler   queries.ListAssignedLivreursQueryHandler
	orderSummariesHandler queries.GetCachedOrderSummariesQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	requestTransitionHandler commands.RequestTransitionCommandHandler,
	assignLivreurHandler commands.AssignLivreurCommandHandler,
	unassignLivreurHandler commands.UnassignLivreurCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getMyOrdersHandler queries.GetMyOrdersQueryHandler,
	listUnassignedHandler queries.ListUnassignedLivreursQueryHandler,
	listAssignedHandler queries.ListAssignedLivreursQueryHandler,
	orderSummariesHandler queries.GetCachedOrderSummariesQueryHandler,
) *Server {
	return &Server{
		requestTransitionHandler: requestTransitionHandler,
		assignLivreurHandler:     assignLivreurHandler,
		unassignLivreurHandler:   unassignLivreurHandler,
		assignOrderHandler:       assignOrderHandler,
		getOrderHandler:          getOrderHandler,
		getMyOrdersHandler:       getMyOrdersHandler,
		listUnassignedHandler:    listUnassignedHandler,
		listAssignedHandler:      listAssignedHandler,
		orderSummariesHandler:    orderSummariesHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1 behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))

	api.GET("/orders/my", s.GetMyOrders)
	api.GET("/orders/summaries", s.GetOrderSummaries)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.PUT("/orders/:id/livreur", s.AssignOrder)

	api.GET("/livreurs/unassigned", s.GetUnassignedLivreurs)
	api.GET("/livreurs/assigned", s.GetAssignedLivreurs)
	api.POST("/livreurs/assign", s.AssignLivreur)
	api.DELETE("/livreurs/:id", s.UnassignLivreur)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order, serving
// last-known cached state when the marketplace is unreachable.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(c, err)
	}

	response, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, orderEnvelope{
		Order:     toOrderResponse(response.Order),
		FromCache: response.FromCache,
	})
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - requests a
// lifecycle transition on behalf of the caller's role. Illegal transitions
// are rejected locally, before any marketplace round trip.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	principal, ok := PrincipalFromContext(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody{
			Code: http.StatusUnauthorized, Message: "missing principal",
		})
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	var body updateStatusRequest
	if err = c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return errorResponse(c, err)
	}

	cmd, err := commands.NewRequestTransitionCommand(orderID, principal.Role, target)
	if err != nil {
		return errorResponse(c, err)
	}

	confirmed, err := s.requestTransitionHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, orderEnvelope{Order: toOrderResponse(confirmed)})
}

// AssignOrder handles PUT /api/v1/orders/:id/livreur - hands a ready
// home-delivery order to a livreur from the épicerie's pool.
func (s *Server) AssignOrder(c echo.Context) error {
	epicerieID, err := requireEpicier(c)
	if err != nil {
		return errorResponse(c, err)
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	var body assignLivreurRequest
	if err = c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	livreurID, err := kernel.NewID(body.LivreurID)
	if err != nil {
		return errorResponse(c, err)
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, epicerieID, livreurID)
	if err != nil {
		return errorResponse(c, err)
	}

	confirmed, err := s.assignOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, orderEnvelope{Order: toOrderResponse(confirmed)})
}

// GetMyOrders handles GET /api/v1/orders/my - lists the caller's orders,
// optionally narrowed with ?status=.
func (s *Server) GetMyOrders(c echo.Context) error {
	principal, ok := PrincipalFromContext(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody{
			Code: http.StatusUnauthorized, Message: "missing principal",
		})
	}

	var status *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return errorResponse(c, err)
		}
		status = &parsed
	}

	// cache fallback only exists for the épicier dashboard
	query, err := queries.NewGetMyOrdersQuery(principal.EpicerieID, status)
	if err != nil {
		return errorResponse(c, err)
	}

	response, err := s.getMyOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, orderListEnvelope{
		Orders:    toOrderListResponse(response.Orders),
		FromCache: response.FromCache,
	})
}

// GetOrderSummaries handles GET /api/v1/orders/summaries - the épicier
// dashboard list, served straight from the snapshot cache.
func (s *Server) GetOrderSummaries(c echo.Context) error {
	epicerieID, err := requireEpicier(c)
	if err != nil {
		return errorResponse(c, err)
	}

	query, err := queries.NewGetCachedOrderSummariesQuery(epicerieID)
	if err != nil {
		return errorResponse(c, err)
	}

	summaries, err := s.orderSummariesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return errorResponse(c, err)
	}

	type summaryResponse struct {
		ID           int64  `json:"id"`
		Status       string `json:"status"`
		DeliveryType string `json:"deliveryType"`
		Total        string `json:"total"`
		UpdatedAt    string `json:"updatedAt"`
	}
	response := make([]summaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, summaryResponse{
			ID:           summary.ID.Value(),
			Status:       summary.Status.String(),
			DeliveryType: summary.DeliveryType.String(),
			Total:        summary.Total.String(),
			UpdatedAt:    summary.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return c.JSON(http.StatusOK, response)
}

// GetUnassignedLivreurs handles GET /api/v1/livreurs/unassigned.
func (s *Server) GetUnassignedLivreurs(c echo.Context) error {
	query := queries.NewListUnassignedLivreursQuery()

	response, err := s.listUnassignedHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, livreurListEnvelope{
		Livreurs:  toLivreurListResponse(response.Livreurs),
		FromCache: response.FromCache,
	})
}

// GetAssignedLivreurs handles GET /api/v1/livreurs/assigned - the caller
// épicerie's pool, with cache fallback when the marketplace is unreachable.
func (s *Server) GetAssignedLivreurs(c echo.Context) error {
	epicerieID, err := requireEpicier(c)
	if err != nil {
		return errorResponse(c, err)
	}

	query, err := queries.NewListAssignedLivreursQuery(epicerieID)
	if err != nil {
		return errorResponse(c, err)
	}

	response, err := s.listAssignedHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, livreurListEnvelope{
		Livreurs:  toLivreurListResponse(response.Livreurs),
		FromCache: response.FromCache,
	})
}

// AssignLivreur handles POST /api/v1/livreurs/assign - moves a livreur into
// the caller épicerie's pool and returns both re-fetched lists.
func (s *Server) AssignLivreur(c echo.Context) error {
	epicerieID, err := requireEpicier(c)
	if err != nil {
		return errorResponse(c, err)
	}

	var body assignLivreurRequest
	if err = c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	livreurID, err := kernel.NewID(body.LivreurID)
	if err != nil {
		return errorResponse(c, err)
	}

	cmd, err := commands.NewAssignLivreurCommand(epicerieID, livreurID)
	if err != nil {
		return errorResponse(c, err)
	}

	listings, err := s.assignLivreurHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, toPoolListingsResponse(listings))
}

// UnassignLivreur handles DELETE /api/v1/livreurs/:id - releases a livreur
// back to the unassigned pool. Requires ?confirm=true; the mobile app shows a
// confirmation dialog and only a confirmed tap reaches the marketplace.
func (s *Server) UnassignLivreur(c echo.Context) error {
	epicerieID, err := requireEpicier(c)
	if err != nil {
		return errorResponse(c, err)
	}

	livreurID, err := pathID(c, "id")
	if err != nil {
		return errorResponse(c, err)
	}

	confirmed := c.QueryParam("confirm") == "true"

	cmd, err := commands.NewUnassignLivreurCommand(epicerieID, livreurID, confirmed)
	if err != nil {
		return errorResponse(c, err)
	}

	listings, err := s.unassignLivreurHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, toPoolListingsResponse(listings))
}

// requireEpicier extracts the épicerie scope from the principal, rejecting
// callers whose token does not identify an épicier.
func requireEpicier(c echo.Context) (kernel.ID, error) {
	principal, ok := PrincipalFromContext(c.Request().Context())
	if !ok {
		return kernel.ID{}, errs.NewValueIsRequiredError("principal")
	}
	if principal.Role != kernel.RoleEpicier || principal.EpicerieID == nil {
		return kernel.ID{}, errs.NewBusinessRejectionError("authorize request",
			"this operation is reserved to épiciers")
	}
	return *principal.EpicerieID, nil
}

// pathID parses a numeric id path parameter.
func pathID(c echo.Context, name string) (kernel.ID, error) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return kernel.ID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.NewID(value)
}
