// Package http is the inbound HTTP adapter. It translates requests into
// commands and queries, and business errors into status codes. No business
// rules live here; the handlers own the scopes, this layer only calls them.
package http

import (
	"errors"
	"net/http"

	"autoshop/internal/core/application/logic"
	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/application/usecases/queries"
	"autoshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server wires the HTTP routes to the command and query handlers.
type Server struct {
	// Command handlers
	addCarHandler      commands.AddCarCommandHandler
	transferCarHandler commands.TransferCarOwnershipCommandHandler
	createOrderHandler commands.CreateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler
	getUserOrdersHandler   queries.GetUserOrdersQueryHandler
	getUserCarsHandler     queries.GetUserCarsQueryHandler
	getAllUsersHandler     queries.GetAllUsersQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	addCarHandler commands.AddCarCommandHandler,
	transferCarHandler commands.TransferCarOwnershipCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getUserCarsHandler queries.GetUserCarsQueryHandler,
	getAllUsersHandler queries.GetAllUsersQueryHandler,
) *Server {
	return &Server{
		addCarHandler:          addCarHandler,
		transferCarHandler:     transferCarHandler,
		createOrderHandler:     createOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		getOrderSummaryHandler: getOrderSummaryHandler,
		getUserOrdersHandler:   getUserOrdersHandler,
		getUserCarsHandler:     getUserCarsHandler,
		getAllUsersHandler:     getAllUsersHandler,
	}
}

// RegisterRoutes attaches all routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/cars", s.AddCar)
	v1.POST("/cars/:carId/transfer", s.TransferCarOwnership)
	v1.POST("/orders", s.CreateOrder)
	v1.POST("/orders/:orderId/cancel", s.CancelOrder)
	v1.GET("/orders/:orderId/summary", s.GetOrderSummary)
	v1.GET("/users", s.GetAllUsers)
	v1.GET("/users/:userId/orders", s.GetUserOrders)
	v1.GET("/users/:userId/cars", s.GetUserCars)
}

// envelope is the uniform response body: a success flag, an error text for
// failures and the payload for successes.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, envelope{Success: true, Data: data})
}

func respondError(ctx echo.Context, status int, err error) error {
	return ctx.JSON(status, envelope{Success: false, Error: err.Error()})
}

// statusFromError maps the business error kinds to HTTP status codes.
// Anything unrecognized is a persistence or programming failure.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type addCarRequest struct {
	UserID    int64  `json:"userId"`
	Nameplate string `json:"nameplate"`
}

// AddCar handles POST /api/v1/cars.
func (s *Server) AddCar(ctx echo.Context) error {
	var req addCarRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewAddCarCommand(req.UserID, req.Nameplate)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	carID, err := s.addCarHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, statusFromError(err), err)
	}

	return respond(ctx, http.StatusCreated, map[string]any{"carId": carID})
}

type transferCarRequest struct {
	FromUserID int64 `json:"fromUserId"`
	ToUserID   int64 `json:"toUserId"`
}

// TransferCarOwnership handles POST /api/v1/cars/:carId/transfer.
func (s *Server) TransferCarOwnership(ctx echo.Context) error {
	carID, err := paramID(ctx, "carId")
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	var req transferCarRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewTransferCarOwnershipCommand(carID, req.FromUserID, req.ToUserID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	if err = s.transferCarHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, statusFromError(err), err)
	}

	return respond(ctx, http.StatusOK, nil)
}

type orderItemRequest struct {
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

type createOrderRequest struct {
	UserID int64              `json:"userId"`
	Items  []orderItemRequest `json:"items"`
}

// CreateOrder handles POST /api/v1/orders. Unit prices travel as strings so
// they survive the trip without floating-point damage.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	items := make([]logic.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		unitPrice, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}

		items = append(items, logic.ItemInput{
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(req.UserID, items)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, statusFromError(err), err)
	}

	return respond(ctx, http.StatusCreated, map[string]any{
		"orderId":     result.OrderID,
		"orderNumber": result.OrderNumber,
		"status":      result.Status,
		"totalAmount": result.TotalAmount.StringFixed(2),
		"itemCount":   result.ItemCount,
	})
}

type cancelOrderRequest struct {
	UserID int64 `json:"userId"`
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := paramID(ctx, "orderId")
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	var req cancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.UserID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, statusFromError(err), err)
	}

	return respond(ctx, http.StatusOK, nil)
}

// GetOrderSummary handles GET /api/v1/orders/:orderId/summary.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	orderID, err := paramID(ctx, "orderId")
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, statusFromError(err), err)
	}

	return respond(ctx, http.StatusOK, map[string]any{
		"orderId":      summary.OrderID,
		"orderNumber":  summary.OrderNumber,
		"userEmail":    summary.UserEmail,
		"userCarCount": summary.UserCarCount,
		"totalAmount":  summary.TotalAmount.StringFixed(2),
		"status":       summary.Status,
		"itemCount":    summary.ItemCount,
	})
}

// GetAllUsers handles GET /api/v1/users.
func (s *Server) GetAllUsers(ctx echo.Context) error {
	offset, limit := pagination(ctx)

	query, err := queries.NewGetAllUsersQuery(offset, limit)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	users, err := s.getAllUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, statusFromError(err), err)
	}

	return respond(ctx, http.StatusOK, users)
}

// GetUserOrders handles GET /api/v1/users/:userId/orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := paramID(ctx, "userId")
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	offset, limit := pagination(ctx)

	query, err := queries.NewGetUserOrdersQuery(userID, offset, limit)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, statusFromError(err), err)
	}

	type orderResponse struct {
		ID          int64  `json:"id"`
		OrderNumber string `json:"orderNumber"`
		OrderDate   string `json:"orderDate"`
		Status      string `json:"status"`
		TotalAmount string `json:"totalAmount"`
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponse{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			OrderDate:   o.OrderDate.UTC().Format("2006-01-02T15:04:05Z"),
			Status:      o.Status,
			TotalAmount: o.TotalAmount.StringFixed(2),
		}
	}

	return respond(ctx, http.StatusOK, response)
}

// GetUserCars handles GET /api/v1/users/:userId/cars.
func (s *Server) GetUserCars(ctx echo.Context) error {
	userID, err := paramID(ctx, "userId")
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	offset, limit := pagination(ctx)

	query, err := queries.NewGetUserCarsQuery(userID, offset, limit)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}

	cars, err := s.getUserCarsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, statusFromError(err), err)
	}

	return respond(ctx, http.StatusOK, cars)
}
