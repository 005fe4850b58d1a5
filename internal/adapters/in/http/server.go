package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"frangodahora/internal/adapters/out/notify"
	"frangodahora/internal/core/application/usecases/commands"
	"frangodahora/internal/core/application/usecases/queries"
	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/marketplace"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP routes to the application use cases. It holds one
// instance of every command and query handler plus the websocket hub for
// the screens.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	updateOrderHandler     commands.UpdateOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	deliverOrderHandler    commands.DeliverOrderCommandHandler
	importOrderHandler     commands.ImportMarketplaceOrderCommandHandler
	acceptOrderHandler     commands.AcceptMarketplaceOrderCommandHandler
	rejectOrderHandler     commands.RejectMarketplaceOrderCommandHandler
	assignRiderHandler     commands.AssignRiderCommandHandler
	reorderRouteHandler    commands.ReorderRouteCommandHandler
	setStockHandler        commands.SetStockCommandHandler
	adjustBagHandler       commands.AdjustRiderBagCommandHandler
	deleteRiderHandler     commands.DeleteRiderCommandHandler
	registerEstHandler     commands.RegisterEstablishmentCommandHandler
	updateEstHandler       commands.UpdateEstablishmentCommandHandler
	removeEstHandler       commands.RemoveEstablishmentCommandHandler
	pushDeliveryHandler    commands.PushDeliveryTimeCommandHandler
	syncHandler            *commands.SyncMarketplaceCommandHandler

	// Query handlers
	getOrdersByDayHandler    queries.GetOrdersByDayQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getStockHandler          queries.GetStockAvailabilityQueryHandler
	getRiderRoutesHandler    queries.GetRiderRoutesQueryHandler
	getEstablishmentsHandler queries.GetEstablishmentsQueryHandler
	getFeesHandler           queries.GetNeighborhoodFeesQueryHandler

	hub *notify.Hub
}

// ServerHandlers groups everything the HTTP server depends on. The
// composition root fills it in.
type ServerHandlers struct {
	CreateOrder     commands.CreateOrderCommandHandler
	UpdateOrder     commands.UpdateOrderCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler
	DeliverOrder    commands.DeliverOrderCommandHandler
	ImportOrder     commands.ImportMarketplaceOrderCommandHandler
	AcceptOrder     commands.AcceptMarketplaceOrderCommandHandler
	RejectOrder     commands.RejectMarketplaceOrderCommandHandler
	AssignRider     commands.AssignRiderCommandHandler
	ReorderRoute    commands.ReorderRouteCommandHandler
	SetStock        commands.SetStockCommandHandler
	AdjustBag       commands.AdjustRiderBagCommandHandler
	DeleteRider     commands.DeleteRiderCommandHandler
	RegisterEst     commands.RegisterEstablishmentCommandHandler
	UpdateEst       commands.UpdateEstablishmentCommandHandler
	RemoveEst       commands.RemoveEstablishmentCommandHandler
	PushDelivery    commands.PushDeliveryTimeCommandHandler
	Sync            *commands.SyncMarketplaceCommandHandler
	GetOrdersByDay  queries.GetOrdersByDayQueryHandler
	GetOrder        queries.GetOrderQueryHandler
	GetStock        queries.GetStockAvailabilityQueryHandler
	GetRiderRoutes  queries.GetRiderRoutesQueryHandler
	GetEstabs       queries.GetEstablishmentsQueryHandler
	GetFees         queries.GetNeighborhoodFeesQueryHandler
}

// NewServer creates the HTTP server.
func NewServer(handlers ServerHandlers, hub *notify.Hub) *Server {
	return &Server{
		createOrderHandler:       handlers.CreateOrder,
		updateOrderHandler:       handlers.UpdateOrder,
		cancelOrderHandler:       handlers.CancelOrder,
		deliverOrderHandler:      handlers.DeliverOrder,
		importOrderHandler:       handlers.ImportOrder,
		acceptOrderHandler:       handlers.AcceptOrder,
		rejectOrderHandler:       handlers.RejectOrder,
		assignRiderHandler:       handlers.AssignRider,
		reorderRouteHandler:      handlers.ReorderRoute,
		setStockHandler:          handlers.SetStock,
		adjustBagHandler:         handlers.AdjustBag,
		deleteRiderHandler:       handlers.DeleteRider,
		registerEstHandler:       handlers.RegisterEst,
		updateEstHandler:         handlers.UpdateEst,
		removeEstHandler:         handlers.RemoveEst,
		pushDeliveryHandler:      handlers.PushDelivery,
		syncHandler:              handlers.Sync,
		getOrdersByDayHandler:    handlers.GetOrdersByDay,
		getOrderHandler:          handlers.GetOrder,
		getStockHandler:          handlers.GetStock,
		getRiderRoutesHandler:    handlers.GetRiderRoutes,
		getEstablishmentsHandler: handlers.GetEstabs,
		getFeesHandler:           handlers.GetFees,
		hub:                      hub,
	}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByDay)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/assign", s.AssignRider)
	api.POST("/webhook/orders", s.ImportMarketplaceOrder)

	api.GET("/stock", s.GetStock)
	api.PUT("/stock", s.SetStock)

	api.GET("/riders", s.GetRiderRoutes)
	api.POST("/riders/bag", s.AdjustBag)
	api.DELETE("/riders/:id", s.DeleteRider)
	api.PUT("/riders/:id/route", s.ReorderRoute)

	api.GET("/establishments", s.GetEstablishments)
	api.POST("/establishments", s.RegisterEstablishment)
	api.PUT("/establishments/:id", s.UpdateEstablishment)
	api.DELETE("/establishments/:id", s.RemoveEstablishment)

	api.GET("/neighborhoods", s.GetNeighborhoodFees)

	api.POST("/sync", s.TriggerSync)
	api.PUT("/delivery-time", s.PushDeliveryTime)

	e.GET("/ws", s.ServeWS)
}

// CreateOrder handles POST /api/v1/orders - admits a counter or phone order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	day, err := parseDayOrToday(req.Day)
	if err != nil {
		return writeBadRequest(ctx, "Invalid day: "+err.Error())
	}

	channel, err := parseChannel(req.Channel)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	details, err := req.toDomain()
	if err != nil {
		return writeBadRequest(ctx, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(day, time.Now(), channel, details)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order data: "+err.Error())
	}

	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: id})
}

// GetOrdersByDay handles GET /api/v1/orders - the board for one day.
func (s *Server) GetOrdersByDay(ctx echo.Context) error {
	day, err := parseDayOrToday(ctx.QueryParam("day"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid day: "+err.Error())
	}

	query, err := queries.NewGetOrdersByDayQuery(day)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	orders, err := s.getOrdersByDayHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PUT /api/v1/orders/:id - replaces the order details.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var req orderDetailsRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	details, err := req.toDomain()
	if err != nil {
		return writeBadRequest(ctx, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderCommand(id, details)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeliverOrderCommand(id)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ImportMarketplaceOrder handles POST /api/v1/webhook/orders - takes an
// order payload in the marketplace's native shape and stores it with the
// same insert-if-absent guarantee the polling cycle uses. Duplicates are
// acknowledged, not errors: webhook retries and overlapping polls are
// expected.
func (s *Server) ImportMarketplaceOrder(ctx echo.Context) error {
	var remote marketplace.RemoteOrder
	if err := ctx.Bind(&remote); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	details, err := remote.ToOrderDetails()
	if err != nil {
		return writeBadRequest(ctx, "Invalid order payload: "+err.Error())
	}

	now := time.Now()
	cmd, err := commands.NewImportMarketplaceOrderCommand(
		remote.Code, remote.EstablishmentID, kernel.NewDay(now), now, details,
	)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	inserted, err := s.importOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	if !inserted {
		return ctx.JSON(http.StatusOK, messageResponse{Message: "Order already imported"})
	}
	return ctx.JSON(http.StatusCreated, messageResponse{Message: "Order imported"})
}

// AcceptOrder handles POST /api/v1/orders/:id/accept - confirms a
// marketplace order remotely and promotes it to the board.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAcceptMarketplaceOrderCommand(id)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:id/reject - rejects a marketplace
// order remotely and cancels it locally.
func (s *Server) RejectOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var req rejectOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectMarketplaceOrderCommand(id, req.Reason)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignRider handles POST /api/v1/orders/:id/assign - puts the order at the
// end of the rider's route.
func (s *Server) AssignRider(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var req assignRiderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignRiderCommand(id, req.RiderID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStock handles GET /api/v1/stock - the day's availability numbers.
func (s *Server) GetStock(ctx echo.Context) error {
	day, err := parseDayOrToday(ctx.QueryParam("day"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid day: "+err.Error())
	}

	query, err := queries.NewGetStockAvailabilityQuery(day)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	availability, err := s.getStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, availability)
}

// SetStock handles PUT /api/v1/stock - sets the day's initial stock.
func (s *Server) SetStock(ctx echo.Context) error {
	var req setStockRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	day, err := parseDayOrToday(req.Day)
	if err != nil {
		return writeBadRequest(ctx, "Invalid day: "+err.Error())
	}

	cmd, err := commands.NewSetStockCommand(day, req.Quantity)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.setStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRiderRoutes handles GET /api/v1/riders - every rider with their bag and
// route for the day.
func (s *Server) GetRiderRoutes(ctx echo.Context) error {
	day, err := parseDayOrToday(ctx.QueryParam("day"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid day: "+err.Error())
	}

	query, err := queries.NewGetRiderRoutesQuery(day)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	riders, err := s.getRiderRoutesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, riders)
}

// AdjustBag handles POST /api/v1/riders/bag - moves stock between the
// counter and a rider's bag. Unknown rider names are registered on the fly.
func (s *Server) AdjustBag(ctx echo.Context) error {
	var req adjustBagRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	day, err := parseDayOrToday(req.Day)
	if err != nil {
		return writeBadRequest(ctx, "Invalid day: "+err.Error())
	}

	cmd, err := commands.NewAdjustRiderBagCommand(req.RiderName, day, req.Delta)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.adjustBagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteRider handles DELETE /api/v1/riders/:id.
func (s *Server) DeleteRider(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid rider id")
	}

	day, err := parseDayOrToday(ctx.QueryParam("day"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid day: "+err.Error())
	}

	cmd, err := commands.NewDeleteRiderCommand(id, day)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.deleteRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReorderRoute handles PUT /api/v1/riders/:id/route - rewrites the stop
// order of the rider's in-route orders.
func (s *Server) ReorderRoute(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid rider id")
	}

	var req reorderRouteRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	day, err := parseDayOrToday(req.Day)
	if err != nil {
		return writeBadRequest(ctx, "Invalid day: "+err.Error())
	}

	cmd, err := commands.NewReorderRouteCommand(id, day, req.OrderIDs)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.reorderRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetEstablishments handles GET /api/v1/establishments.
func (s *Server) GetEstablishments(ctx echo.Context) error {
	query := queries.NewGetEstablishmentsQuery()

	establishments, err := s.getEstablishmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, establishments)
}

// RegisterEstablishment handles POST /api/v1/establishments.
func (s *Server) RegisterEstablishment(ctx echo.Context) error {
	var req registerEstablishmentRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterEstablishmentCommand(req.RemoteID, req.DeveloperToken, req.Name)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	id, err := s.registerEstHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: id})
}

// UpdateEstablishment handles PUT /api/v1/establishments/:id - switches the
// active and automation flags.
func (s *Server) UpdateEstablishment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid establishment id")
	}

	var req updateEstablishmentRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateEstablishmentCommand(id, req.Active, req.AutoCloseStore, req.AutoRejectOrders)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.updateEstHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveEstablishment handles DELETE /api/v1/establishments/:id.
func (s *Server) RemoveEstablishment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid establishment id")
	}

	cmd, err := commands.NewRemoveEstablishmentCommand(id)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.removeEstHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetNeighborhoodFees handles GET /api/v1/neighborhoods - the delivery fee
// table used when pricing an order.
func (s *Server) GetNeighborhoodFees(ctx echo.Context) error {
	query := queries.NewGetNeighborhoodFeesQuery()

	fees, err := s.getFeesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fees)
}

// TriggerSync handles POST /api/v1/sync - starts one marketplace polling
// cycle without blocking the caller. A cycle already running covers the
// request, so the answer is 202 either way.
func (s *Server) TriggerSync(ctx echo.Context) error {
	cmd := commands.NewSyncMarketplaceCommand()

	go func() {
		err := s.syncHandler.Handle(context.Background(), cmd)
		if err != nil && !errors.Is(err, commands.ErrSyncCycleInProgress) {
			slog.Error("Manual sync cycle failed", "error", err)
		}
	}()

	return ctx.JSON(http.StatusAccepted, messageResponse{Message: "Sync cycle started"})
}

// PushDeliveryTime handles PUT /api/v1/delivery-time - queues a preparation
// time push to every active establishment.
func (s *Server) PushDeliveryTime(ctx echo.Context) error {
	var req pushDeliveryTimeRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPushDeliveryTimeCommand(req.Minutes)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.pushDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, messageResponse{Message: "Delivery time push queued"})
}

// ServeWS handles GET /ws - upgrades the connection and registers the screen
// with the hub.
func (s *Server) ServeWS(ctx echo.Context) error {
	notify.ServeWS(s.hub, ctx.Response(), ctx.Request())
	return nil
}

func pathID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}
