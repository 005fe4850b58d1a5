package cmd

import (
	"log/slog"

	"frangodahora/internal/adapters/in/http"
	"frangodahora/internal/adapters/out/notify"
	"frangodahora/internal/adapters/out/postgres"
	"frangodahora/internal/adapters/out/taskqueue"
	"frangodahora/internal/adapters/out/uairango"
	"frangodahora/internal/core/application/usecases/commands"
	"frangodahora/internal/core/application/usecases/queries"
	"frangodahora/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot builds and caches the application's object graph. The sync
// handler is a singleton because its in-flight flag is what keeps the cron
// tick and the manual trigger from overlapping.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	client     ports.MarketplaceClient
	hub        *notify.Hub
	queue      *taskqueue.ChannelTaskQueue
	logger     *slog.Logger

	syncHandler *commands.SyncMarketplaceCommandHandler
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		client:     uairango.NewClient(configs.MarketplaceURL),
		hub:        notify.NewHub(logger),
		queue:      taskqueue.NewChannelTaskQueue(configs.TaskQueueSize, logger),
		logger:     logger,
	}

	importHandler := root.CreateImportMarketplaceOrderCommandHandler()
	root.syncHandler = commands.NewSyncMarketplaceCommandHandler(
		FuncSyncUoWFactory(func() commands.SyncUoW { return root.uowFactory.Create() }),
		root.client,
		&importHandler,
		logger,
	)

	return root
}

// Hub returns the websocket hub; the caller owns its Run loop.
func (c *CompositionRoot) Hub() *notify.Hub {
	return c.hub
}

// TaskQueue returns the outbound task queue; the caller owns its Run loop.
func (c *CompositionRoot) TaskQueue() *taskqueue.ChannelTaskQueue {
	return c.queue
}

// SyncHandler returns the shared marketplace sync handler.
func (c *CompositionRoot) SyncHandler() *commands.SyncMarketplaceCommandHandler {
	return c.syncHandler
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateImportMarketplaceOrderCommandHandler() commands.ImportMarketplaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportMarketplaceOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateAcceptMarketplaceOrderCommandHandler() commands.AcceptMarketplaceOrderCommandHandler {
	var f commands.DecisionUoWFactory = FuncDecisionUoWFactory(func() commands.DecisionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptMarketplaceOrderCommandHandler(f, c.client, c.hub)
}

func (c *CompositionRoot) CreateRejectMarketplaceOrderCommandHandler() commands.RejectMarketplaceOrderCommandHandler {
	var f commands.DecisionUoWFactory = FuncDecisionUoWFactory(func() commands.DecisionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectMarketplaceOrderCommandHandler(f, c.client, c.hub, c.logger)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateReorderRouteCommandHandler() commands.ReorderRouteCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReorderRouteCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateDeleteRiderCommandHandler() commands.DeleteRiderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteRiderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateSetStockCommandHandler() commands.SetStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetStockCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateAdjustRiderBagCommandHandler() commands.AdjustRiderBagCommandHandler {
	var f commands.BagUoWFactory = FuncBagUoWFactory(func() commands.BagUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustRiderBagCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateRegisterEstablishmentCommandHandler() commands.RegisterEstablishmentCommandHandler {
	var f commands.EstablishmentUoWFactory = FuncEstablishmentUoWFactory(func() commands.EstablishmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterEstablishmentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateEstablishmentCommandHandler() commands.UpdateEstablishmentCommandHandler {
	var f commands.EstablishmentUoWFactory = FuncEstablishmentUoWFactory(func() commands.EstablishmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateEstablishmentCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveEstablishmentCommandHandler() commands.RemoveEstablishmentCommandHandler {
	var f commands.EstablishmentUoWFactory = FuncEstablishmentUoWFactory(func() commands.EstablishmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveEstablishmentCommandHandler(f)
}

func (c *CompositionRoot) CreatePushDeliveryTimeCommandHandler() commands.PushDeliveryTimeCommandHandler {
	var f commands.EstablishmentUoWFactory = FuncEstablishmentUoWFactory(func() commands.EstablishmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPushDeliveryTimeCommandHandler(f, c.client, c.queue, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersByDayQueryHandler() queries.GetOrdersByDayQueryHandler {
	return queries.NewGetOrdersByDayQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockAvailabilityQueryHandler() queries.GetStockAvailabilityQueryHandler {
	return queries.NewGetStockAvailabilityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRiderRoutesQueryHandler() queries.GetRiderRoutesQueryHandler {
	return queries.NewGetRiderRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEstablishmentsQueryHandler() queries.GetEstablishmentsQueryHandler {
	return queries.NewGetEstablishmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNeighborhoodFeesQueryHandler() queries.GetNeighborhoodFeesQueryHandler {
	return queries.NewGetNeighborhoodFeesQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server from the full handler set.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(http.ServerHandlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		UpdateOrder:    c.CreateUpdateOrderCommandHandler(),
		CancelOrder:    c.CreateCancelOrderCommandHandler(),
		DeliverOrder:   c.CreateDeliverOrderCommandHandler(),
		ImportOrder:    c.CreateImportMarketplaceOrderCommandHandler(),
		AcceptOrder:    c.CreateAcceptMarketplaceOrderCommandHandler(),
		RejectOrder:    c.CreateRejectMarketplaceOrderCommandHandler(),
		AssignRider:    c.CreateAssignRiderCommandHandler(),
		ReorderRoute:   c.CreateReorderRouteCommandHandler(),
		SetStock:       c.CreateSetStockCommandHandler(),
		AdjustBag:      c.CreateAdjustRiderBagCommandHandler(),
		DeleteRider:    c.CreateDeleteRiderCommandHandler(),
		RegisterEst:    c.CreateRegisterEstablishmentCommandHandler(),
		UpdateEst:      c.CreateUpdateEstablishmentCommandHandler(),
		RemoveEst:      c.CreateRemoveEstablishmentCommandHandler(),
		PushDelivery:   c.CreatePushDeliveryTimeCommandHandler(),
		Sync:           c.syncHandler,
		GetOrdersByDay: c.CreateGetOrdersByDayQueryHandler(),
		GetOrder:       c.CreateGetOrderQueryHandler(),
		GetStock:       c.CreateGetStockAvailabilityQueryHandler(),
		GetRiderRoutes: c.CreateGetRiderRoutesQueryHandler(),
		GetEstabs:      c.CreateGetEstablishmentsQueryHandler(),
		GetFees:        c.CreateGetNeighborhoodFeesQueryHandler(),
	}, c.hub)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncBagUoWFactory func() commands.BagUoW

func (f FuncBagUoWFactory) Create() commands.BagUoW {
	return f()
}

type FuncDecisionUoWFactory func() commands.DecisionUoW

func (f FuncDecisionUoWFactory) Create() commands.DecisionUoW {
	return f()
}

type FuncSyncUoWFactory func() commands.SyncUoW

func (f FuncSyncUoWFactory) Create() commands.SyncUoW {
	return f()
}

type FuncEstablishmentUoWFactory func() commands.EstablishmentUoW

func (f FuncEstablishmentUoWFactory) Create() commands.EstablishmentUoW {
	return f()
}
