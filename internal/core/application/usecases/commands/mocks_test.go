package commands_test

import (
	"context"

	"frangodahora/internal/core/application/usecases/commands"
	"frangodahora/internal/core/domain/model/establishment"
	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/marketplace"
	"frangodahora/internal/core/domain/model/neighborhood"
	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/core/domain/model/rider"
	"frangodahora/internal/core/domain/model/stock"
	"frangodahora/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) AddIfAbsent(ctx context.Context, o *order.Order) (bool, error) {
	args := m.Called(ctx, o)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByDay(ctx context.Context, day kernel.Day) ([]*order.Order, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetInRouteByRider(
	ctx context.Context,
	riderID int64,
	day kernel.Day,
) ([]*order.Order, error) {
	args := m.Called(ctx, riderID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) MaxRoutePosition(ctx context.Context, riderID int64, day kernel.Day) (int, error) {
	args := m.Called(ctx, riderID, day)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) ConsumedQuantity(ctx context.Context, day kernel.Day) (float64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockOrderRepository) ReservedForPickup(ctx context.Context, day kernel.Day) (float64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(float64), args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Upsert(ctx context.Context, entry *stock.StockDay) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockStockRepository) Get(ctx context.Context, day kernel.Day) (*stock.StockDay, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.StockDay), args.Error(1)
}

func (m *MockStockRepository) GetForUpdate(ctx context.Context, day kernel.Day) (*stock.StockDay, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.StockDay), args.Error(1)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id int64) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetForUpdate(ctx context.Context, id int64) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetAll(ctx context.Context) ([]*rider.Rider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) FindByName(ctx context.Context, name string) (*rider.Rider, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRiderRepository) GetAssignment(
	ctx context.Context,
	riderID int64,
	day kernel.Day,
) (*rider.DailyAssignment, error) {
	args := m.Called(ctx, riderID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.DailyAssignment), args.Error(1)
}

func (m *MockRiderRepository) SaveAssignment(ctx context.Context, assignment *rider.DailyAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockRiderRepository) TotalAllotted(ctx context.Context, day kernel.Day) (float64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(float64), args.Error(1)
}

type MockEstablishmentRepository struct{ mock.Mock }

func (m *MockEstablishmentRepository) Add(ctx context.Context, e *establishment.Establishment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEstablishmentRepository) Update(ctx context.Context, e *establishment.Establishment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEstablishmentRepository) Get(ctx context.Context, id int64) (*establishment.Establishment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*establishment.Establishment), args.Error(1)
}

func (m *MockEstablishmentRepository) GetByRemoteID(
	ctx context.Context,
	remoteID int64,
) (*establishment.Establishment, error) {
	args := m.Called(ctx, remoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*establishment.Establishment), args.Error(1)
}

func (m *MockEstablishmentRepository) GetAll(ctx context.Context) ([]*establishment.Establishment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*establishment.Establishment), args.Error(1)
}

func (m *MockEstablishmentRepository) GetAllActive(ctx context.Context) ([]*establishment.Establishment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*establishment.Establishment), args.Error(1)
}

func (m *MockEstablishmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNeighborhoodFeeRepository struct{ mock.Mock }

func (m *MockNeighborhoodFeeRepository) Upsert(ctx context.Context, fee *neighborhood.Fee) error {
	args := m.Called(ctx, fee)
	return args.Error(0)
}

func (m *MockNeighborhoodFeeRepository) GetByName(ctx context.Context, name string) (*neighborhood.Fee, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*neighborhood.Fee), args.Error(1)
}

func (m *MockNeighborhoodFeeRepository) GetAll(ctx context.Context) ([]*neighborhood.Fee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*neighborhood.Fee), args.Error(1)
}

// MockUoW satisfies every unit-of-work combination the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

func (m *MockUoW) EstablishmentRepository() ports.EstablishmentRepository {
	args := m.Called()
	return args.Get(0).(ports.EstablishmentRepository)
}

func (m *MockUoW) NeighborhoodFeeRepository() ports.NeighborhoodFeeRepository {
	args := m.Called()
	return args.Get(0).(ports.NeighborhoodFeeRepository)
}

// Factory adapters returning the shared MockUoW under each combination type.
type (
	orderUoWFactory         struct{ uow *MockUoW }
	stockUoWFactory         struct{ uow *MockUoW }
	intakeUoWFactory        struct{ uow *MockUoW }
	dispatchUoWFactory      struct{ uow *MockUoW }
	bagUoWFactory           struct{ uow *MockUoW }
	decisionUoWFactory      struct{ uow *MockUoW }
	syncUoWFactory          struct{ uow *MockUoW }
	establishmentUoWFactory struct{ uow *MockUoW }
)

func (f orderUoWFactory) Create() commands.OrderUoW                 { return f.uow }
func (f stockUoWFactory) Create() commands.StockUoW                 { return f.uow }
func (f intakeUoWFactory) Create() commands.IntakeUoW               { return f.uow }
func (f dispatchUoWFactory) Create() commands.DispatchUoW           { return f.uow }
func (f bagUoWFactory) Create() commands.BagUoW                     { return f.uow }
func (f decisionUoWFactory) Create() commands.DecisionUoW           { return f.uow }
func (f syncUoWFactory) Create() commands.SyncUoW                   { return f.uow }
func (f establishmentUoWFactory) Create() commands.EstablishmentUoW { return f.uow }

// RecordingNotifier collects broadcast events.
type RecordingNotifier struct{ Events []string }

func (n *RecordingNotifier) Notify(event string) {
	n.Events = append(n.Events, event)
}

type MockMarketplaceClient struct{ mock.Mock }

func (m *MockMarketplaceClient) Authenticate(ctx context.Context, developerToken string) (string, error) {
	args := m.Called(ctx, developerToken)
	return args.String(0), args.Error(1)
}

func (m *MockMarketplaceClient) PendingOrders(
	ctx context.Context,
	token string,
	remoteEstablishmentID int64,
) ([]marketplace.PendingOrder, error) {
	args := m.Called(ctx, token, remoteEstablishmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketplace.PendingOrder), args.Error(1)
}

func (m *MockMarketplaceClient) OrderDetails(
	ctx context.Context,
	token string,
	code int64,
) (marketplace.RemoteOrder, error) {
	args := m.Called(ctx, token, code)
	return args.Get(0).(marketplace.RemoteOrder), args.Error(1)
}

func (m *MockMarketplaceClient) Confirm(ctx context.Context, token string, code int64) error {
	args := m.Called(ctx, token, code)
	return args.Error(0)
}

func (m *MockMarketplaceClient) Cancel(ctx context.Context, token string, code int64, reason string) error {
	args := m.Called(ctx, token, code, reason)
	return args.Error(0)
}

func (m *MockMarketplaceClient) StoreStatus(
	ctx context.Context,
	token string,
	remoteEstablishmentID int64,
) (bool, error) {
	args := m.Called(ctx, token, remoteEstablishmentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMarketplaceClient) SetStoreStatus(
	ctx context.Context,
	token string,
	remoteEstablishmentID int64,
	open bool,
) error {
	args := m.Called(ctx, token, remoteEstablishmentID, open)
	return args.Error(0)
}

func (m *MockMarketplaceClient) SetDeliveryTime(
	ctx context.Context,
	token string,
	remoteEstablishmentID int64,
	minutes int,
) error {
	args := m.Called(ctx, token, remoteEstablishmentID, minutes)
	return args.Error(0)
}

// InlineTaskQueue runs enqueued tasks immediately for deterministic tests.
type InlineTaskQueue struct{ Ran int }

func (q *InlineTaskQueue) Enqueue(task ports.Task) {
	q.Ran++
	_ = task(context.Background())
}
