package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// boardOrder ranks a day's orders for the operator's board: actionable
// orders first (awaiting a decision or pending dispatch), then in route,
// then delivered, cancelled last, newest first within each rank.
var boardOrder = fmt.Sprintf(
	"CASE status WHEN %d THEN 0 WHEN %d THEN 0 WHEN %d THEN 1 WHEN %d THEN 2 ELSE 3 END, placed_at DESC",
	order.StatusAwaitingMarketplace, order.StatusPending, order.StatusInRoute, order.StatusDelivered,
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking persisted aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and attaches the generated id to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if aggregate.ID() == 0 {
		if err := aggregate.AttachID(dto.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// AddIfAbsent saves a marketplace order unless one with the same external id
// already exists. The unique index on external_id makes the insert race-free:
// concurrent imports of the same remote order produce exactly one row.
func (r *GormOrderRepository) AddIfAbsent(ctx context.Context, aggregate *order.Order) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}
	if aggregate.ExternalID() == nil {
		return false, order.ErrNotAMarketplaceOrder
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	if aggregate.ID() == 0 {
		if err := aggregate.AttachID(dto.ID); err != nil {
			return false, err
		}
	}

	r.tracker.TrackAggregate(aggregate)
	return true, nil
}

// Update saves an existing order. Select("*") forces zero values through,
// so clearing the rider assignment on cancellation reaches the row.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get retrieves an order by its local identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByDay retrieves every order of a business day in board order.
func (r *GormOrderRepository) GetAllByDay(ctx context.Context, day kernel.Day) ([]*order.Order, error) {
	if err := day.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("day = ?", day.Time()).
		Order(boardOrder).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetInRouteByRider retrieves a rider's in-route orders for a day, ordered
// by route position.
func (r *GormOrderRepository) GetInRouteByRider(
	ctx context.Context, riderID int64, day kernel.Day,
) ([]*order.Order, error) {
	if err := day.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("rider_id = ? AND day = ? AND status = ?", riderID, day.Time(), int(order.StatusInRoute)).
		Order("route_position").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// MaxRoutePosition returns the highest route position among a rider's
// in-route orders for a day, zero when the route is empty.
func (r *GormOrderRepository) MaxRoutePosition(ctx context.Context, riderID int64, day kernel.Day) (int, error) {
	if err := day.Validate(); err != nil {
		return 0, err
	}

	var position int
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("COALESCE(MAX(route_position), 0)").
		Where("rider_id = ? AND day = ? AND status = ?", riderID, day.Time(), int(order.StatusInRoute)).
		Scan(&position).Error
	if err != nil {
		return 0, err
	}

	return position, nil
}

// ConsumedQuantity sums the staple quantity of the day's non-cancelled
// orders. Orders still awaiting a marketplace decision count: they hold
// stock until accepted or rejected.
func (r *GormOrderRepository) ConsumedQuantity(ctx context.Context, day kernel.Day) (float64, error) {
	if err := day.Validate(); err != nil {
		return 0, err
	}

	var total float64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("day = ? AND status != ?", day.Time(), int(order.StatusCancelled)).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

// ReservedForPickup sums the staple quantity of the day's non-cancelled
// pickup orders.
func (r *GormOrderRepository) ReservedForPickup(ctx context.Context, day kernel.Day) (float64, error) {
	if err := day.Validate(); err != nil {
		return 0, err
	}

	var total float64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("day = ? AND status != ? AND address = ?", day.Time(), int(order.StatusCancelled), order.PickupAddress).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}
