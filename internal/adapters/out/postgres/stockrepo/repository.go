package stockrepo

import (
	"context"
	"errors"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/stock"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking persisted aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert records the initial quantity for a day, replacing any earlier entry.
func (r *GormStockRepository) Upsert(ctx context.Context, entry *stock.StockDay) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{"initial"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry)
	return nil
}

// Get retrieves the day's entry. A day without an entry yields a zero
// initial quantity, not an error.
func (r *GormStockRepository) Get(ctx context.Context, day kernel.Day) (*stock.StockDay, error) {
	if err := day.Validate(); err != nil {
		return nil, err
	}

	var dto StockDayDTO
	if err := r.db.WithContext(ctx).First(&dto, "day = ?", day.Time()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return stock.NewStockDay(day, 0)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves the day's entry under a row lock, inserting a zero
// entry first when the day has none so there is always a row to lock. The
// lock is held until the surrounding transaction ends, which serializes every
// admission check for the day.
func (r *GormStockRepository) GetForUpdate(ctx context.Context, day kernel.Day) (*stock.StockDay, error) {
	if err := day.Validate(); err != nil {
		return nil, err
	}

	seed := StockDayDTO{Day: day.Time()}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seed).Error
	if err != nil {
		return nil, err
	}

	var dto StockDayDTO
	err = r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "day = ?", day.Time()).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}
