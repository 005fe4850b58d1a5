package riderrepo

import (
	"context"
	"errors"

	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/rider"
	"frangodahora/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRiderRepository implements RiderRepository using GORM.
type GormRiderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking persisted aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormRiderRepository creates a new GORM rider repository.
func NewGormRiderRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderRepository {
	return &GormRiderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rider and attaches the generated id to the aggregate.
func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := riderFromDomain(aggregate)
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

// Get retrieves a rider by id.
func (r *GormRiderRepository) Get(ctx context.Context, id int64) (*rider.Rider, error) {
	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id)
		}
		return nil, err
	}

	return riderToDomain(dto)
}

// GetForUpdate retrieves a rider by id under a row lock. The lock is held
// until the surrounding transaction ends, serializing route mutations for
// the rider.
func (r *GormRiderRepository) GetForUpdate(ctx context.Context, id int64) (*rider.Rider, error) {
	var dto RiderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id)
		}
		return nil, err
	}

	return riderToDomain(dto)
}

// GetAll retrieves every registered rider, ordered by name.
func (r *GormRiderRepository) GetAll(ctx context.Context) ([]*rider.Rider, error) {
	var dtos []RiderDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	riders := make([]*rider.Rider, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := riderToDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, aggregate)
	}

	return riders, nil
}

// FindByName retrieves a rider by their unique name.
func (r *GormRiderRepository) FindByName(ctx context.Context, name string) (*rider.Rider, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("rider name")
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", name)
		}
		return nil, err
	}

	return riderToDomain(dto)
}

// Delete removes a rider together with their bag assignments. Callers verify
// the rider has no in-route orders first.
func (r *GormRiderRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Where("rider_id = ?", id).Delete(&AssignmentDTO{}).Error
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RiderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rider", id)
	}

	return nil
}

// GetAssignment retrieves a rider's bag assignment for a day. A day without
// an assignment yields an empty bag, not an error.
func (r *GormRiderRepository) GetAssignment(
	ctx context.Context, riderID int64, day kernel.Day,
) (*rider.DailyAssignment, error) {
	if err := day.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).First(&dto, "rider_id = ? AND day = ?", riderID, day.Time()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rider.NewDailyAssignment(riderID, day)
		}
		return nil, err
	}

	return assignmentToDomain(dto)
}

// SaveAssignment upserts a rider's bag assignment for its day.
func (r *GormRiderRepository) SaveAssignment(ctx context.Context, assignment *rider.DailyAssignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	dto := assignmentFromDomain(assignment)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "rider_id"}, {Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{"bag"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(assignment)
	return nil
}

// TotalAllotted sums every rider's bag allotment for a day.
func (r *GormRiderRepository) TotalAllotted(ctx context.Context, day kernel.Day) (float64, error) {
	if err := day.Validate(); err != nil {
		return 0, err
	}

	var total float64
	err := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Select("COALESCE(SUM(bag), 0)").
		Where("day = ?", day.Time()).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
