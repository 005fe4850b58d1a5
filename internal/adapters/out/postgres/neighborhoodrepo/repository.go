package neighborhoodrepo

import (
	"context"
	"errors"

	"frangodahora/internal/core/domain/model/neighborhood"
	"frangodahora/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNeighborhoodFeeRepository implements NeighborhoodFeeRepository using GORM.
type GormNeighborhoodFeeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking persisted aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormNeighborhoodFeeRepository creates a new GORM delivery-fee repository.
func NewGormNeighborhoodFeeRepository(db *gorm.DB, tracker aggregateTracker) *GormNeighborhoodFeeRepository {
	return &GormNeighborhoodFeeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert records a neighborhood's delivery fee, keyed by name.
func (r *GormNeighborhoodFeeRepository) Upsert(ctx context.Context, fee *neighborhood.Fee) error {
	if err := fee.Validate(); err != nil {
		return err
	}

	dto := fromDomain(fee)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"fee"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(fee)
	return nil
}

// GetByName retrieves a neighborhood's fee entry.
func (r *GormNeighborhoodFeeRepository) GetByName(ctx context.Context, name string) (*neighborhood.Fee, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("neighborhood name")
	}

	var dto FeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("neighborhood fee", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every known neighborhood, ordered by name.
func (r *GormNeighborhoodFeeRepository) GetAll(ctx context.Context) ([]*neighborhood.Fee, error) {
	var dtos []FeeDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	fees := make([]*neighborhood.Fee, 0, len(dtos))
	for _, dto := range dtos {
		fee, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}

	return fees, nil
}
