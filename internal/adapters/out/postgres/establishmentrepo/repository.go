package establishmentrepo

import (
	"context"
	"errors"

	"frangodahora/internal/core/domain/model/establishment"
	"frangodahora/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEstablishmentRepository implements EstablishmentRepository using GORM.
type GormEstablishmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking persisted aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormEstablishmentRepository creates a new GORM establishment repository.
func NewGormEstablishmentRepository(db *gorm.DB, tracker aggregateTracker) *GormEstablishmentRepository {
	return &GormEstablishmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new establishment and attaches the generated id.
func (r *GormEstablishmentRepository) Add(ctx context.Context, aggregate *establishment.Establishment) error {
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

// Update saves an existing establishment. Select("*") forces the boolean
// flags through even when they are being switched off.
func (r *GormEstablishmentRepository) Update(ctx context.Context, aggregate *establishment.Establishment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&EstablishmentDTO{}).
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

// Get retrieves an establishment by its local id.
func (r *GormEstablishmentRepository) Get(ctx context.Context, id int64) (*establishment.Establishment, error) {
	var dto EstablishmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("establishment", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByRemoteID retrieves an establishment by the marketplace's id for it.
func (r *GormEstablishmentRepository) GetByRemoteID(
	ctx context.Context, remoteID int64,
) (*establishment.Establishment, error) {
	var dto EstablishmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "remote_id = ?", remoteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("establishment", remoteID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered establishment, ordered by name.
func (r *GormEstablishmentRepository) GetAll(ctx context.Context) ([]*establishment.Establishment, error) {
	var dtos []EstablishmentDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActive retrieves the establishments the sync engine polls.
func (r *GormEstablishmentRepository) GetAllActive(ctx context.Context) ([]*establishment.Establishment, error) {
	var dtos []EstablishmentDTO
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes an establishment registration.
func (r *GormEstablishmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&EstablishmentDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("establishment", id)
	}

	return nil
}

func toDomainSlice(dtos []EstablishmentDTO) ([]*establishment.Establishment, error) {
	establishments := make([]*establishment.Establishment, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		establishments = append(establishments, aggregate)
	}
	return establishments, nil
}
