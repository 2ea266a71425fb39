package customsrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/customs"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomsCaseRepository implements CustomsCaseRepository using GORM.
type GormCustomsCaseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomsCaseRepository creates a new GORM customs case repository.
func NewGormCustomsCaseRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomsCaseRepository {
	return &GormCustomsCaseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customs case to the database.
func (r *GormCustomsCaseRepository) Add(ctx context.Context, aggregate *customs.Case) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing customs case to the database.
func (r *GormCustomsCaseRepository) Update(ctx context.Context, aggregate *customs.Case) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CaseDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customs case", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customs case by ID.
func (r *GormCustomsCaseRepository) Get(ctx context.Context, id kernel.UUID) (*customs.Case, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CaseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customs case", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByShipment retrieves the open case attached to a shipment. Closed cases
// stay in the table for audit but are not returned here.
func (r *GormCustomsCaseRepository) GetByShipment(
	ctx context.Context, shipmentID kernel.UUID,
) (*customs.Case, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto CaseDTO
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ? AND closed_at IS NULL", shipmentID.Bytes()).
		Order("opened_at DESC").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customs case for shipment", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
