package shipmentrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment and its creation history to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, historyDTOs, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err = r.insertHistory(ctx, historyDTOs); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database.
//
// The write carries an optimistic version precondition: the stored row must
// still be older than the aggregate's version, so two writers loading the
// same shipment cannot both land. New history rows go in alongside the
// status; the shipment's current state and its trail move together or not
// at all.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, historyDTOs, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ? AND version < ?", dto.ID, dto.Version).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("shipment version")
	}

	if err = r.insertHistory(ctx, historyDTOs); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetByTrackingNumber retrieves a shipment by its public tracking number.
func (r *GormShipmentRepository) GetByTrackingNumber(
	ctx context.Context, trackingNumber shipment.TrackingNumber,
) (*shipment.Shipment, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "tracking_number = ?", trackingNumber.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetAllInBag retrieves all shipments assigned to the given bag.
func (r *GormShipmentRepository) GetAllInBag(
	ctx context.Context, bagID kernel.UUID,
) ([]*shipment.Shipment, error) {
	if err := bagID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).
		Order("tracking_number").
		Find(&dtos, "bag_id = ?", bagID.Bytes()).Error; err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := r.load(ctx, dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, aggregate)
	}

	return shipments, nil
}

func (r *GormShipmentRepository) load(ctx context.Context, dto ShipmentDTO) (*shipment.Shipment, error) {
	var historyDTOs []HistoryEntryDTO
	if err := r.db.WithContext(ctx).
		Order("seq").
		Find(&historyDTOs, "shipment_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, historyDTOs)
}

// insertHistory writes trail rows. Existing (shipment_id, seq) rows are left
// untouched: the trail is append-only and entries never change once written.
func (r *GormShipmentRepository) insertHistory(ctx context.Context, historyDTOs []HistoryEntryDTO) error {
	if len(historyDTOs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&historyDTOs).Error
}
