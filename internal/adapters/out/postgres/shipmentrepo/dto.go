// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The aggregate maps to two tables: the shipments
// row carries the current state, and shipment_history carries the append-only
// transition trail as child rows keyed by sequence number.
package shipmentrepo

import (
	"encoding/json"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The pricing breakdown is stored wholesale as a jsonb snapshot;
// it is written once at booking and never merged field by field.
type ShipmentDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber      string     `gorm:"uniqueIndex"`
	WaybillReference    string     ``
	OriginBranchID      uuid.UUID  `gorm:"type:uuid"`
	DestinationBranchID uuid.UUID  `gorm:"type:uuid;index"`
	CustomerID          uuid.UUID  `gorm:"type:uuid;index"`
	CourierID           *uuid.UUID `gorm:"type:uuid"`
	BagID               *uuid.UUID `gorm:"type:uuid;index"`
	WeightKg            decimal.Decimal
	Status              int `gorm:"index"`
	RequiresCustoms     bool
	Pricing             []byte `gorm:"type:jsonb"`
	Version             int64
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// HistoryEntryDTO represents one row of the transition trail. Rows are
// insert-only: (shipment_id, seq) is the primary key and seq follows the
// in-memory append order.
type HistoryEntryDTO struct {
	ShipmentID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int       `gorm:"primaryKey"`
	PriorStatus int
	NewStatus   int
	Trigger     int        `gorm:"column:trigger"`
	ScanEventID *uuid.UUID `gorm:"type:uuid"`
	Performer   string
	Note        string
	Override    bool
	OccurredAt  time.Time
}

// TableName specifies the database table name for history rows.
func (HistoryEntryDTO) TableName() string {
	return "shipment_history"
}

// fromDomain converts a shipment aggregate to its database representation,
// splitting the trail into child rows.
func fromDomain(aggregate *shipment.Shipment) (ShipmentDTO, []HistoryEntryDTO, error) {
	var courierID, bagID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}
	if id := aggregate.BagID(); id != nil {
		raw := id.Bytes()
		bagID = &raw
	}

	var pricingJSON []byte
	if breakdown := aggregate.Pricing(); breakdown != nil {
		raw, err := json.Marshal(breakdown)
		if err != nil {
			return ShipmentDTO{}, nil, err
		}
		pricingJSON = raw
	}

	dto := ShipmentDTO{
		ID:                  aggregate.ID().Bytes(),
		TrackingNumber:      aggregate.TrackingNumber().String(),
		WaybillReference:    aggregate.WaybillReference(),
		OriginBranchID:      aggregate.OriginBranchID().Bytes(),
		DestinationBranchID: aggregate.DestinationBranchID().Bytes(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		CourierID:           courierID,
		BagID:               bagID,
		WeightKg:            aggregate.WeightKg(),
		Status:              int(aggregate.Status()),
		RequiresCustoms:     aggregate.RequiresCustoms(),
		Pricing:             pricingJSON,
		Version:             aggregate.Version(),
	}

	history := aggregate.History()
	historyDTOs := make([]HistoryEntryDTO, 0, len(history))
	for seq, entry := range history {
		var scanEventID *uuid.UUID
		if id := entry.ScanEventID(); id != nil {
			raw := id.Bytes()
			scanEventID = &raw
		}

		historyDTOs = append(historyDTOs, HistoryEntryDTO{
			ShipmentID:  dto.ID,
			Seq:         seq,
			PriorStatus: int(entry.PriorStatus()),
			NewStatus:   int(entry.NewStatus()),
			Trigger:     int(entry.Trigger()),
			ScanEventID: scanEventID,
			Performer:   entry.Performer(),
			Note:        entry.Note(),
			Override:    entry.Override(),
			OccurredAt:  entry.OccurredAt(),
		})
	}

	return dto, historyDTOs, nil
}

// toDomain converts database DTOs back to a shipment aggregate using
// RestoreShipment.
func toDomain(dto ShipmentDTO, historyDTOs []HistoryEntryDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := shipment.NewTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	originID, err := kernel.UUIDFromBytes(dto.OriginBranchID[:])
	if err != nil {
		return nil, err
	}
	destinationID, err := kernel.UUIDFromBytes(dto.DestinationBranchID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID, bagID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}
	if dto.BagID != nil {
		bID, bagErr := kernel.UUIDFromBytes((*dto.BagID)[:])
		if bagErr != nil {
			return nil, bagErr
		}
		bagID = &bID
	}

	var breakdown *pricing.Breakdown
	if len(dto.Pricing) > 0 {
		breakdown = &pricing.Breakdown{}
		if err = json.Unmarshal(dto.Pricing, breakdown); err != nil {
			return nil, err
		}
	}

	history := make([]shipment.HistoryEntry, 0, len(historyDTOs))
	for _, h := range historyDTOs {
		var scanEventID *kernel.UUID
		if h.ScanEventID != nil {
			sID, scanErr := kernel.UUIDFromBytes((*h.ScanEventID)[:])
			if scanErr != nil {
				return nil, scanErr
			}
			scanEventID = &sID
		}

		history = append(history, shipment.RestoreHistoryEntry(
			shipment.Status(h.PriorStatus),
			shipment.Status(h.NewStatus),
			shipment.Trigger(h.Trigger),
			scanEventID,
			h.Performer,
			h.Note,
			h.Override,
			h.OccurredAt,
		))
	}

	return shipment.RestoreShipment(
		id,
		trackingNumber,
		dto.WaybillReference,
		originID,
		destinationID,
		customerID,
		courierID,
		bagID,
		dto.WeightKg,
		shipment.Status(dto.Status),
		dto.RequiresCustoms,
		breakdown,
		history,
		dto.Version,
	)
}
