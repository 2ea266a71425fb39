// Package customsrepo provides data transfer objects and mapping functions
// for customs case persistence. Document lists are stored as postgres text
// arrays via pq.StringArray.
package customsrepo

import (
	"time"

	"logistics/internal/core/domain/model/customs"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// CaseDTO represents the database structure for persisting customs cases.
type CaseDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID      uuid.UUID `gorm:"type:uuid;index"`
	SubStatus       int       `gorm:"index"`
	HoldReason      string
	RequiredDocs    pq.StringArray `gorm:"type:text[]"`
	SubmittedDocs   pq.StringArray `gorm:"type:text[]"`
	InspectionDone  bool
	InspectionPass  bool
	InspectionNotes string
	DutyAssessed    decimal.Decimal
	TaxAssessed     decimal.Decimal
	DutyPaid        decimal.Decimal
	ClearanceNumber string
	RejectionReason string
	OpenedAt        time.Time
	ClosedAt        *time.Time
}

// TableName specifies the database table name for customs cases.
func (CaseDTO) TableName() string {
	return "customs_cases"
}

// fromDomain converts a case aggregate to its database representation.
func fromDomain(aggregate *customs.Case) CaseDTO {
	inspectionDone, inspectionPass := aggregate.InspectionRecorded()

	return CaseDTO{
		ID:              aggregate.ID().Bytes(),
		ShipmentID:      aggregate.ShipmentID().Bytes(),
		SubStatus:       int(aggregate.SubStatus()),
		HoldReason:      aggregate.HoldReason(),
		RequiredDocs:    pq.StringArray(aggregate.RequiredDocuments()),
		SubmittedDocs:   pq.StringArray(aggregate.SubmittedDocuments()),
		InspectionDone:  inspectionDone,
		InspectionPass:  inspectionPass,
		InspectionNotes: aggregate.InspectionNotes(),
		DutyAssessed:    aggregate.DutyAssessed(),
		TaxAssessed:     aggregate.TaxAssessed(),
		DutyPaid:        aggregate.DutyPaid(),
		ClearanceNumber: aggregate.ClearanceNumber(),
		RejectionReason: aggregate.RejectionReason(),
		OpenedAt:        aggregate.OpenedAt(),
		ClosedAt:        aggregate.ClosedAt(),
	}
}

// toDomain converts a database DTO to a case aggregate using RestoreCase.
func toDomain(dto CaseDTO) (*customs.Case, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	return customs.RestoreCase(
		id,
		shipmentID,
		customs.SubStatus(dto.SubStatus),
		dto.HoldReason,
		[]string(dto.RequiredDocs),
		[]string(dto.SubmittedDocs),
		dto.InspectionDone,
		dto.InspectionPass,
		dto.InspectionNotes,
		dto.DutyAssessed,
		dto.TaxAssessed,
		dto.DutyPaid,
		dto.ClearanceNumber,
		dto.RejectionReason,
		dto.OpenedAt,
		dto.ClosedAt,
	)
}
