// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// CustomsRepoFactory provides access to the customs case repository within a transaction.
	CustomsRepoFactory interface {
		CustomsCaseRepository() ports.CustomsCaseRepository
	}

	// CampaignReservationFactory provides access to campaign usage reservations
	// within a transaction.
	CampaignReservationFactory interface {
		CampaignReservations() ports.CampaignReservations
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	// Used when commands only modify shipment aggregates.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// BookingUoW manages the shipment booking transaction: the new aggregate and
	// any promotion usage reservations commit or roll back together.
	BookingUoW interface {
		TxManager
		ShipmentRepoFactory
		CampaignReservationFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// CustomsUoW manages transactions for customs-case-only operations.
	// Used when commands only modify case aggregates.
	CustomsUoW interface {
		TxManager
		CustomsRepoFactory
	}

	// CustomsUoWFactory creates new customs unit of work instances.
	CustomsUoWFactory interface {
		Create() CustomsUoW
	}

	// UoW manages transactions across both shipment and customs aggregates.
	// Used for commands that keep the parent status and the case sub-status
	// consistent, such as placing a customs hold or clearing the case.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipmentRepo := uow.ShipmentRepository()
	//   customsRepo := uow.CustomsCaseRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ShipmentRepoFactory
		CustomsRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
