package cmd

import (
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/pricingcatalog"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/jobs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	pricingCatalog *pricingcatalog.GormPricingCatalog
	pricingConfig  commands.PricingConfig
	logger         *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	insurancePercent, err := decimal.NewFromString(config.InsurancePercent)
	if err != nil {
		insurancePercent = decimal.Zero
	}
	taxPercent, err := decimal.NewFromString(config.TaxPercent)
	if err != nil {
		taxPercent = decimal.Zero
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricingCatalog: pricingcatalog.NewGormPricingCatalog(gormDB),
		pricingConfig: commands.PricingConfig{
			InsurancePercent: insurancePercent,
			TaxPercent:       taxPercent,
		},
		logger: logger,
	}
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customsUoWFactory() commands.CustomsUoWFactory {
	return FuncCustomsUoWFactory(func() commands.CustomsUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(
		c.bookingUoWFactory(),
		c.pricingCatalog,
		c.pricingCatalog,
		c.pricingCatalog,
		c.pricingConfig,
	)
}

func (c *CompositionRoot) CreateProcessScanCommandHandler() commands.ProcessScanCommandHandler {
	return commands.NewProcessScanCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateProcessScanBatchCommandHandler() commands.ProcessScanBatchCommandHandler {
	return commands.NewProcessScanBatchCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreatePlaceCustomsHoldCommandHandler() commands.PlaceCustomsHoldCommandHandler {
	return commands.NewPlaceCustomsHoldCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateRequestCustomsDocumentsCommandHandler() commands.RequestCustomsDocumentsCommandHandler {
	return commands.NewRequestCustomsDocumentsCommandHandler(c.customsUoWFactory())
}

func (c *CompositionRoot) CreateSubmitCustomsDocumentsCommandHandler() commands.SubmitCustomsDocumentsCommandHandler {
	return commands.NewSubmitCustomsDocumentsCommandHandler(c.customsUoWFactory())
}

func (c *CompositionRoot) CreateRecordCustomsInspectionCommandHandler() commands.RecordCustomsInspectionCommandHandler {
	return commands.NewRecordCustomsInspectionCommandHandler(c.customsUoWFactory())
}

func (c *CompositionRoot) CreateAssessCustomsDutyCommandHandler() commands.AssessCustomsDutyCommandHandler {
	return commands.NewAssessCustomsDutyCommandHandler(c.customsUoWFactory())
}

func (c *CompositionRoot) CreateRecordDutyPaymentCommandHandler() commands.RecordDutyPaymentCommandHandler {
	return commands.NewRecordDutyPaymentCommandHandler(c.customsUoWFactory())
}

func (c *CompositionRoot) CreateClearCustomsCommandHandler() commands.ClearCustomsCommandHandler {
	return commands.NewClearCustomsCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateRejectCustomsCommandHandler() commands.RejectCustomsCommandHandler {
	return commands.NewRejectCustomsCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	return commands.NewCancelShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateReopenShipmentCommandHandler() commands.ReopenShipmentCommandHandler {
	return commands.NewReopenShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateTransitionShipmentCommandHandler() commands.TransitionShipmentCommandHandler {
	return commands.NewTransitionShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateGetShipmentTrackingQueryHandler() queries.GetShipmentTrackingQueryHandler {
	return queries.NewGetShipmentTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingClearanceQueryHandler() queries.GetPendingClearanceQueryHandler {
	return queries.NewGetPendingClearanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAwaitingDutyQueryHandler() queries.GetAwaitingDutyQueryHandler {
	return queries.NewGetAwaitingDutyQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClearanceSummaryQueryHandler() queries.GetClearanceSummaryQueryHandler {
	return queries.NewGetClearanceSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBranchMetricsQueryHandler() queries.GetBranchMetricsQueryHandler {
	return queries.NewGetBranchMetricsQueryHandler(c.gormDB)
}

// CreateServer wires every handler into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerHandlers{
		CreateShipment:     c.CreateCreateShipmentCommandHandler(),
		ProcessScan:        c.CreateProcessScanCommandHandler(),
		ProcessScanBatch:   c.CreateProcessScanBatchCommandHandler(),
		PlaceCustomsHold:   c.CreatePlaceCustomsHoldCommandHandler(),
		RequestDocuments:   c.CreateRequestCustomsDocumentsCommandHandler(),
		SubmitDocuments:    c.CreateSubmitCustomsDocumentsCommandHandler(),
		RecordInspection:   c.CreateRecordCustomsInspectionCommandHandler(),
		AssessDuty:         c.CreateAssessCustomsDutyCommandHandler(),
		RecordDutyPayment:  c.CreateRecordDutyPaymentCommandHandler(),
		ClearCustoms:       c.CreateClearCustomsCommandHandler(),
		RejectCustoms:      c.CreateRejectCustomsCommandHandler(),
		CancelShipment:     c.CreateCancelShipmentCommandHandler(),
		ReopenShipment:     c.CreateReopenShipmentCommandHandler(),
		TransitionShipment: c.CreateTransitionShipmentCommandHandler(),
		Tracking:           c.CreateGetShipmentTrackingQueryHandler(),
		PendingClearance:   c.CreateGetPendingClearanceQueryHandler(),
		AwaitingDuty:       c.CreateGetAwaitingDutyQueryHandler(),
		ClearanceSummary:   c.CreateGetClearanceSummaryQueryHandler(),
		BranchMetrics:      c.CreateGetBranchMetricsQueryHandler(),
	})
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager(schedules jobs.Schedules) *jobs.JobManager {
	return jobs.NewJobManager(
		c.gormDB,
		c.CreateGetClearanceSummaryQueryHandler(),
		schedules,
		c.logger,
	)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncCustomsUoWFactory func() commands.CustomsUoW

func (f FuncCustomsUoWFactory) Create() commands.CustomsUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
