// Package http exposes the application over REST using echo. Handlers bind
// JSON payloads, build constructor-guarded commands and queries, and map
// domain errors onto HTTP statuses.
package http

import (
	"errors"
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/customs"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler     commands.CreateShipmentCommandHandler
	processScanHandler        commands.ProcessScanCommandHandler
	processScanBatchHandler   commands.ProcessScanBatchCommandHandler
	placeCustomsHoldHandler   commands.PlaceCustomsHoldCommandHandler
	requestDocumentsHandler   commands.RequestCustomsDocumentsCommandHandler
	submitDocumentsHandler    commands.SubmitCustomsDocumentsCommandHandler
	recordInspectionHandler   commands.RecordCustomsInspectionCommandHandler
	assessDutyHandler         commands.AssessCustomsDutyCommandHandler
	recordDutyPaymentHandler  commands.RecordDutyPaymentCommandHandler
	clearCustomsHandler       commands.ClearCustomsCommandHandler
	rejectCustomsHandler      commands.RejectCustomsCommandHandler
	cancelShipmentHandler     commands.CancelShipmentCommandHandler
	reopenShipmentHandler     commands.ReopenShipmentCommandHandler
	transitionShipmentHandler commands.TransitionShipmentCommandHandler

	// Query handlers
	trackingHandler         queries.GetShipmentTrackingQueryHandler
	pendingClearanceHandler queries.GetPendingClearanceQueryHandler
	awaitingDutyHandler     queries.GetAwaitingDutyQueryHandler
	clearanceSummaryHandler queries.GetClearanceSummaryQueryHandler
	branchMetricsHandler    queries.GetBranchMetricsQueryHandler
}

// ServerHandlers bundles the command and query handlers the server needs.
type ServerHandlers struct {
	CreateShipment     commands.CreateShipmentCommandHandler
	ProcessScan        commands.ProcessScanCommandHandler
	ProcessScanBatch   commands.ProcessScanBatchCommandHandler
	PlaceCustomsHold   commands.PlaceCustomsHoldCommandHandler
	RequestDocuments   commands.RequestCustomsDocumentsCommandHandler
	SubmitDocuments    commands.SubmitCustomsDocumentsCommandHandler
	RecordInspection   commands.RecordCustomsInspectionCommandHandler
	AssessDuty         commands.AssessCustomsDutyCommandHandler
	RecordDutyPayment  commands.RecordDutyPaymentCommandHandler
	ClearCustoms       commands.ClearCustomsCommandHandler
	RejectCustoms      commands.RejectCustomsCommandHandler
	CancelShipment     commands.CancelShipmentCommandHandler
	ReopenShipment     commands.ReopenShipmentCommandHandler
	TransitionShipment commands.TransitionShipmentCommandHandler

	Tracking         queries.GetShipmentTrackingQueryHandler
	PendingClearance queries.GetPendingClearanceQueryHandler
	AwaitingDuty     queries.GetAwaitingDutyQueryHandler
	ClearanceSummary queries.GetClearanceSummaryQueryHandler
	BranchMetrics    queries.GetBranchMetricsQueryHandler
}

// NewServer creates an HTTP server with the required handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createShipmentHandler:     handlers.CreateShipment,
		processScanHandler:        handlers.ProcessScan,
		processScanBatchHandler:   handlers.ProcessScanBatch,
		placeCustomsHoldHandler:   handlers.PlaceCustomsHold,
		requestDocumentsHandler:   handlers.RequestDocuments,
		submitDocumentsHandler:    handlers.SubmitDocuments,
		recordInspectionHandler:   handlers.RecordInspection,
		assessDutyHandler:         handlers.AssessDuty,
		recordDutyPaymentHandler:  handlers.RecordDutyPayment,
		clearCustomsHandler:       handlers.ClearCustoms,
		rejectCustomsHandler:      handlers.RejectCustoms,
		cancelShipmentHandler:     handlers.CancelShipment,
		reopenShipmentHandler:     handlers.ReopenShipment,
		transitionShipmentHandler: handlers.TransitionShipment,
		trackingHandler:           handlers.Tracking,
		pendingClearanceHandler:   handlers.PendingClearance,
		awaitingDutyHandler:       handlers.AwaitingDuty,
		clearanceSummaryHandler:   handlers.ClearanceSummary,
		branchMetricsHandler:      handlers.BranchMetrics,
	}
}

// RegisterRoutes attaches all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/shipments", s.BookShipment)
	v1.GET("/shipments/:trackingNumber", s.GetTracking)
	v1.POST("/shipments/:id/cancel", s.CancelShipment)
	v1.POST("/shipments/:id/reopen", s.ReopenShipment)
	v1.POST("/shipments/:id/transition", s.TransitionShipment)

	v1.POST("/scans", s.ProcessScan)
	v1.POST("/scans/batch", s.ProcessScanBatch)

	v1.POST("/customs/holds", s.PlaceCustomsHold)
	v1.POST("/customs/cases/:caseId/documents/request", s.RequestDocuments)
	v1.POST("/customs/cases/:caseId/documents", s.SubmitDocuments)
	v1.POST("/customs/cases/:caseId/inspection", s.RecordInspection)
	v1.POST("/customs/cases/:caseId/duty", s.AssessDuty)
	v1.POST("/customs/cases/:caseId/payments", s.RecordDutyPayment)
	v1.POST("/customs/cases/:caseId/clear", s.ClearCustoms)
	v1.POST("/customs/cases/:caseId/reject", s.RejectCustoms)
	v1.GET("/customs/pending", s.GetPendingClearance)
	v1.GET("/customs/awaiting-duty", s.GetAwaitingDuty)
	v1.GET("/customs/summary", s.GetClearanceSummary)

	v1.GET("/branches/:branchId/metrics", s.GetBranchMetrics)
}

// BookShipment handles POST /api/v1/shipments.
func (s *Server) BookShipment(ctx echo.Context) error {
	var req BookShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	trackingNumber, err := shipment.NewTrackingNumber(req.TrackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid tracking number: "+err.Error())
	}

	originBranchID, err := kernel.UUIDFromString(req.OriginBranchID)
	if err != nil {
		return badRequest(ctx, "Invalid origin branch ID")
	}
	destinationBranchID, err := kernel.UUIDFromString(req.DestinationBranchID)
	if err != nil {
		return badRequest(ctx, "Invalid destination branch ID")
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	weightKg, err := decimal.NewFromString(req.WeightKg)
	if err != nil {
		return badRequest(ctx, "Invalid weight")
	}

	options := services.ServiceOptions{
		HazmatDeclared: req.HazmatDeclared,
		RemoteArea:     req.RemoteArea,
	}
	if req.InsuredValue != "" {
		insured, insErr := decimal.NewFromString(req.InsuredValue)
		if insErr != nil {
			return badRequest(ctx, "Invalid insured value")
		}
		options.InsuredValue = insured
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID,
		trackingNumber,
		originBranchID,
		destinationBranchID,
		customerID,
		req.OriginZone,
		req.DestinationZone,
		req.ServiceLevel,
		req.CustomerType,
		weightKg,
		options,
		req.PromotionCodes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid booking data: "+err.Error())
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, BookShipmentResponse{
		ShipmentID:     shipmentID.String(),
		TrackingNumber: trackingNumber.String(),
	})
}

// GetTracking handles GET /api/v1/shipments/:trackingNumber.
func (s *Server) GetTracking(ctx echo.Context) error {
	trackingNumber, err := shipment.NewTrackingNumber(ctx.Param("trackingNumber"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking number")
	}

	query, err := queries.NewGetShipmentTrackingQuery(trackingNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.trackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTrackingResponse(view))
}

// ProcessScan handles POST /api/v1/scans.
func (s *Server) ProcessScan(ctx echo.Context) error {
	var req ScanRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	trackingNumber, err := shipment.NewTrackingNumber(req.TrackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid tracking number: "+err.Error())
	}

	cmd, err := commands.NewProcessScanCommand(
		kernel.NewUUID(),
		trackingNumber,
		req.ScanType,
		req.Performer,
		req.Note,
		occurredAtOrNow(req.OccurredAt),
	)
	if err != nil {
		return badRequest(ctx, "Invalid scan data: "+err.Error())
	}

	result, err := s.processScanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toScanResponse(result))
}

// ProcessScanBatch handles POST /api/v1/scans/batch.
func (s *Server) ProcessScanBatch(ctx echo.Context) error {
	var req ScanBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	events := make([]commands.BatchScanEvent, 0, len(req.Events))
	for _, item := range req.Events {
		event, err := toBatchEvent(item)
		if err != nil {
			return badRequest(ctx, "Invalid scan event: "+err.Error())
		}
		events = append(events, event)
	}

	cmd, err := commands.NewProcessScanBatchCommand(events)
	if err != nil {
		return badRequest(ctx, "Invalid batch: "+err.Error())
	}

	outcomes, err := s.processScanBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	response := ScanBatchResponse{Outcomes: make([]ScanOutcomeResponse, 0, len(outcomes))}
	for _, outcome := range outcomes {
		item := ScanOutcomeResponse{
			EventIndex:     outcome.EventIndex,
			ScanEventID:    outcome.ScanEventID,
			TrackingNumber: outcome.TrackingNumber,
		}
		if outcome.Result != nil {
			result := toScanResponse(*outcome.Result)
			item.Result = &result
		}
		if outcome.Err != nil {
			item.Error = outcome.Err.Error()
		}
		response.Outcomes = append(response.Outcomes, item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceCustomsHold handles POST /api/v1/customs/holds.
func (s *Server) PlaceCustomsHold(ctx echo.Context) error {
	var req PlaceHoldRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment ID")
	}

	caseID := kernel.NewUUID()
	cmd, err := commands.NewPlaceCustomsHoldCommand(caseID, shipmentID, req.HoldReason, req.Performer)
	if err != nil {
		return badRequest(ctx, "Invalid hold data: "+err.Error())
	}

	if err = s.placeCustomsHoldHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceHoldResponse{CaseID: caseID.String()})
}

// RequestDocuments handles POST /api/v1/customs/cases/:caseId/documents/request.
func (s *Server) RequestDocuments(ctx echo.Context) error {
	caseID, err := kernel.UUIDFromString(ctx.Param("caseId"))
	if err != nil {
		return badRequest(ctx, "Invalid case ID")
	}

	var req DocumentsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRequestCustomsDocumentsCommand(caseID, req.Documents)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.requestDocumentsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitDocuments handles POST /api/v1/customs/cases/:caseId/documents.
func (s *Server) SubmitDocuments(ctx echo.Context) error {
	caseID, err := kernel.UUIDFromString(ctx.Param("caseId"))
	if err != nil {
		return badRequest(ctx, "Invalid case ID")
	}

	var req DocumentsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitCustomsDocumentsCommand(caseID, req.Documents)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.submitDocumentsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordInspection handles POST /api/v1/customs/cases/:caseId/inspection.
func (s *Server) RecordInspection(ctx echo.Context) error {
	caseID, err := kernel.UUIDFromString(ctx.Param("caseId"))
	if err != nil {
		return badRequest(ctx, "Invalid case ID")
	}

	var req InspectionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordCustomsInspectionCommand(caseID, req.Passed, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.recordInspectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssessDuty handles POST /api/v1/customs/cases/:caseId/duty.
func (s *Server) AssessDuty(ctx echo.Context) error {
	caseID, err := kernel.UUIDFromString(ctx.Param("caseId"))
	if err != nil {
		return badRequest(ctx, "Invalid case ID")
	}

	var req DutyAssessmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	duty, err := decimal.NewFromString(req.Duty)
	if err != nil {
		return badRequest(ctx, "Invalid duty amount")
	}
	tax, err := decimal.NewFromString(req.Tax)
	if err != nil {
		return badRequest(ctx, "Invalid tax amount")
	}

	cmd, err := commands.NewAssessCustomsDutyCommand(caseID, duty, tax)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assessDutyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordDutyPayment handles POST /api/v1/customs/cases/:caseId/payments.
func (s *Server) RecordDutyPayment(ctx echo.Context) error {
	caseID, err := kernel.UUIDFromString(ctx.Param("caseId"))
	if err != nil {
		return badRequest(ctx, "Invalid case ID")
	}

	var req DutyPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid payment amount")
	}

	cmd, err := commands.NewRecordDutyPaymentCommand(caseID, amount)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.recordDutyPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCustoms handles POST /api/v1/customs/cases/:caseId/clear.
func (s *Server) ClearCustoms(ctx echo.Context) error {
	caseID, err := kernel.UUIDFromString(ctx.Param("caseId"))
	if err != nil {
		return badRequest(ctx, "Invalid case ID")
	}

	var req ClearRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewClearCustomsCommand(caseID, req.ClearanceNumber, req.Performer)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.clearCustomsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectCustoms handles POST /api/v1/customs/cases/:caseId/reject.
func (s *Server) RejectCustoms(ctx echo.Context) error {
	caseID, err := kernel.UUIDFromString(ctx.Param("caseId"))
	if err != nil {
		return badRequest(ctx, "Invalid case ID")
	}

	var req RejectRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectCustomsCommand(caseID, req.Reason, req.Performer)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.rejectCustomsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelShipment handles POST /api/v1/shipments/:id/cancel.
func (s *Server) CancelShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment ID")
	}

	var req CancelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelShipmentCommand(shipmentID, req.Performer, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReopenShipment handles POST /api/v1/shipments/:id/reopen.
func (s *Server) ReopenShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment ID")
	}

	var req ReopenRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, ok := shipment.StatusFromName(req.Target)
	if !ok {
		return badRequest(ctx, "Unknown target status")
	}

	cmd, err := commands.NewReopenShipmentCommand(shipmentID, target, req.Elevated, req.Performer, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.reopenShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionShipment handles POST /api/v1/shipments/:id/transition.
func (s *Server) TransitionShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment ID")
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, ok := shipment.StatusFromName(req.Target)
	if !ok {
		return badRequest(ctx, "Unknown target status")
	}

	cmd, err := commands.NewTransitionShipmentCommand(shipmentID, target, req.Override, req.Performer, req.Note)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.transitionShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPendingClearance handles GET /api/v1/customs/pending.
func (s *Server) GetPendingClearance(ctx echo.Context) error {
	groups, err := s.pendingClearanceHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingClearanceQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]PendingClearanceResponse, 0, len(groups))
	for _, group := range groups {
		item := PendingClearanceResponse{
			DestinationBranchID: group.DestinationBranchID.String(),
			Cases:               make([]PendingCaseResponse, 0, len(group.Cases)),
		}
		for _, c := range group.Cases {
			item.Cases = append(item.Cases, PendingCaseResponse{
				CaseID:         c.CaseID.String(),
				ShipmentID:     c.ShipmentID.String(),
				TrackingNumber: c.TrackingNumber,
				SubStatus:      c.SubStatus.String(),
				HoldReason:     c.HoldReason,
				OpenedAt:       c.OpenedAt,
			})
		}
		response = append(response, item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAwaitingDuty handles GET /api/v1/customs/awaiting-duty.
func (s *Server) GetAwaitingDuty(ctx echo.Context) error {
	cases, err := s.awaitingDutyHandler.Handle(
		ctx.Request().Context(), queries.NewGetAwaitingDutyQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]AwaitingDutyResponse, 0, len(cases))
	for _, c := range cases {
		response = append(response, AwaitingDutyResponse{
			CaseID:         c.CaseID.String(),
			ShipmentID:     c.ShipmentID.String(),
			TrackingNumber: c.TrackingNumber,
			TotalDue:       c.TotalDue.String(),
			DutyPaid:       c.DutyPaid.String(),
			Outstanding:    c.Outstanding.String(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetClearanceSummary handles GET /api/v1/customs/summary.
func (s *Server) GetClearanceSummary(ctx echo.Context) error {
	summary, err := s.clearanceSummaryHandler.Handle(
		ctx.Request().Context(), queries.NewGetClearanceSummaryQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := ClearanceSummaryResponse{
		CountsBySubStatus: make(map[string]int, len(summary.CountsBySubStatus)),
		TotalDutyPending:  summary.TotalDutyPending.String(),
	}
	for subStatus, count := range summary.CountsBySubStatus {
		response.CountsBySubStatus[subStatus.String()] = count
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBranchMetrics handles GET /api/v1/branches/:branchId/metrics.
// Query parameters: from, to (RFC 3339) and granularity (daily|weekly|monthly).
func (s *Server) GetBranchMetrics(ctx echo.Context) error {
	branchID, err := kernel.UUIDFromString(ctx.Param("branchId"))
	if err != nil {
		return badRequest(ctx, "Invalid branch ID")
	}

	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid from timestamp")
	}
	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid to timestamp")
	}

	granularity, ok := services.GranularityFromName(ctx.QueryParam("granularity"))
	if !ok {
		return badRequest(ctx, "Unknown granularity")
	}

	query, err := queries.NewGetBranchMetricsQuery(branchID, from, to, granularity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	bundle, err := s.branchMetricsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMetricsResponse(bundle))
}

func toBatchEvent(item ScanRequest) (commands.BatchScanEvent, error) {
	occurredAt := occurredAtOrNow(item.OccurredAt)

	if item.BagID != "" {
		bagID, err := kernel.UUIDFromString(item.BagID)
		if err != nil {
			return commands.BatchScanEvent{}, err
		}
		return commands.NewBagScanEvent(
			kernel.NewUUID(), bagID, item.ScanType, item.Performer, item.Note, occurredAt)
	}

	trackingNumber, err := shipment.NewTrackingNumber(item.TrackingNumber)
	if err != nil {
		return commands.BatchScanEvent{}, err
	}
	return commands.NewShipmentScanEvent(
		kernel.NewUUID(), trackingNumber, item.ScanType, item.Performer, item.Note, occurredAt)
}

func occurredAtOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain failures onto HTTP statuses: unknown objects are
// 404, state-machine and workflow rejections are 409, bad values are 400,
// everything else is 500.
func domainError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, shipment.ErrIllegalTransition),
		errors.Is(err, shipment.ErrTerminalState),
		errors.Is(err, shipment.ErrReopenRequiresAuthorization),
		errors.Is(err, customs.ErrWorkflowViolation),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, pricing.ErrInvalidPromotionCode),
		errors.Is(err, pricing.ErrNoApplicableRateCard),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
