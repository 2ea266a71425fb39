package http

import (
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
)

// Error is the JSON error payload returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BookShipmentRequest is the booking payload.
type BookShipmentRequest struct {
	TrackingNumber      string   `json:"trackingNumber"`
	OriginBranchID      string   `json:"originBranchId"`
	DestinationBranchID string   `json:"destinationBranchId"`
	CustomerID          string   `json:"customerId"`
	OriginZone          string   `json:"originZone"`
	DestinationZone     string   `json:"destinationZone"`
	ServiceLevel        string   `json:"serviceLevel"`
	CustomerType        string   `json:"customerType"`
	WeightKg            string   `json:"weightKg"`
	HazmatDeclared      bool     `json:"hazmatDeclared"`
	RemoteArea          bool     `json:"remoteArea"`
	InsuredValue        string   `json:"insuredValue,omitempty"`
	PromotionCodes      []string `json:"promotionCodes,omitempty"`
}

// BookShipmentResponse acknowledges a booking.
type BookShipmentResponse struct {
	ShipmentID     string `json:"shipmentId"`
	TrackingNumber string `json:"trackingNumber"`
}

// ScanRequest is a single scan event payload.
type ScanRequest struct {
	TrackingNumber string    `json:"trackingNumber,omitempty"`
	BagID          string    `json:"bagId,omitempty"`
	ScanType       string    `json:"scanType"`
	Performer      string    `json:"performer,omitempty"`
	Note           string    `json:"note,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// ScanBatchRequest carries scan events to apply in order.
type ScanBatchRequest struct {
	Events []ScanRequest `json:"events"`
}

// ScanResponse reports what one scan did to one shipment.
type ScanResponse struct {
	ScanEventID    string `json:"scanEventId"`
	TrackingNumber string `json:"trackingNumber"`
	ScanType       string `json:"scanType,omitempty"`
	PriorStatus    string `json:"priorStatus"`
	NewStatus      string `json:"newStatus"`
	Informational  bool   `json:"informational"`
}

// ScanBatchResponse reports per-shipment outcomes in application order.
type ScanBatchResponse struct {
	Outcomes []ScanOutcomeResponse `json:"outcomes"`
}

// ScanOutcomeResponse is one entry of a batch response. Failed events carry
// the error message; the rest of the batch is unaffected.
type ScanOutcomeResponse struct {
	EventIndex     int           `json:"eventIndex"`
	ScanEventID    string        `json:"scanEventId"`
	TrackingNumber string        `json:"trackingNumber,omitempty"`
	Result         *ScanResponse `json:"result,omitempty"`
	Error          string        `json:"error,omitempty"`
}

func toScanResponse(result commands.ScanResult) ScanResponse {
	response := ScanResponse{
		ScanEventID:    result.ScanEventID,
		TrackingNumber: result.TrackingNumber,
		PriorStatus:    result.PriorStatus.String(),
		NewStatus:      result.NewStatus.String(),
		Informational:  result.Informational,
	}
	if result.ScanType != 0 {
		response.ScanType = result.ScanType.String()
	}
	return response
}

// PlaceHoldRequest opens a customs case on a shipment.
type PlaceHoldRequest struct {
	ShipmentID string `json:"shipmentId"`
	HoldReason string `json:"holdReason"`
	Performer  string `json:"performer,omitempty"`
}

// PlaceHoldResponse acknowledges the hold with the new case ID.
type PlaceHoldResponse struct {
	CaseID string `json:"caseId"`
}

// DocumentsRequest names documents to request from or submit for a case.
type DocumentsRequest struct {
	Documents []string `json:"documents"`
}

// InspectionRequest records an inspection outcome.
type InspectionRequest struct {
	Passed bool   `json:"passed"`
	Notes  string `json:"notes,omitempty"`
}

// DutyAssessmentRequest records assessed duty and tax.
type DutyAssessmentRequest struct {
	Duty string `json:"duty"`
	Tax  string `json:"tax"`
}

// DutyPaymentRequest records a payment against the assessed total.
type DutyPaymentRequest struct {
	Amount string `json:"amount"`
}

// ClearRequest closes a case as cleared.
type ClearRequest struct {
	ClearanceNumber string `json:"clearanceNumber"`
	Performer       string `json:"performer,omitempty"`
}

// RejectRequest closes a case as rejected.
type RejectRequest struct {
	Reason    string `json:"reason"`
	Performer string `json:"performer,omitempty"`
}

// CancelRequest cancels a pre-pickup shipment.
type CancelRequest struct {
	Performer string `json:"performer,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// ReopenRequest reopens a terminal shipment.
type ReopenRequest struct {
	Target    string `json:"target"`
	Elevated  bool   `json:"elevated"`
	Performer string `json:"performer,omitempty"`
	Reason    string `json:"reason"`
}

// TransitionRequest applies a manual status change.
type TransitionRequest struct {
	Target    string `json:"target"`
	Override  bool   `json:"override"`
	Performer string `json:"performer,omitempty"`
	Note      string `json:"note,omitempty"`
}

// TrackingResponse is the public tracking view.
type TrackingResponse struct {
	TrackingNumber string                  `json:"trackingNumber"`
	Status         string                  `json:"status"`
	History        []TrackingEntryResponse `json:"history"`
}

// TrackingEntryResponse is one transition in the tracking trail.
type TrackingEntryResponse struct {
	PriorStatus string    `json:"priorStatus"`
	NewStatus   string    `json:"newStatus"`
	Trigger     string    `json:"trigger"`
	Note        string    `json:"note,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func toTrackingResponse(view queries.GetShipmentTrackingQueryResponse) TrackingResponse {
	response := TrackingResponse{
		TrackingNumber: view.TrackingNumber,
		Status:         view.Status.String(),
		History:        make([]TrackingEntryResponse, 0, len(view.History)),
	}
	for _, entry := range view.History {
		response.History = append(response.History, TrackingEntryResponse{
			PriorStatus: entry.PriorStatus.String(),
			NewStatus:   entry.NewStatus.String(),
			Trigger:     entry.Trigger.String(),
			Note:        entry.Note,
			OccurredAt:  entry.OccurredAt,
		})
	}
	return response
}

// PendingClearanceResponse is one destination branch's open case queue.
type PendingClearanceResponse struct {
	DestinationBranchID string                  `json:"destinationBranchId"`
	Cases               []PendingCaseResponse   `json:"cases"`
}

// PendingCaseResponse is one open case in the queue.
type PendingCaseResponse struct {
	CaseID         string    `json:"caseId"`
	ShipmentID     string    `json:"shipmentId"`
	TrackingNumber string    `json:"trackingNumber"`
	SubStatus      string    `json:"subStatus"`
	HoldReason     string    `json:"holdReason"`
	OpenedAt       time.Time `json:"openedAt"`
}

// AwaitingDutyResponse is one case blocked on payment.
type AwaitingDutyResponse struct {
	CaseID         string `json:"caseId"`
	ShipmentID     string `json:"shipmentId"`
	TrackingNumber string `json:"trackingNumber"`
	TotalDue       string `json:"totalDue"`
	DutyPaid       string `json:"dutyPaid"`
	Outstanding    string `json:"outstanding"`
}

// ClearanceSummaryResponse is the customs dashboard payload.
type ClearanceSummaryResponse struct {
	CountsBySubStatus map[string]int `json:"countsBySubStatus"`
	TotalDutyPending  string         `json:"totalDutyPending"`
}

// MetricsBucketResponse is one period's aggregates.
type MetricsBucketResponse struct {
	PeriodStart         time.Time `json:"periodStart"`
	ShipmentCount       int       `json:"shipmentCount"`
	DeliveredCount      int       `json:"deliveredCount"`
	TotalRevenue        string    `json:"totalRevenue"`
	TotalCost           string    `json:"totalCost"`
	Margin              string    `json:"margin"`
	AvgDeliverySeconds  *float64  `json:"avgDeliverySeconds,omitempty"`
	OnTimeRatePercent   *string   `json:"onTimeRatePercent,omitempty"`
}

// MetricsResponse is the branch metrics payload.
type MetricsResponse struct {
	BranchID    string                  `json:"branchId"`
	From        time.Time               `json:"from"`
	To          time.Time               `json:"to"`
	Granularity string                  `json:"granularity"`
	Buckets     []MetricsBucketResponse `json:"buckets"`
}

func toMetricsResponse(bundle services.MetricsBundle) MetricsResponse {
	response := MetricsResponse{
		BranchID:    bundle.BranchID.String(),
		From:        bundle.From,
		To:          bundle.To,
		Granularity: bundle.Granularity.String(),
		Buckets:     make([]MetricsBucketResponse, 0, len(bundle.Buckets)),
	}

	for _, bucket := range bundle.Buckets {
		item := MetricsBucketResponse{
			PeriodStart:    bucket.PeriodStart,
			ShipmentCount:  bucket.ShipmentCount,
			DeliveredCount: bucket.DeliveredCount,
			TotalRevenue:   bucket.TotalRevenue.String(),
			TotalCost:      bucket.TotalCost.String(),
			Margin:         bucket.Margin.String(),
		}
		if bucket.AvgDeliveryDuration != nil {
			seconds := bucket.AvgDeliveryDuration.Seconds()
			item.AvgDeliverySeconds = &seconds
		}
		if bucket.OnTimeRatePercent != nil {
			rate := bucket.OnTimeRatePercent.String()
			item.OnTimeRatePercent = &rate
		}
		response.Buckets = append(response.Buckets, item)
	}

	return response
}
