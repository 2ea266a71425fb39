package shipment

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrReopenRequiresAuthorization is returned when a terminal shipment is
	// reopened without the elevated-authorization override.
	ErrReopenRequiresAuthorization = errors.New("reopening a terminal shipment requires override authorization")
)

// Shipment is the central aggregate. It owns the status lifecycle and the
// append-only transition history, and enforces that every status change is a
// legal edge of the transition table.
//
// Invariants:
//   - status only changes through TransitionTo; never set directly after creation
//   - every successful transition appends exactly one history entry
//   - terminal statuses reject all transitions except an authorized reopen
//   - the tracking number is immutable once assigned
//
// The status field and the history slice mutate together in TransitionTo;
// the persistence layer writes both in one transaction so the audit trail can
// never diverge from the current status.
type Shipment struct {
	id                  kernel.UUID
	trackingNumber      TrackingNumber
	waybillReference    string
	originBranchID      kernel.UUID
	destinationBranchID kernel.UUID
	customerID          kernel.UUID
	courierID           *kernel.UUID
	bagID               *kernel.UUID
	weightKg            decimal.Decimal
	status              Status
	requiresCustoms     bool
	pricing             *pricing.Breakdown
	history             []HistoryEntry
	version             int64
	isConstructed       bool
}

// NewShipment creates a shipment at booking time with status Created and a
// single creation history entry.
//
// Validation: all identifiers must be constructed UUIDs, the tracking number
// must be valid, origin and destination branches must differ, and the weight
// must be positive.
func NewShipment(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	originBranchID, destinationBranchID, customerID kernel.UUID,
	weightKg decimal.Decimal,
) (*Shipment, error) {
	s := &Shipment{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setBranches(originBranchID, destinationBranchID),
		s.setCustomer(customerID),
		s.setWeight(weightKg),
	); err != nil {
		return nil, err
	}

	creation := TransitionContext{Trigger: TriggerManual, Note: "shipment booked"}
	s.history = append(s.history, HistoryEntry{
		priorStatus: StatusUnknown,
		newStatus:   Created,
		trigger:     TriggerManual,
		note:        creation.Note,
		occurredAt:  creation.occurredAtOrNow(),
	})

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence. The status and
// history are taken as recorded; no creation entry is appended.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	waybillReference string,
	originBranchID, destinationBranchID, customerID kernel.UUID,
	courierID, bagID *kernel.UUID,
	weightKg decimal.Decimal,
	status Status,
	requiresCustoms bool,
	breakdown *pricing.Breakdown,
	history []HistoryEntry,
	version int64,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setBranches(originBranchID, destinationBranchID),
		s.setCustomer(customerID),
		s.setWeight(weightKg),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	s.waybillReference = waybillReference
	s.courierID = courierID
	s.bagID = bagID
	s.status = status
	s.requiresCustoms = requiresCustoms
	s.pricing = breakdown
	s.history = history
	s.version = version

	return s, nil
}

// Validate ensures the Shipment was constructed via NewShipment/RestoreShipment.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// TrackingNumber returns the immutable public identifier.
func (s *Shipment) TrackingNumber() TrackingNumber { return s.trackingNumber }

// WaybillReference returns the optional carrier waybill reference.
func (s *Shipment) WaybillReference() string { return s.waybillReference }

// OriginBranchID returns the origin branch.
func (s *Shipment) OriginBranchID() kernel.UUID { return s.originBranchID }

// DestinationBranchID returns the destination branch.
func (s *Shipment) DestinationBranchID() kernel.UUID { return s.destinationBranchID }

// CustomerID returns the owning customer.
func (s *Shipment) CustomerID() kernel.UUID { return s.customerID }

// CourierID returns the assigned courier, or nil.
func (s *Shipment) CourierID() *kernel.UUID { return s.courierID }

// BagID returns the containing bag/manifest, or nil.
func (s *Shipment) BagID() *kernel.UUID { return s.bagID }

// WeightKg returns the declared weight.
func (s *Shipment) WeightKg() decimal.Decimal { return s.weightKg }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// RequiresCustoms reports whether the shipment is flagged for customs clearance.
func (s *Shipment) RequiresCustoms() bool { return s.requiresCustoms }

// Pricing returns the attached pricing snapshot, or nil before booking completes.
func (s *Shipment) Pricing() *pricing.Breakdown { return s.pricing }

// History returns a copy of the transition history in append order.
func (s *Shipment) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Version returns the optimistic-concurrency version. It increments on every
// recorded entry; the repository uses it as an update precondition so
// concurrent writers to the same shipment cannot interleave.
func (s *Shipment) Version() int64 { return s.version }

// TransitionTo applies a status change with full legality checking.
//
// Behavior:
//   - target equal to the current status: idempotent no-op that still appends
//     one informational history entry, so duplicate-scan replay leaves an
//     audit mark without corrupting state;
//   - terminal current status: rejected with *TerminalStateError unless the
//     context carries Override together with TriggerReopen;
//   - edge not in the legal-transition table: rejected with
//     *IllegalTransitionError unless the context carries Override, in which
//     case the transition proceeds and the entry is flagged as overridden;
//   - success: the status changes and exactly one history entry is appended.
//
// On any rejection the shipment is left completely unchanged.
func (s *Shipment) TransitionTo(target Status, tctx TransitionContext) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if err := tctx.Trigger.Validate(); err != nil {
		return err
	}

	if target == s.status {
		s.appendEntry(s.status, s.status, tctx)
		return nil
	}

	if s.status.IsTerminal() {
		if !tctx.Override || tctx.Trigger != TriggerReopen {
			return NewTerminalStateError(s.status, target)
		}
		s.applyStatus(target, tctx)
		return nil
	}

	if !s.status.CanTransitionTo(target) {
		if !tctx.Override {
			return NewIllegalTransitionError(s.status, target)
		}
	}

	s.applyStatus(target, tctx)
	return nil
}

// RecordInformationalEvent appends a history entry without a status change,
// used for scans that carry no status mapping (e.g. delivery attempts,
// location pings). Never fails on legality: the status does not move.
func (s *Shipment) RecordInformationalEvent(tctx TransitionContext) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := tctx.Trigger.Validate(); err != nil {
		return err
	}
	s.appendEntry(s.status, s.status, tctx)
	return nil
}

// LastHistoryEntry returns the most recent history entry.
// A constructed shipment always has at least its creation entry once it has
// been through NewShipment; restored shipments may have none.
func (s *Shipment) LastHistoryEntry() (HistoryEntry, bool) {
	if len(s.history) == 0 {
		return HistoryEntry{}, false
	}
	return s.history[len(s.history)-1], true
}

// AssignCourier assigns a courier for the delivery leg.
func (s *Shipment) AssignCourier(courierID kernel.UUID) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	if s.status.IsTerminal() {
		return NewTerminalStateError(s.status, s.status)
	}
	s.courierID = &courierID
	return nil
}

// AssignToBag places the shipment into a bag/manifest container.
// Bag-level scans fan out to every shipment assigned to the bag.
func (s *Shipment) AssignToBag(bagID kernel.UUID) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := bagID.Validate(); err != nil {
		return err
	}
	if s.status.IsTerminal() {
		return NewTerminalStateError(s.status, s.status)
	}
	s.bagID = &bagID
	return nil
}

// RemoveFromBag takes the shipment out of its container.
func (s *Shipment) RemoveFromBag() {
	s.bagID = nil
}

// SetWaybillReference records the optional carrier waybill reference.
func (s *Shipment) SetWaybillReference(ref string) {
	s.waybillReference = ref
}

// MarkRequiresCustoms flags the shipment for customs clearance.
func (s *Shipment) MarkRequiresCustoms() {
	s.requiresCustoms = true
}

// AttachPricing stores the computed pricing snapshot. The breakdown is an
// explicit versioned sub-record, replacing any prior snapshot wholesale;
// there is no field-level merging.
func (s *Shipment) AttachPricing(breakdown pricing.Breakdown) {
	s.pricing = &breakdown
	s.version++
}

func (s *Shipment) applyStatus(target Status, tctx TransitionContext) {
	s.appendEntry(s.status, target, tctx)
	s.status = target
}

func (s *Shipment) appendEntry(prior, next Status, tctx TransitionContext) {
	s.history = append(s.history, HistoryEntry{
		priorStatus: prior,
		newStatus:   next,
		trigger:     tctx.Trigger,
		scanEventID: tctx.ScanEventID,
		performer:   tctx.Performer,
		note:        tctx.Note,
		override:    tctx.Override,
		occurredAt:  tctx.occurredAtOrNow(),
	})
	s.version++
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingNumber(tn TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	s.trackingNumber = tn
	return nil
}

func (s *Shipment) setBranches(origin, destination kernel.UUID) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	if err := destination.Validate(); err != nil {
		return err
	}
	if origin.IsEqual(destination) {
		return errs.NewValueIsInvalidErrorWithCause("destination branch",
			fmt.Errorf("origin and destination branches must differ"))
	}
	s.originBranchID = origin
	s.destinationBranchID = destination
	return nil
}

func (s *Shipment) setCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	s.customerID = customerID
	return nil
}

func (s *Shipment) setWeight(weightKg decimal.Decimal) error {
	if !weightKg.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%s kg is not greater than 0", weightKg))
	}
	s.weightKg = weightKg
	return nil
}
