package shipment

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with an explicit legal-transition table to
// ensure shipments follow the operational workflow.
//
// Main line:
//
//	Created/Booked ──> PickupScheduled ──> PickedUp ──> AtOriginHub ──> Bagged
//	    ──> LinehaulDeparted ──> LinehaulArrived ──> AtDestinationHub
//	    ──> OutForDelivery ──> Delivered
//
// Side branches:
//   - any non-terminal ──> CustomsHold ──> CustomsCleared ──> AtDestinationHub/OutForDelivery
//   - any non-terminal ──> Exception ──> ReturnInitiated ──> ReturnInTransit ──> Returned
//   - Exception ──> Damaged (operator determination)
//   - pre-pickup statuses ──> Cancelled
//
// Delivered, Returned, Cancelled and Damaged are terminal: no further
// transitions are permitted without an explicit reopen override.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Created is the initial status assigned at booking.
	Created

	// Booked indicates the booking was confirmed and priced.
	Booked

	// PickupScheduled indicates a pickup slot was arranged with the customer.
	PickupScheduled

	// PickedUp indicates the courier collected the shipment.
	PickedUp

	// AtOriginHub indicates arrival at the origin branch hub.
	AtOriginHub

	// Bagged indicates the shipment was sorted into a bag/manifest container.
	Bagged

	// LinehaulDeparted indicates the linehaul carrying the bag left the origin hub.
	LinehaulDeparted

	// LinehaulArrived indicates the linehaul reached the destination region.
	LinehaulArrived

	// AtDestinationHub indicates arrival at the destination branch hub.
	AtDestinationHub

	// CustomsHold indicates the shipment is held for customs clearance.
	// The customs case sub-workflow governs progress while in this status.
	CustomsHold

	// CustomsCleared indicates customs released the shipment back to the main line.
	CustomsCleared

	// OutForDelivery indicates the shipment is on a delivery run.
	OutForDelivery

	// Delivered indicates successful delivery. Terminal.
	Delivered

	// Exception indicates an operational problem needing operator attention.
	Exception

	// ReturnInitiated indicates a return to sender was started.
	ReturnInitiated

	// ReturnInTransit indicates the return is moving back to the origin.
	ReturnInTransit

	// Returned indicates the return completed. Terminal.
	Returned

	// Damaged indicates the shipment was written off as damaged. Terminal.
	Damaged

	// Cancelled indicates the booking was cancelled before pickup. Terminal.
	Cancelled
)

// legalEdges is the explicit transition table for the main line and side
// branches. Edges available from any non-terminal status (CustomsHold,
// Exception) and the pre-pickup-only Cancelled edge are handled in
// CanTransitionTo, keeping the table free of repetition.
func legalEdges() map[Status][]Status {
	return map[Status][]Status{
		Created:          {Booked, PickupScheduled},
		Booked:           {PickupScheduled},
		PickupScheduled:  {PickedUp},
		PickedUp:         {AtOriginHub},
		AtOriginHub:      {Bagged},
		Bagged:           {LinehaulDeparted},
		LinehaulDeparted: {LinehaulArrived},
		LinehaulArrived:  {AtDestinationHub},
		AtDestinationHub: {OutForDelivery},
		OutForDelivery:   {Delivered},
		CustomsHold:      {CustomsCleared},
		CustomsCleared:   {AtDestinationHub, OutForDelivery},
		Exception:        {ReturnInitiated, Damaged},
		ReturnInitiated:  {ReturnInTransit},
		ReturnInTransit:  {Returned},
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		Created:          "Created",
		Booked:           "Booked",
		PickupScheduled:  "PickupScheduled",
		PickedUp:         "PickedUp",
		AtOriginHub:      "AtOriginHub",
		Bagged:           "Bagged",
		LinehaulDeparted: "LinehaulDeparted",
		LinehaulArrived:  "LinehaulArrived",
		AtDestinationHub: "AtDestinationHub",
		CustomsHold:      "CustomsHold",
		CustomsCleared:   "CustomsCleared",
		OutForDelivery:   "OutForDelivery",
		Delivered:        "Delivered",
		Exception:        "Exception",
		ReturnInitiated:  "ReturnInitiated",
		ReturnInTransit:  "ReturnInTransit",
		Returned:         "Returned",
		Damaged:          "Damaged",
		Cancelled:        "Cancelled",
	}
}

// AllStatuses returns every valid Status value.
// Useful for table-driven validation and exhaustiveness checks.
func AllStatuses() []Status {
	return []Status{
		Created, Booked, PickupScheduled, PickedUp, AtOriginHub, Bagged,
		LinehaulDeparted, LinehaulArrived, AtDestinationHub, CustomsHold,
		CustomsCleared, OutForDelivery, Delivered, Exception, ReturnInitiated,
		ReturnInTransit, Returned, Damaged, Cancelled,
	}
}

// StatusFromName resolves a status by its canonical name.
// Returns false for unknown names; there is no alias handling here, that
// belongs to the scan type catalog.
func StatusFromName(name string) (Status, bool) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == name {
			return status, true
		}
	}
	return StatusUnknown, false
}

// Validate checks if the Status value is a member of the closed enumeration.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further lifecycle movement.
func (s Status) IsTerminal() bool {
	switch s {
	case Delivered, Returned, Cancelled, Damaged:
		return true
	default:
		return false
	}
}

// IsPrePickup reports whether the shipment has not yet been collected.
// Only pre-pickup shipments may be cancelled.
func (s Status) IsPrePickup() bool {
	switch s {
	case Created, Booked, PickupScheduled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the edge s -> target is in the
// legal-transition table. A same-status "transition" is not a legal edge;
// the aggregate treats it as an idempotent no-op instead.
//
// Three rules are encoded directly rather than enumerated per status:
//   - CustomsHold and Exception are reachable from any non-terminal status,
//   - Cancelled is reachable only from pre-pickup statuses,
//   - terminal statuses have no outgoing edges.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if s.IsTerminal() || s == target {
		return false
	}

	switch target {
	case CustomsHold, Exception:
		return true
	case Cancelled:
		return s.IsPrePickup()
	}

	for _, next := range legalEdges()[s] {
		if next == target {
			return true
		}
	}
	return false
}

var (
	// ErrIllegalTransition is the sentinel error for status changes that are
	// not in the legal-transition table.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrTerminalState is the sentinel error for attempts to move a shipment
	// out of a terminal status without reopen authorization.
	ErrTerminalState = errors.New("shipment is in a terminal status")
)

// IllegalTransitionError reports the specific illegal edge that was attempted,
// so operators can see exactly which movement was rejected.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// TerminalStateError reports a rejected mutation of a terminal shipment.
type TerminalStateError struct {
	Current Status
	To      Status
}

func NewTerminalStateError(current, to Status) *TerminalStateError {
	return &TerminalStateError{Current: current, To: to}
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("%s: %s rejects transition to %s", ErrTerminalState, e.Current, e.To)
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}
