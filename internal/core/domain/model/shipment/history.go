package shipment

import (
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Trigger identifies what caused a status transition. Reopen gets its own
// trigger so audits can distinguish a terminal-state reopen from normal flow.
type Trigger int

const (
	// TriggerUnknown represents an invalid or undefined trigger.
	TriggerUnknown Trigger = iota

	// TriggerScan marks transitions driven by an inbound scan event.
	TriggerScan

	// TriggerManual marks transitions performed by an operator.
	TriggerManual

	// TriggerCustoms marks transitions driven by the customs sub-workflow.
	TriggerCustoms

	// TriggerReopen marks an authorized reopen of a terminal shipment.
	TriggerReopen
)

func getTriggerStrings() map[Trigger]string {
	return map[Trigger]string{
		TriggerUnknown: "Unknown",
		TriggerScan:    "Scan",
		TriggerManual:  "Manual",
		TriggerCustoms: "Customs",
		TriggerReopen:  "Reopen",
	}
}

// Validate checks if the Trigger value is a member of the enumeration.
func (t Trigger) Validate() error {
	if t == TriggerUnknown {
		return errs.NewValueIsInvalidErrorWithCause("trigger is invalid",
			fmt.Errorf("%d is not a valid trigger", t))
	}
	if _, ok := getTriggerStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("trigger is invalid",
			fmt.Errorf("%d is not a valid trigger", t))
	}
	return nil
}

// String returns the human-readable name of the trigger.
func (t Trigger) String() string {
	if str, ok := getTriggerStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TransitionContext carries the provenance of a status transition:
// who or what requested it, and whether the request carries override
// authorization for edges outside the legal-transition table.
type TransitionContext struct {
	// Trigger identifies the source of the transition request.
	Trigger Trigger

	// ScanEventID references the scan event for TriggerScan transitions.
	ScanEventID *kernel.UUID

	// Performer is the operator or device identity requesting the transition.
	Performer string

	// Note is free-form context recorded on the history entry.
	Note string

	// Override authorizes edges outside the legal-transition table, and
	// combined with TriggerReopen, movement out of a terminal status.
	// Overridden transitions are still recorded, flagged as such.
	Override bool

	// OccurredAt is the transition timestamp. Zero means "now".
	OccurredAt time.Time
}

func (c TransitionContext) occurredAtOrNow() time.Time {
	if c.OccurredAt.IsZero() {
		return time.Now().UTC()
	}
	return c.OccurredAt
}

// HistoryEntry is an immutable, append-only record of one status transition
// (or informational event) on a shipment. Entries are written only by the
// shipment aggregate and together form the audit trail.
type HistoryEntry struct {
	priorStatus Status
	newStatus   Status
	trigger     Trigger
	scanEventID *kernel.UUID
	performer   string
	note        string
	override    bool
	occurredAt  time.Time
}

// RestoreHistoryEntry reconstructs a history entry from persistence.
// It performs no legality checks: the entry already happened.
func RestoreHistoryEntry(
	priorStatus, newStatus Status,
	trigger Trigger,
	scanEventID *kernel.UUID,
	performer, note string,
	override bool,
	occurredAt time.Time,
) HistoryEntry {
	return HistoryEntry{
		priorStatus: priorStatus,
		newStatus:   newStatus,
		trigger:     trigger,
		scanEventID: scanEventID,
		performer:   performer,
		note:        note,
		override:    override,
		occurredAt:  occurredAt,
	}
}

// PriorStatus returns the status before the transition.
func (h HistoryEntry) PriorStatus() Status { return h.priorStatus }

// NewStatus returns the status after the transition. For informational
// entries this equals PriorStatus.
func (h HistoryEntry) NewStatus() Status { return h.newStatus }

// Trigger returns what caused the transition.
func (h HistoryEntry) Trigger() Trigger { return h.trigger }

// ScanEventID returns the originating scan event, if any.
func (h HistoryEntry) ScanEventID() *kernel.UUID { return h.scanEventID }

// Performer returns the operator or device identity.
func (h HistoryEntry) Performer() string { return h.performer }

// Note returns the free-form context recorded with the entry.
func (h HistoryEntry) Note() string { return h.note }

// Override reports whether the transition used override authorization.
func (h HistoryEntry) Override() bool { return h.override }

// OccurredAt returns when the transition happened.
func (h HistoryEntry) OccurredAt() time.Time { return h.occurredAt }

// IsInformational reports whether the entry recorded an event without a
// status change (duplicate scan replay, unmapped scan type).
func (h HistoryEntry) IsInformational() bool {
	return h.priorStatus == h.newStatus
}
