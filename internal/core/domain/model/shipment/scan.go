package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// ScanType is the closed vocabulary of scan events captured by handheld
// devices, hub stations and manual entry. A scan type either maps to exactly
// one resulting shipment status or is informational (no status effect).
//
// Strict enum and fuzzy input are kept separate on purpose: ScanType values
// are always valid members of this set, while NormalizeScanType owns the
// translation from raw device strings, including the legacy alias table.
type ScanType int

const (
	// ScanUnknown represents an invalid or undefined scan type.
	ScanUnknown ScanType = iota

	// ScanPickupScheduled records that a pickup slot was arranged.
	ScanPickupScheduled

	// ScanPickupCompleted records the courier collecting the shipment.
	ScanPickupCompleted

	// ScanOriginArrival records arrival at the origin hub.
	ScanOriginArrival

	// ScanBagged records sorting into a bag/manifest container.
	ScanBagged

	// ScanLinehaulDeparture records the linehaul leaving the origin hub.
	ScanLinehaulDeparture

	// ScanLinehaulArrival records the linehaul reaching the destination region.
	ScanLinehaulArrival

	// ScanDestinationArrival records arrival at the destination hub.
	ScanDestinationArrival

	// ScanOutForDelivery records the start of a delivery run.
	ScanOutForDelivery

	// ScanDeliveryConfirmed records successful delivery.
	ScanDeliveryConfirmed

	// ScanDeliveryAttempted records a failed delivery attempt. Informational:
	// the shipment stays OutForDelivery until redelivery or return.
	ScanDeliveryAttempted

	// ScanCustomsHold records the shipment entering customs control.
	ScanCustomsHold

	// ScanCustomsRelease records customs releasing the shipment.
	ScanCustomsRelease

	// ScanReturnInitiated records the start of a return to sender.
	ScanReturnInitiated

	// ScanReturnInTransit records the return moving back to the origin.
	ScanReturnInTransit

	// ScanReturnCompleted records the return reaching the sender.
	ScanReturnCompleted

	// ScanException records an operational problem.
	ScanException

	// ScanLocationPing records a GPS/location checkpoint. Informational.
	ScanLocationPing
)

func getScanTypeStrings() map[ScanType]string {
	return map[ScanType]string{
		ScanUnknown:            "Unknown",
		ScanPickupScheduled:    "PICKUP_SCHEDULED",
		ScanPickupCompleted:    "PICKUP_COMPLETED",
		ScanOriginArrival:      "ORIGIN_ARRIVAL",
		ScanBagged:             "BAGGED",
		ScanLinehaulDeparture:  "LINEHAUL_DEPARTED",
		ScanLinehaulArrival:    "LINEHAUL_ARRIVED",
		ScanDestinationArrival: "DESTINATION_ARRIVAL",
		ScanOutForDelivery:     "OUT_FOR_DELIVERY",
		ScanDeliveryConfirmed:  "DELIVERY_CONFIRMED",
		ScanDeliveryAttempted:  "DELIVERY_ATTEMPTED",
		ScanCustomsHold:        "CUSTOMS_HOLD",
		ScanCustomsRelease:     "CUSTOMS_RELEASE",
		ScanReturnInitiated:    "RETURN_INITIATED",
		ScanReturnInTransit:    "RETURN_IN_TRANSIT",
		ScanReturnCompleted:    "RETURN_COMPLETED",
		ScanException:          "EXCEPTION",
		ScanLocationPing:       "LOCATION_PING",
	}
}

// legacyScanAliases is the fixed table translating scan type names emitted by
// older devices and upstream systems to the canonical vocabulary. The table
// is closed: unknown strings are rejected, never guessed.
func legacyScanAliases() map[string]ScanType {
	return map[string]ScanType{
		"HANDED_OVER":      ScanPickupCompleted,
		"ARRIVE":           ScanOriginArrival,
		"SORT":             ScanBagged,
		"LOAD":             ScanBagged,
		"DEPART":           ScanLinehaulDeparture,
		"IN_TRANSIT":       ScanLinehaulDeparture,
		"ARRIVE_DEST":      ScanDestinationArrival,
		"DELIVERED":        ScanDeliveryConfirmed,
		"RETURN_TO_SENDER": ScanReturnInitiated,
		"DAMAGED":          ScanException,
		"CUSTOMS_CLEARED":  ScanCustomsRelease,
	}
}

// AllScanTypes returns every valid ScanType value.
func AllScanTypes() []ScanType {
	return []ScanType{
		ScanPickupScheduled, ScanPickupCompleted, ScanOriginArrival, ScanBagged,
		ScanLinehaulDeparture, ScanLinehaulArrival, ScanDestinationArrival,
		ScanOutForDelivery, ScanDeliveryConfirmed, ScanDeliveryAttempted,
		ScanCustomsHold, ScanCustomsRelease, ScanReturnInitiated,
		ScanReturnInTransit, ScanReturnCompleted, ScanException, ScanLocationPing,
	}
}

// Validate checks if the ScanType value is a member of the closed enumeration.
func (t ScanType) Validate() error {
	if t == ScanUnknown {
		return errs.NewValueIsInvalidErrorWithCause("scan type is invalid",
			fmt.Errorf("%d is not a valid scan type", t))
	}
	if _, ok := getScanTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("scan type is invalid",
			fmt.Errorf("%d is not a valid scan type", t))
	}
	return nil
}

// String returns the canonical wire name of the scan type.
// Implements fmt.Stringer.
func (t ScanType) String() string {
	if str, ok := getScanTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// ResultingStatus returns the shipment status a scan of this type drives the
// shipment to. The mapping is deterministic and total over the closed ScanType
// set: informational scans (DELIVERY_ATTEMPTED, LOCATION_PING) return
// (StatusUnknown, false) and must not trigger a transition.
func (t ScanType) ResultingStatus() (Status, bool) {
	switch t {
	case ScanPickupScheduled:
		return PickupScheduled, true
	case ScanPickupCompleted:
		return PickedUp, true
	case ScanOriginArrival:
		return AtOriginHub, true
	case ScanBagged:
		return Bagged, true
	case ScanLinehaulDeparture:
		return LinehaulDeparted, true
	case ScanLinehaulArrival:
		return LinehaulArrived, true
	case ScanDestinationArrival:
		return AtDestinationHub, true
	case ScanOutForDelivery:
		return OutForDelivery, true
	case ScanDeliveryConfirmed:
		return Delivered, true
	case ScanCustomsHold:
		return CustomsHold, true
	case ScanCustomsRelease:
		return CustomsCleared, true
	case ScanReturnInitiated:
		return ReturnInitiated, true
	case ScanReturnInTransit:
		return ReturnInTransit, true
	case ScanReturnCompleted:
		return Returned, true
	case ScanException:
		return Exception, true
	default:
		return StatusUnknown, false
	}
}

// NormalizeScanType resolves a raw scan type string to a ScanType.
// It accepts canonical enum names and the fixed legacy alias table
// (e.g. "ARRIVE" -> ScanOriginArrival, "SORT"/"LOAD" -> ScanBagged).
// Unknown strings return (ScanUnknown, false); callers must reject them
// rather than guess.
func NormalizeScanType(raw string) (ScanType, bool) {
	for t, name := range getScanTypeStrings() {
		if t != ScanUnknown && name == raw {
			return t, true
		}
	}
	if t, ok := legacyScanAliases()[raw]; ok {
		return t, true
	}
	return ScanUnknown, false
}
