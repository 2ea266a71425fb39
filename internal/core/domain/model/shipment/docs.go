// Package shipment contains the shipment aggregate and its lifecycle state
// machine.
//
// The package models three tightly related concerns:
//   - Status: the closed enumeration of lifecycle states with an explicit
//     legal-transition table
//   - ScanType: the closed vocabulary of scan events, their deterministic
//     mapping to resulting statuses, and legacy-alias normalization
//   - Shipment: the aggregate root that applies transitions and owns the
//     append-only transition history (the audit trail)
//
// Transitions happen only through Shipment.TransitionTo, which validates the
// edge, appends exactly one history entry, and bumps the aggregate version.
// The persistence layer relies on the version for its optimistic update
// precondition, serializing concurrent writers per shipment.
package shipment
