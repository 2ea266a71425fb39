// Package customs models the clearance sub-workflow for shipments under
// customs control: document requests, physical inspection, duty assessment
// and payment, and final clearance or rejection.
//
// A Case is a nested state machine scoped to one shipment. It exists only
// while the parent shipment is in a customs-adjacent lifecycle status, and is
// closed (never deleted) when cleared or rejected. Steps that also move the
// parent shipment (placing on hold, clearing) are coordinated by the
// application layer inside a single unit of work so both records change
// together or not at all.
package customs
