package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Lifecycle:
//
//	PENDING ──> CONFIRMED ──> PREPARING ──> READY ──> OUT_FOR_DELIVERY ──> COMPLETED
//	   │
//	   └──────────────────────────> CANCELLED
//
// The diagram shows the usual flow only. Transitions are not restricted: any valid
// status may follow any other, including moving backwards. COMPLETED and CANCELLED
// are reported as terminal by IsTerminal so callers can decide what to display, but
// the order itself does not refuse further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Confirmed means the restaurant accepted the order.
	Confirmed

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means the order is packed and waiting for pickup.
	Ready

	// OutForDelivery means a driver has the order.
	OutForDelivery

	// Completed means the customer received the order.
	Completed

	// Cancelled means the order will not be fulfilled.
	Cancelled
)

// getStatusStrings returns the wire codes of all valid statuses.
func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		Ready:          "READY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Completed:      "COMPLETED",
		Cancelled:      "CANCELLED",
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, OutForDelivery, Completed, Cancelled}
}

// ParseStatus converts a wire code such as "OUT_FOR_DELIVERY" into a Status.
// Matching is exact (case-sensitive).
//
// Returns:
//   - the matching Status on success
//   - (Unknown, ValueIsInvalidError) for any other input
func ParseStatus(code string) (Status, error) {
	for s, str := range getStatusStrings() {
		if str == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

// Validate checks if the Status value is one of the enumerated statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire code of the status, or "UNKNOWN" for invalid values.
// It is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status ends the normal lifecycle
// (COMPLETED or CANCELLED). It is informational and does not block transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}
