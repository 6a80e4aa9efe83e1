package order

import (
	"fmt"

	"harvesthub/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	          accept              cancel (buyer or farmer)
//	Pending ─────────> Accepted ─────────────────────────> Cancelled
//	   │  \                                                   ^
//	   │   └──────────────── cancel (buyer) ──────────────────┘
//	   │ reject
//	   v
//	Rejected
//
// Rejected and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status; the farmer has not decided yet.
	Pending

	// Accepted means the farmer confirmed the order.
	Accepted

	// Rejected means the farmer declined the order. Terminal.
	Rejected

	// Cancelled means the buyer or farmer withdrew the order. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Rejected:  "Rejected",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Rejected:  "Rejected",
		Cancelled: "Cancelled",
	}
}

// ParseStatus converts a stored status name back into a Status.
//
// Returns:
//   - the matching Status for "Pending", "Accepted", "Rejected" or "Cancelled"
//   - (Unknown, error) for any other input, including "Unknown"
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Accepted, Rejected, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name used both for display and persistence.
// Invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Cancelled
}

// IsActive reports whether the order still blocks deletion of its crop.
// Every status except Cancelled counts as active, Rejected included.
func (s Status) IsActive() bool {
	return s != Cancelled
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
//
// Returns:
//   - (Accepted, nil) on valid transition
//   - (0, InvalidStateError) from any other status
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return Accepted, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//
// Returns:
//   - (Rejected, nil) on valid transition
//   - (0, InvalidStateError) from any other status
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}

	return Rejected, nil
}

// CancelByBuyer transitions the status to Cancelled on the buyer's request.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Accepted -> Cancelled
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, InvalidStateError) saying the order cannot be cancelled otherwise
func (s Status) CancelByBuyer() (Status, error) {
	if s != Pending && s != Accepted {
		return 0, errs.NewInvalidStateErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s order cannot be cancelled by the buyer", s.String()),
		)
	}

	return Cancelled, nil
}

// CancelByFarmer transitions the status to Cancelled on the farmer's request.
// Farmers reject pending orders instead of cancelling them.
//
// Valid transitions:
//   - Accepted -> Cancelled
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, InvalidStateError) saying the order cannot be cancelled otherwise
func (s Status) CancelByFarmer() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidStateErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s order cannot be cancelled by the farmer", s.String()),
		)
	}

	return Cancelled, nil
}
