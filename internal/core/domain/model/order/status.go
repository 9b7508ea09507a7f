package order

import (
	"fmt"

	"autoshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions implemented by this core:
//
//	Pending ──────> Cancelled
//	Confirmed ────> Cancelled
//
// Confirmed, Shipped and Delivered are declared because storage carries them,
// but no operation here transitions into them; they are set by mechanisms
// outside this core. Cancelled, Shipped and Delivered accept no further
// transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is created.
	Pending

	// Confirmed indicates the order has been accepted for processing.
	Confirmed

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order has reached the customer.
	Delivered

	// Cancelled is the terminal status reached via CancelOrder.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses the persisted representation of a status.
// Returns an error for unrecognized values, including "Unknown".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for
// invalid values. This is also the representation stored in the database.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCancel checks whether cancellation is allowed from the current
// status without performing the transition. Only Pending and Confirmed
// orders can be cancelled.
func (s Status) ValidateCancel() error {
	if s != Pending && s != Confirmed {
		return errs.NewConflictErrorWithCause("status",
			fmt.Errorf("cannot cancel an order in status %s", s.String()))
	}
	return nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Confirmed -> Cancelled
//
// Any other current status yields a conflict error and no transition.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateCancel(); err != nil {
		return 0, err
	}

	return Cancelled, nil
}
