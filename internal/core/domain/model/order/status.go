package order

import (
	"fmt"

	"netondemand/internal/pkg/errs"
)

// Status represents the current state in the order lifecycle.
//
// State transitions:
//
//	Submitted ──> Approved ──> InProgress ──> Completed
//	    │             │             │
//	    ├──> Cancelled <┘           │
//	    └───────> Failed <──────────┘   (from any non-terminal state)
//
// Completed, Cancelled and Failed are final states.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Submitted is the initial status of a newly placed order.
	Submitted

	// Approved indicates the order passed review and awaits processing.
	Approved

	// InProgress indicates the order is being fulfilled.
	InProgress

	// Completed indicates the order was fulfilled. Final state.
	Completed

	// Cancelled indicates the order was withdrawn before fulfilment started.
	// Final state.
	Cancelled

	// Failed indicates fulfilment did not succeed. Final state.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Submitted:     "Submitted",
		Approved:      "Approved",
		InProgress:    "InProgress",
		Completed:     "Completed",
		Cancelled:     "Cancelled",
		Failed:        "Failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Submitted:  "Submitted",
		Approved:   "Approved",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
		Failed:     "Failed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Failed
}

// Approve transitions Submitted to Approved. From any other state the
// transition does not apply and the status is returned unchanged.
func (s Status) Approve() (Status, bool) {
	if s != Submitted {
		return s, false
	}
	return Approved, true
}

// StartProcessing transitions Approved to InProgress. From any other state
// the transition does not apply and the status is returned unchanged.
func (s Status) StartProcessing() (Status, bool) {
	if s != Approved {
		return s, false
	}
	return InProgress, true
}

// Complete transitions InProgress to Completed. From any other state the
// transition does not apply and the status is returned unchanged.
func (s Status) Complete() (Status, bool) {
	if s != InProgress {
		return s, false
	}
	return Completed, true
}

// CanCancel reports whether an order in this status may still be cancelled.
func (s Status) CanCancel() bool {
	return s == Submitted || s == Approved
}

// Cancel transitions the status to Cancelled.
// Legal only from Submitted and Approved.
func (s Status) Cancel() (Status, error) {
	if !s.CanCancel() {
		return 0, errs.NewInvalidStateError("order", "cancel", s.String())
	}
	return Cancelled, nil
}

// Fail transitions the status to Failed.
// Legal from every non-terminal state.
func (s Status) Fail() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidStateError("order", "fail", s.String())
	}
	return Failed, nil
}
