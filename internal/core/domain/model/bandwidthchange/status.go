package bandwidthchange

import (
	"fmt"

	"netondemand/internal/pkg/errs"
)

// Status represents the lifecycle state of a bandwidth change.
//
// State transitions:
//
//	Pending ──> Scheduled ──> Applied
//	    │            │
//	    └> Cancelled <┘       Failed  (from any state)
//
// Applied, Cancelled and Failed are final states; a pending change may be
// applied immediately without scheduling.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Pending is the initial status of a freshly requested change.
	Pending

	// Scheduled indicates the change will be applied at a planned time.
	Scheduled

	// Applied indicates the change mutated the instance. Final state.
	Applied

	// Failed indicates the change could not be applied. Final state.
	Failed

	// Cancelled indicates the change was withdrawn before applying.
	// Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Pending:       "Pending",
		Scheduled:     "Scheduled",
		Applied:       "Applied",
		Failed:        "Failed",
		Cancelled:     "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Scheduled: "Scheduled",
		Applied:   "Applied",
		Failed:    "Failed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid bandwidth change status", s))
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

// Schedule transitions the status to Scheduled. Legal only from Pending.
func (s Status) Schedule() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("bandwidth change", "schedule", s.String())
	}
	return Scheduled, nil
}

// Apply transitions the status to Applied.
// Legal from Pending (immediate application) and Scheduled.
func (s Status) Apply() (Status, error) {
	if s != Pending && s != Scheduled {
		return 0, errs.NewInvalidStateError("bandwidth change", "apply", s.String())
	}
	return Applied, nil
}

// Cancel transitions the status to Cancelled.
// Legal only from Pending and Scheduled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Scheduled {
		return 0, errs.NewInvalidStateError("bandwidth change", "cancel", s.String())
	}
	return Cancelled, nil
}

// Fail transitions the status to Failed. Legal from every valid state, so
// that an application error discovered late can always be recorded.
func (s Status) Fail() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Failed, nil
}
