package instance

import (
	"fmt"

	"netondemand/internal/pkg/errs"
)

// Status represents the provisioning lifecycle state of a service instance.
//
// State transitions:
//
//	Pending ──> Provisioning ──> Active ──┬──> Suspended ──> Active (resume)
//	    │                                 │        │
//	    └────────────> Active (direct)    └──> Terminated <──┘
//
// Terminated is the only final state; a suspended instance may be resumed or
// terminated.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Pending is the initial status of an instance created by a completed
	// new-service order, before provisioning starts.
	Pending

	// Provisioning indicates the instance is being set up on the network.
	Provisioning

	// Active indicates the instance is live and billable.
	Active

	// Suspended indicates the instance is temporarily disabled but not ended.
	Suspended

	// Terminated indicates the subscription has ended. Final state.
	Terminated
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Pending:       "Pending",
		Provisioning:  "Provisioning",
		Active:        "Active",
		Suspended:     "Suspended",
		Terminated:    "Terminated",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:      "Pending",
		Provisioning: "Provisioning",
		Active:       "Active",
		Suspended:    "Suspended",
		Terminated:   "Terminated",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid service instance status", s))
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

// StartProvisioning transitions the status to Provisioning.
// Legal only from Pending.
func (s Status) StartProvisioning() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("service instance", "start provisioning", s.String())
	}
	return Provisioning, nil
}

// Activate transitions the status to Active.
// Legal from Pending (direct provision), Provisioning, and Suspended (resume).
func (s Status) Activate() (Status, error) {
	if s != Pending && s != Provisioning && s != Suspended {
		return 0, errs.NewInvalidStateError("service instance", "activate", s.String())
	}
	return Active, nil
}

// Suspend transitions the status to Suspended. Legal only from Active.
func (s Status) Suspend() (Status, error) {
	if s != Active {
		return 0, errs.NewInvalidStateError("service instance", "suspend", s.String())
	}
	return Suspended, nil
}

// Terminate transitions the status to Terminated.
// Legal from every state except Terminated itself.
func (s Status) Terminate() (Status, error) {
	if s == Terminated {
		return 0, errs.NewInvalidStateError("service instance", "terminate", s.String())
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Terminated, nil
}
