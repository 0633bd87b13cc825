package order

import (
	"fmt"

	"netondemand/internal/pkg/errs"
)

// OrderType identifies what an order does to a service instance.
type OrderType int

const (
	// UnknownOrderType represents an invalid or undefined order type.
	UnknownOrderType OrderType = iota

	// NewService provisions a brand-new service instance for the company.
	NewService

	// ModifyService changes the bandwidth of an existing service instance.
	ModifyService

	// TerminateService ends an existing service instance's subscription.
	TerminateService
)

func getOrderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		UnknownOrderType: "Unknown",
		NewService:       "NewService",
		ModifyService:    "ModifyService",
		TerminateService: "TerminateService",
	}
}

func getValidOrderTypeStrings() map[OrderType]string {
	//nolint:exhaustive // UnknownOrderType is intentionally excluded as it's invalid
	return map[OrderType]string{
		NewService:       "NewService",
		ModifyService:    "ModifyService",
		TerminateService: "TerminateService",
	}
}

// Validate checks if the OrderType value is valid.
func (t OrderType) Validate() error {
	if _, ok := getValidOrderTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type is invalid",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the human-readable name of the order type.
func (t OrderType) String() string {
	if str, ok := getOrderTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// RequiresBandwidth reports whether orders of this type must carry a
// requested bandwidth. Terminate orders must not.
func (t OrderType) RequiresBandwidth() bool {
	return t == NewService || t == ModifyService
}

// RequiresInstance reports whether orders of this type must reference an
// existing service instance.
func (t OrderType) RequiresInstance() bool {
	return t == ModifyService || t == TerminateService
}
