package catalog

import (
	"fmt"

	"netondemand/internal/pkg/errs"
)

// ServiceType classifies the network products offered in the catalog.
type ServiceType int

const (
	// UnknownServiceType represents an invalid or undefined service type.
	UnknownServiceType ServiceType = iota

	// Fiber is a direct fiber connectivity product.
	Fiber

	// VPN is a managed virtual private network product.
	VPN

	// Dedicated is a dedicated point-to-point link product.
	Dedicated

	// SDWAN is a software-defined WAN overlay product.
	SDWAN
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		UnknownServiceType: "Unknown",
		Fiber:              "Fiber",
		VPN:                "VPN",
		Dedicated:          "Dedicated",
		SDWAN:              "SD-WAN",
	}
}

func getValidServiceTypeStrings() map[ServiceType]string {
	//nolint:exhaustive // UnknownServiceType is intentionally excluded as it's invalid
	return map[ServiceType]string{
		Fiber:     "Fiber",
		VPN:       "VPN",
		Dedicated: "Dedicated",
		SDWAN:     "SD-WAN",
	}
}

// Validate checks if the ServiceType value is valid.
func (t ServiceType) Validate() error {
	if _, ok := getValidServiceTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("service type is invalid",
			fmt.Errorf("%d is not a valid service type", t))
	}
	return nil
}

// String returns the human-readable name of the service type.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (t ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
