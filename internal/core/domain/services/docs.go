// Package services provides domain services that orchestrate business
// operations across multiple aggregates. The fulfilment of a completed order
// touches the order, the catalog service, the service instance, and for
// modifications a bandwidth-change record, so it does not belong to any
// single aggregate root.
package services
