// Package instance contains the ServiceInstance aggregate: a company's live,
// billable subscription to a catalog service. Instances are created when a
// new-service order completes, move through the provisioning lifecycle
// (Pending -> Provisioning -> Active -> Suspended/Terminated), and carry the
// current bandwidth and monthly cost the company is billed for.
//
// UpdateBandwidth is the single authorized path by which an instance's billed
// bandwidth may change. It is invoked either by an applied bandwidth change
// or directly when a modify-service order completes.
package instance
