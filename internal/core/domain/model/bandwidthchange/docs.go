// Package bandwidthchange contains the BandwidthChange aggregate: an audited
// record of a bandwidth mutation against a service instance. A change tracks
// the previous and new values and the signed monthly cost impact, and moves
// through Pending -> Scheduled -> Applied, with Cancelled and Failed exits.
// Applying a change is what mutates the owning instance's billed bandwidth.
package bandwidthchange
