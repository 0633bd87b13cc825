// Package order contains the Order aggregate: a company's request to create,
// modify, or terminate a service instance. Orders carry a unique customer-facing
// order number, a signed total cost, and move through the lifecycle
// Submitted -> Approved -> InProgress -> Completed, with Cancelled and Failed
// side exits.
//
// The three order types require different fields: new-service and modify-service
// orders must carry a requested bandwidth, terminate-service orders must not;
// modify and terminate orders must reference an existing service instance.
// The constructor enforces these per-type rules.
//
// Approve, StartProcessing and Complete are idempotent: called in the wrong
// state they report not-applied instead of failing, so a replayed provisioning
// callback cannot wedge an order. Cancel and Fail are gated and return
// InvalidStateError on an illegal transition.
package order
