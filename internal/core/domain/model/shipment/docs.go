// Package shipment contains the Envio aggregate: a parcel tracked from customs
// intake to final delivery.
//
// The status field is denormalized onto the shipment and changed by document
// workflows (intake, transfer, dispatch). The entity does not enforce a state
// machine; it only guarantees that the status is one of the known values and
// records a StatusChanged event every time it actually changes.
//
// The messenger payment is derived from the weight. It is recomputed explicitly by
// every mutation that can affect it and cannot be set from outside.
package shipment
