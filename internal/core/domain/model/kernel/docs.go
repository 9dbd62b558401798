// Package kernel holds value objects shared by several aggregates of the
// logistics domain. Currently that is Weight, the parcel weight used by the
// messenger payment rule and by shipment intake.
package kernel
