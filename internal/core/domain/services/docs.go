// Package services provides domain services for logic that spans several
// aggregates of the parcel system or that needs lookups the aggregates cannot
// perform themselves.
//
// The package includes:
//   - AddressResolver: attaches customs province and municipality references to addresses
//   - HistoryNarrator: turns shipment items and their documents into a readable timeline
//   - DeliveryEstimator: estimates the days left until a shipment is delivered
package services
