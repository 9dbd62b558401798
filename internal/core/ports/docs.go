// Package ports defines the contracts between the parcel domain and its
// infrastructure: repositories per aggregate, the unit of work that binds them
// to one transaction, and the publisher for domain events.
package ports
