// Package queries contains read operations of the CQRS architecture. Handlers
// return flat response structs shaped for the HTTP layer and never modify state.
package queries
