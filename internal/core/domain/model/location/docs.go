// Package location holds the geography used by shipments: customs provinces and
// municipalities, warehouses, and postal addresses that reference them.
package location
