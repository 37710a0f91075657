// Package id generates opaque identifiers for stored records.
package id

import "github.com/google/uuid"

// New returns a fresh unique identifier. IDs are opaque strings assigned
// at creation time and never reused.
func New() string {
	return uuid.NewString()
}
