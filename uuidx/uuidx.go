// Package uuidx wraps UUID generation behind a single helper so that
// callers do not depend on the uuid library directly.
package uuidx

import "github.com/google/uuid"

// NewV4 returns a freshly generated random (version 4) UUID per RFC 4122.
// Two calls return distinct values with overwhelming probability; the result
// is not deterministic and not suitable for content addressing.
func NewV4() uuid.UUID {
	return uuid.New()
}
