// Package memstore implements the port store interfaces with process-lifetime
// in-memory collections. Each store is an ordered slice guarded by a RWMutex,
// addressed by opaque string ids. Nothing persists across restarts; the
// stores exist so services can be wired against the same interfaces a real
// database adapter would implement.
package memstore

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns an opaque id with a human-readable prefix, e.g. "prod_3f2a...".
// The prefix is a naming convention only; domain logic never parses ids.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.New().String())
}
