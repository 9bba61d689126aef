package cache

import (
	"fmt"
)

// keyPrefix namespaces range cache keys in Redis.
const keyPrefix = "pagewindow:range"

// RangeKey identifies a cached range by its inputs.
type RangeKey struct {
	Total      int
	Active     int
	Siblings   int
	Boundaries int
}

// Normalize applies the same clamping pagination.Range applies, so keys for
// equivalent inputs are identical.
func (k RangeKey) Normalize() RangeKey {
	total := max(k.Total, 1)
	return RangeKey{
		Total:      total,
		Active:     min(max(k.Active, 1), total),
		Siblings:   max(k.Siblings, 0),
		Boundaries: max(k.Boundaries, 0),
	}
}

// String generates a deterministic cache key string.
// Format: pagewindow:range:t=<total>:p=<active>:s=<siblings>:b=<boundaries>
//
// Example:
//
//	pagewindow:range:t=10:p=1:s=1:b=1
func (k RangeKey) String() string {
	n := k.Normalize()
	return fmt.Sprintf("%s:t=%d:p=%d:s=%d:b=%d", keyPrefix, n.Total, n.Active, n.Siblings, n.Boundaries)
}
