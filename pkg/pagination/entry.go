package pagination

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Entry is one item of a display range: either a concrete page number or
// the Ellipsis marker.
type Entry int

// Ellipsis marks one or more hidden pages. It is never a navigable page and
// compares unequal to every page entry.
const Ellipsis Entry = -1

// ellipsisJSON is the wire form of Ellipsis.
const ellipsisJSON = "dots"

// ErrInvalidEntry is returned when decoding something that is neither a
// page number nor the ellipsis marker.
var ErrInvalidEntry = errors.New("invalid range entry")

// PageEntry returns the entry for page n.
func PageEntry(n int) Entry {
	return Entry(n)
}

// IsEllipsis reports whether e is the Ellipsis marker.
func (e Entry) IsEllipsis() bool {
	return e == Ellipsis
}

// Page returns the page number and true, or 0 and false for Ellipsis.
func (e Entry) Page() (int, bool) {
	if e.IsEllipsis() {
		return 0, false
	}
	return int(e), true
}

// String renders a page number or "...".
func (e Entry) String() string {
	if e.IsEllipsis() {
		return "..."
	}
	return strconv.Itoa(int(e))
}

// MarshalJSON encodes a page as a JSON number and Ellipsis as "dots".
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.IsEllipsis() {
		return json.Marshal(ellipsisJSON)
	}
	return []byte(strconv.Itoa(int(e))), nil
}

// UnmarshalJSON accepts a positive page number or "dots".
func (e *Entry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != ellipsisJSON {
			return fmt.Errorf("%w: %q", ErrInvalidEntry, s)
		}
		*e = Ellipsis
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	if n < 1 {
		return fmt.Errorf("%w: page %d", ErrInvalidEntry, n)
	}
	*e = Entry(n)
	return nil
}
