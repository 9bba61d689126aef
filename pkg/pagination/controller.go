package pagination

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"
)

// Op names a navigation operation.
type Op string

// Navigation operations.
const (
	OpSet   Op = "set"
	OpNext  Op = "next"
	OpPrev  Op = "prev"
	OpFirst Op = "first"
	OpLast  Op = "last"
)

// ErrUnknownOp is returned by Apply and ParseOp for an unrecognized operation.
var ErrUnknownOp = errors.New("unknown navigation operation")

// ParseOp converts a string to an Op.
func ParseOp(s string) (Op, error) {
	switch op := Op(s); op {
	case OpSet, OpNext, OpPrev, OpFirst, OpLast:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// Config holds the controller's starting state.
type Config struct {
	// Page is the initial active page. Clamped into [1, Total].
	Page int

	// Total is the number of pages. Values below 1 are treated as 1.
	Total int

	// Siblings is the number of pages shown on each side of the active page.
	Siblings int

	// Boundaries is the number of pages always shown at each edge.
	Boundaries int

	// OnChange is notified after every navigation call (optional).
	OnChange Observer

	// Logger receives debug events for clamped navigation (optional).
	Logger *zerolog.Logger
}

// Default visibility settings.
const (
	DefaultSiblings   = 1
	DefaultBoundaries = 1
)

// DefaultConfig returns a configuration with one sibling and one boundary page.
func DefaultConfig(page, total int) Config {
	return Config{
		Page:       page,
		Total:      total,
		Siblings:   DefaultSiblings,
		Boundaries: DefaultBoundaries,
	}
}

// State is a consistent copy of a controller's state and derived range.
type State struct {
	Active     int     `json:"active_page"`
	Total      int     `json:"total"`
	Siblings   int     `json:"siblings"`
	Boundaries int     `json:"boundaries"`
	Range      []Entry `json:"range"`
	HasPrev    bool    `json:"has_prev"`
	HasNext    bool    `json:"has_next"`
}

// Controller owns the active page of a paginated control.
// It is safe for concurrent use; navigation calls are serialized.
type Controller struct {
	mu         sync.Mutex
	active     int
	total      int
	siblings   int
	boundaries int
	onChange   Observer
	logger     zerolog.Logger
}

// New creates a controller from cfg. The observer is not notified for the
// initial page.
func New(cfg Config) *Controller {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	total := max(cfg.Total, 1)
	return &Controller{
		active:     clamp(cfg.Page, 1, total),
		total:      total,
		siblings:   max(cfg.Siblings, 0),
		boundaries: max(cfg.Boundaries, 0),
		onChange:   cfg.OnChange,
		logger:     logger,
	}
}

// Active returns the active page.
func (c *Controller) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Total returns the number of pages.
func (c *Controller) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Siblings returns the sibling count.
func (c *Controller) Siblings() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.siblings
}

// Boundaries returns the boundary count.
func (c *Controller) Boundaries() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.boundaries
}

// Range returns the display range for the current state.
func (c *Controller) Range() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Range(c.siblings, c.boundaries, c.total, c.active)
}

// HasPrev reports whether a previous page exists.
func (c *Controller) HasPrev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active > 1
}

// HasNext reports whether a following page exists.
func (c *Controller) HasNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active < c.total
}

// Snapshot returns the current state and its range, read under one lock.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Active:     c.active,
		Total:      c.total,
		Siblings:   c.siblings,
		Boundaries: c.boundaries,
		Range:      Range(c.siblings, c.boundaries, c.total, c.active),
		HasPrev:    c.active > 1,
		HasNext:    c.active < c.total,
	}
}

// SetPage makes target the active page, clamped into [1, total], and
// notifies the observer with the clamped page.
func (c *Controller) SetPage(target int) {
	c.navigate(OpSet, func(int, int) int { return target })
}

// Next moves to the following page.
func (c *Controller) Next() {
	c.navigate(OpNext, func(active, _ int) int { return min(active, math.MaxInt-1) + 1 })
}

// Prev moves to the previous page.
func (c *Controller) Prev() {
	c.navigate(OpPrev, func(active, _ int) int { return active - 1 })
}

// First moves to page 1.
func (c *Controller) First() {
	c.navigate(OpFirst, func(int, int) int { return 1 })
}

// Last moves to the last page.
func (c *Controller) Last() {
	c.navigate(OpLast, func(_, total int) int { return total })
}

// Apply runs op. page is only used by OpSet.
func (c *Controller) Apply(op Op, page int) error {
	switch op {
	case OpSet:
		c.SetPage(page)
	case OpNext:
		c.Next()
	case OpPrev:
		c.Prev()
	case OpFirst:
		c.First()
	case OpLast:
		c.Last()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
	return nil
}

// navigate is the single assignment point for the active page. target
// receives the current active page and total under the lock so relative
// moves are not lost to concurrent callers.
func (c *Controller) navigate(op Op, target func(active, total int) int) {
	c.mu.Lock()
	requested := target(c.active, c.total)
	page := clamp(requested, 1, c.total)
	c.active = page
	total := c.total
	observer := c.onChange
	c.mu.Unlock()

	Navigations.WithLabelValues(string(op)).Inc()
	if requested != page {
		bound := "upper"
		if requested < 1 {
			bound = "lower"
		}
		Clamped.WithLabelValues(bound).Inc()
		c.logger.Debug().
			Str("op", string(op)).
			Int("requested", requested).
			Int("page", page).
			Int("total", total).
			Msg("Navigation clamped")
	}

	if observer != nil {
		observer.PageChanged(page)
	}
}

// SetTotal changes the number of pages and re-clamps the active page.
// The observer is not notified.
func (c *Controller) SetTotal(total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total = max(total, 1)
	c.active = clamp(c.active, 1, c.total)
}

// SetSiblings changes the sibling count.
func (c *Controller) SetSiblings(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.siblings = max(n, 0)
}

// SetBoundaries changes the boundary count.
func (c *Controller) SetBoundaries(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.boundaries = max(n, 0)
}

// SetObserver replaces the observer. A nil observer disables notification.
func (c *Controller) SetObserver(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = o
}
