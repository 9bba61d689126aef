package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Range shapes, used as the "shape" label.
const (
	shapeFull  = "full"
	shapeLeft  = "left"
	shapeRight = "right"
	shapeBoth  = "both"
)

var (
	// Navigations tracks navigation calls by operation
	Navigations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagewindow_navigations_total",
			Help: "Total number of pagination navigation calls",
		},
		[]string{"op"}, // "set", "next", "prev", "first", "last"
	)

	// Clamped tracks navigations whose target fell outside [1, total]
	Clamped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagewindow_clamped_total",
			Help: "Total number of navigations clamped to a page bound",
		},
		[]string{"bound"}, // "lower", "upper"
	)

	// RangeComputations tracks computed ranges by shape
	RangeComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagewindow_range_computations_total",
			Help: "Total number of display ranges computed",
		},
		[]string{"shape"}, // "full", "left", "right", "both"
	)
)
