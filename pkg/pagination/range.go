package pagination

// Range returns the entries to display for the active page of total pages.
//
// siblings is the number of pages shown on each side of the active page and
// boundaries the number of pages always shown at each edge. Hidden runs of
// two or more pages collapse into a single Ellipsis; a run of one page is
// shown as that page. The result is deterministic, contains only pages in
// [1, total] in increasing order and holds at most two Ellipsis entries.
func Range(siblings, boundaries, total, active int) []Entry {
	total = max(total, 1)
	siblings = max(siblings, 0)
	boundaries = max(boundaries, 0)
	active = clamp(active, 1, total)

	if fitsWindow(siblings, boundaries, total) {
		RangeComputations.WithLabelValues(shapeFull).Inc()
		return pages(1, total)
	}

	// Past this point siblings+boundaries < total/2, so none of the sums
	// below can overflow.
	left := max(active-siblings, boundaries)
	right := min(active, total-boundaries-siblings) + siblings

	showLeft := left > boundaries+2
	showRight := right < total-(boundaries+1)

	switch {
	case !showLeft && showRight:
		RangeComputations.WithLabelValues(shapeRight).Inc()
		out := pages(1, siblings*2+boundaries+2)
		out = append(out, Ellipsis)
		return append(out, pages(total-boundaries+1, total)...)

	case showLeft && !showRight:
		RangeComputations.WithLabelValues(shapeLeft).Inc()
		out := pages(1, boundaries)
		out = append(out, Ellipsis)
		return append(out, pages(total-(boundaries+1+siblings*2), total)...)

	case showLeft && showRight && left <= right:
		RangeComputations.WithLabelValues(shapeBoth).Inc()
		out := pages(1, boundaries)
		out = append(out, Ellipsis)
		out = append(out, pages(left, right)...)
		out = append(out, Ellipsis)
		return append(out, pages(total-boundaries+1, total)...)
	}

	RangeComputations.WithLabelValues(shapeFull).Inc()
	return pages(1, total)
}

// fitsWindow reports whether siblings*2+3+boundaries*2 >= total: the active
// page, both boundary groups and the two ellipsis slots cover every page.
// The comparison is arranged so that huge counts cannot overflow.
func fitsWindow(siblings, boundaries, total int) bool {
	if total <= 3 {
		return true
	}
	need := (total - 2) / 2 // ceil((total-3)/2)
	return siblings >= need || boundaries >= need-siblings
}

// pages returns the entries from..to inclusive, or an empty slice when
// from > to.
func pages(from, to int) []Entry {
	if from > to {
		return []Entry{}
	}
	n := to - from + 1
	out := make([]Entry, n)
	for i := range out {
		out[i] = Entry(from + i)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
