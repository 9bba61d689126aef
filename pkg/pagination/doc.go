// Package pagination computes the page indicators shown by a paginated UI
// control and keeps the active page within bounds while navigating.
//
// Range is the pure windowing function. Given the sibling and boundary
// counts, the total number of pages and the active page, it returns the
// ordered entries to display, using Ellipsis for hidden runs of pages:
//
//	pagination.Range(1, 1, 10, 1)  // [1 2 3 4 5 ... 10]
//	pagination.Range(1, 1, 10, 5)  // [1 ... 4 5 6 ... 10]
//	pagination.Range(1, 1, 10, 10) // [1 ... 6 7 8 9 10]
//
// Controller owns the active page. Every navigation call (SetPage, Next,
// Prev, First, Last) goes through one clamping step and notifies the
// configured Observer exactly once with the resulting page:
//
//	cfg := pagination.DefaultConfig(1, 10)
//	cfg.OnChange = pagination.ObserverFunc(func(page int) {
//		fmt.Println("page", page)
//	})
//	ctrl := pagination.New(cfg)
//	ctrl.Next()       // page 2
//	ctrl.SetPage(42)  // page 10
//	ctrl.Range()      // [1 ... 6 7 8 9 10]
//
// Out-of-range input is never an error. Pages are clamped into [1, total],
// a total below 1 is treated as 1 and negative sibling or boundary counts
// are treated as 0.
//
// # Metrics
//
//   - pagewindow_navigations_total{op} - navigation calls by operation
//   - pagewindow_clamped_total{bound} - navigations clamped to lower/upper bound
//   - pagewindow_range_computations_total{shape} - ranges computed by shape
package pagination
