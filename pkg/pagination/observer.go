package pagination

// Observer is notified after every navigation call with the resulting
// (clamped) page.
type Observer interface {
	PageChanged(page int)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(page int)

// PageChanged calls f(page).
func (f ObserverFunc) PageChanged(page int) {
	f(page)
}
