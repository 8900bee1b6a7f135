package ui

// RefreshMsg asks the widget to re-read the controller's transcript. The
// controller's notify callback posts it from the reveal tick goroutine via
// Program.Send.
type RefreshMsg struct{}

type markdownRenderedMsg struct {
	MessageID string
	Rendered  string
}

type flashTickMsg struct{}
