package core

// EventKind discriminates window events.
type EventKind int

const (
	// EventClose is a close request from the windowing system.
	EventClose EventKind = iota
	// EventResize reports a framebuffer size change.
	EventResize
)

// Event is a queued window event. Width/Height are set for EventResize.
type Event struct {
	Kind   EventKind
	Width  int
	Height int
}
