package pace

// Renderer turns tracker snapshots into user-visible output.
//
// Render may be invoked frequently (up to once per throttle window) and
// must be cheap relative to that window. Finish is called exactly once per
// bar lifetime and is expected to leave the output in a terminal,
// non-overwritable state, typically by emitting a trailing newline.
//
// Implementations do not need to be safe for concurrent use on their own:
// the Bar serializes all Render and Finish dispatches. Renderers that are
// also used standalone (or shared between bars) carry their own mutex.
//
// Renderer failures are the renderer's concern. Implementations swallow
// I/O errors rather than surfacing them, so a closed output stream never
// corrupts tracker state or stops the bar from being advanced.
type Renderer interface {
	// Render produces an updated status display from the snapshot.
	Render(s Snapshot)

	// Finish produces the terminal display. Called at most once.
	Finish(s Snapshot)
}

// NoopRenderer discards all output.
//
// It is the renderer of choice for headless or non-interactive use and for
// isolating tracker performance from display cost in benchmarks. Both
// methods are intentionally empty.
type NoopRenderer struct{}

// NewNoopRenderer creates a renderer that does nothing.
func NewNoopRenderer() *NoopRenderer {
	return &NoopRenderer{}
}

// Render discards the snapshot without any action.
func (n *NoopRenderer) Render(s Snapshot) {
	// Intentionally empty - no-op implementation
}

// Finish discards the snapshot without any action.
func (n *NoopRenderer) Finish(s Snapshot) {
	// Intentionally empty - no-op implementation
}
