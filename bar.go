package pace

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/pace-tools/pace/term"
)

// Bar is the public face of the package: a Tracker, a render throttle, and
// a Renderer composed behind an advance/finish contract.
//
// A Bar must not be copied after creation; share it by pointer. Any number
// of goroutines may call Advance concurrently. Rendering activates only
// when the bar is interactive, a signal injected at construction
// (WithInteractive) and defaulting to whether stdout is a terminal.
//
// Lifecycle: a bar starts active and transitions to finished exactly once,
// either through an explicit Finish or through Close. Deferring Close
// gives the same guarantee a scoped destructor would - the terminal render
// fires on every exit path - without double finalization, because the
// transition is an atomic one-shot.
type Bar struct {
	tracker     *Tracker
	renderer    Renderer
	gate        renderGate
	finished    atomic.Bool
	interactive bool
	label       string
}

// Option configures a Bar during creation.
type Option func(b *Bar)

// WithRenderer sets the render collaborator. The default is a BarRenderer
// writing to stdout.
func WithRenderer(r Renderer) Option {
	return func(b *Bar) {
		b.renderer = r
	}
}

// WithRenderInterval sets the minimum interval between repaints. The
// default is 33ms (roughly 30 fps).
func WithRenderInterval(d time.Duration) Option {
	return func(b *Bar) {
		b.gate.interval = d
	}
}

// WithInteractive overrides the interactivity signal.
//
// A non-interactive bar never dispatches renders: Advance only updates the
// tracker, and Close performs no terminal render. Tests use this to make
// rendering deterministic; callers piping a TextRenderer or JSONRenderer
// to a log file use it to force rendering on non-tty output.
func WithInteractive(interactive bool) Option {
	return func(b *Bar) {
		b.interactive = interactive
	}
}

// WithLabel sets a display label carried on every snapshot.
func WithLabel(label string) Option {
	return func(b *Bar) {
		b.label = label
	}
}

// New creates a progress bar for total units of work.
//
// Defaults: a BarRenderer on stdout, a 33ms render interval, and
// interactivity detected from stdout. An interactive bar paints once
// immediately so the user sees an empty bar before the first Advance.
//
// Example:
//
//	bar := pace.New(uint64(len(items)),
//	    pace.WithLabel("indexing"),
//	)
//	defer bar.Close()
func New(total uint64, opts ...Option) *Bar {
	b := &Bar{
		tracker:     NewTracker(total),
		interactive: term.Interactive(),
	}
	b.gate.interval = defaultRenderInterval
	for _, opt := range opts {
		opt(b)
	}
	if b.renderer == nil {
		b.renderer = NewBarRenderer(os.Stdout)
	}

	if b.interactive {
		b.gate.dispatchMu.Lock()
		b.renderer.Render(b.Snapshot())
		b.gate.dispatchMu.Unlock()
	}

	return b
}

// Advance adds n units of completed work.
//
// The counter update is lock-free and always succeeds. Afterwards the bar
// asks the gate whether this caller should repaint; a losing attempt is
// not an error and returns immediately, so callers treat Advance as
// fire-and-forget.
func (b *Bar) Advance(n uint64) {
	b.tracker.Advance(n)

	if !b.interactive || b.finished.Load() {
		return
	}
	if b.gate.tryEnter(time.Now()) {
		b.gate.dispatchMu.Lock()
		if !b.finished.Load() {
			b.renderer.Render(b.Snapshot())
		}
		b.gate.dispatchMu.Unlock()
	}
}

// Inc adds one unit of completed work.
func (b *Bar) Inc() {
	b.Advance(1)
}

// Finish transitions the bar to its terminal state.
//
// The transition is an atomic one-shot: when N goroutines race, exactly
// one wins and dispatches the renderer's Finish, under the same exclusivity
// lock as ordinary renders. Subsequent calls are no-ops.
func (b *Bar) Finish() {
	if !b.finished.CompareAndSwap(false, true) {
		return
	}
	if !b.interactive {
		return
	}
	b.gate.dispatchMu.Lock()
	b.renderer.Finish(b.Snapshot())
	b.gate.dispatchMu.Unlock()
}

// Close finishes the bar if it is still active. It exists so callers can
// defer the finalization at the point of creation; calling Close after an
// explicit Finish does nothing.
func (b *Bar) Close() {
	b.Finish()
}

// SetTotal replaces the total units of work.
func (b *Bar) SetTotal(total uint64) {
	b.tracker.SetTotal(total)
}

// Current returns the number of units completed so far.
func (b *Bar) Current() uint64 {
	return b.tracker.Current()
}

// Total returns the total number of units.
func (b *Bar) Total() uint64 {
	return b.tracker.Total()
}

// Percentage returns completion in [0, 100].
func (b *Bar) Percentage() float64 {
	return b.tracker.Percentage()
}

// Rate returns the estimated throughput in units per second.
func (b *Bar) Rate() float64 {
	return b.tracker.Rate()
}

// Elapsed returns the wall time since the bar was created.
func (b *Bar) Elapsed() time.Duration {
	return b.tracker.Elapsed()
}

// ETA returns the estimated time remaining.
func (b *Bar) ETA() time.Duration {
	return b.tracker.ETA()
}

// Snapshot captures the bar's state for rendering.
func (b *Bar) Snapshot() Snapshot {
	s := b.tracker.Snapshot()
	s.Label = b.label
	return s
}
