package pace

import (
	"sync"
	"sync/atomic"
	"time"
)

// defaultRenderInterval throttles repaints to roughly 30 frames per second.
const defaultRenderInterval = 33 * time.Millisecond

// renderGate decides which caller, if any, triggers a render for a given
// time window, and serializes the act of rendering itself.
//
// Frequency limiting and mutual exclusion are deliberately separate
// mechanisms. tryEnter is a lock-free compare-and-swap on the last render
// timestamp: at most one caller per interval window wins, losers return
// immediately without blocking. The gate alone does not order renders -
// under extreme contention two callers can win adjacent windows and race
// to dispatch - so the winner must still hold dispatchMu while calling
// into the renderer, which mutates shared terminal-cursor state.
type renderGate struct {
	interval time.Duration

	// last is the unix-nano timestamp of the last granted render.
	last atomic.Int64

	// dispatchMu serializes render and finish dispatch.
	dispatchMu sync.Mutex
}

// tryEnter reports whether the caller won the current render window.
// It never blocks; losing is not an error.
func (g *renderGate) tryEnter(now time.Time) bool {
	nowNanos := now.UnixNano()
	last := g.last.Load()
	if nowNanos-last < int64(g.interval) {
		return false
	}
	return g.last.CompareAndSwap(last, nowNanos)
}
