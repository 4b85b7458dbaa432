package pace

import (
	"sync"
	"sync/atomic"
	"time"
)

// rateCacheTTL is how long a computed rate stays valid before the next
// Rate call triggers a fresh window scan.
const rateCacheTTL = 100 * time.Millisecond

// Tracker is the shared counter at the heart of a progress bar.
//
// It owns the authoritative current/total counters, the start time, and a
// bounded ring of rate samples. Advance is safe from any number of
// goroutines and is lock-free: a relaxed-style atomic add plus one ring
// slot write. Reads (Current, Total, Percentage, Rate, Elapsed, ETA) are
// likewise safe and never fail; they are defined for every reachable
// state, including Total == 0 and overshoot (Current > Total).
//
// No cross-field atomicity is provided: a reader may observe a percentage
// computed from a current and total that were each valid at slightly
// different instants. Counter conservation is the guarantee that matters:
// concurrent Advance calls are all reflected in the final counter value.
//
// A Tracker is typically owned by a Bar, but can be used standalone when
// no rendering is needed:
//
//	tracker := pace.NewTracker(1000)
//	for range work {
//	    tracker.Advance(1)
//	}
//	fmt.Printf("%.1f%% at %.0f/s\n", tracker.Percentage(), tracker.Rate())
type Tracker struct {
	current atomic.Uint64
	total   atomic.Uint64
	start   time.Time
	window  rateWindow

	// Rate cache. Reads take the shared lock so concurrent Rate callers
	// never block each other; only a recompute takes the exclusive lock.
	cacheMu    sync.RWMutex
	cachedRate float64
	cachedAt   time.Time
}

// NewTracker creates a tracker for total units of work. The start time
// used for elapsed/rate computation is fixed here.
func NewTracker(total uint64) *Tracker {
	t := &Tracker{start: time.Now()}
	t.total.Store(total)
	return t
}

// Advance atomically adds n to the current counter and records one rate
// sample. It never fails and never blocks other callers.
func (t *Tracker) Advance(n uint64) {
	cur := t.current.Add(n)
	t.window.record(cur, time.Since(t.start).Microseconds())
}

// SetTotal replaces the total. The store is atomic but carries no ordering
// guarantee relative to concurrent Advance calls, and it does not validate
// against the current counter.
func (t *Tracker) SetTotal(total uint64) {
	t.total.Store(total)
}

// Current returns the number of units completed so far.
func (t *Tracker) Current() uint64 {
	return t.current.Load()
}

// Total returns the total number of units.
func (t *Tracker) Total() uint64 {
	return t.total.Load()
}

// Percentage returns completion in [0, 100]. It is 0 when the total is 0
// and clamps to 100 when the counter has overshot the total.
func (t *Tracker) Percentage() float64 {
	total := t.total.Load()
	if total == 0 {
		return 0
	}
	pct := 100 * float64(t.current.Load()) / float64(total)
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Rate returns the estimated throughput in units per second.
//
// The estimate is cached for rateCacheTTL: two calls inside the window
// return the identical value without scanning the ring. Concurrent readers
// of a fresh cache never block each other.
func (t *Tracker) Rate() float64 {
	now := time.Now()

	t.cacheMu.RLock()
	if now.Sub(t.cachedAt) < rateCacheTTL {
		rate := t.cachedRate
		t.cacheMu.RUnlock()
		return rate
	}
	t.cacheMu.RUnlock()

	rate := t.window.estimate()

	t.cacheMu.Lock()
	t.cachedRate = rate
	t.cachedAt = now
	t.cacheMu.Unlock()

	return rate
}

// Elapsed returns the wall time since the tracker was constructed.
func (t *Tracker) Elapsed() time.Duration {
	return time.Since(t.start)
}

// ETA returns the estimated time remaining. It is 0 when the rate is not
// positive and 0 when the counter has reached or overshot the total; an
// overshot bar has no meaningful remaining time.
func (t *Tracker) ETA() time.Duration {
	rate := t.Rate()
	if rate <= 0 {
		return 0
	}
	current := t.current.Load()
	total := t.total.Load()
	if current >= total {
		return 0
	}
	seconds := float64(total-current) / rate
	return time.Duration(seconds * float64(time.Second))
}

// Snapshot captures a read-only view of the tracker for rendering. The
// fields are loaded independently; see the type comment on cross-field
// atomicity.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		Timestamp:  time.Now(),
		Current:    t.Current(),
		Total:      t.Total(),
		Percentage: t.Percentage(),
		Rate:       t.Rate(),
		Elapsed:    t.Elapsed(),
		ETA:        t.ETA(),
	}
}
