package pace

import (
	"math"
	"sync/atomic"
)

// windowSize is the fixed capacity of the sample ring. 64 samples is enough
// history for a stable estimate while keeping the estimate scan cheap.
const windowSize = 64

// sample is one (progress, timestamp) observation. The timestamp is
// microseconds since tracker start; zero marks a slot that has never been
// written.
type sample struct {
	progress atomic.Uint64
	micros   atomic.Int64
}

// rateWindow is a fixed-capacity ring buffer of samples shared by all
// writer goroutines.
//
// record never blocks: writers claim slots with a wrapping atomic cursor
// and store the two fields independently. Two writers that land on the same
// slot simply overwrite each other, and a reader may observe a progress
// value paired with the other writer's timestamp. That is accepted data
// loss, not corruption: the window feeds a throughput estimate, and losing
// or tearing isolated samples under contention only smooths it.
type rateWindow struct {
	cursor  atomic.Uint64
	samples [windowSize]sample
}

// record writes one sample at the next ring position.
func (w *rateWindow) record(progress uint64, micros int64) {
	idx := (w.cursor.Add(1) - 1) % windowSize
	s := &w.samples[idx]
	s.progress.Store(progress)
	s.micros.Store(micros)
}

// estimate scans the valid samples and returns a per-second rate computed
// from the oldest and newest observations.
//
// Returns 0 when fewer than two distinct valid samples exist, when no time
// elapsed between them, or when slot tearing produced a non-positive
// progress delta. The scan is O(windowSize); callers are expected to
// rate-limit calls (see Tracker's rate cache).
func (w *rateWindow) estimate() float64 {
	written := w.cursor.Load()
	n := uint64(windowSize)
	if written < n {
		n = written
	}

	oldestIdx, newestIdx := -1, -1
	var oldestMicros int64 = math.MaxInt64
	var newestMicros int64

	for i := uint64(0); i < n; i++ {
		t := w.samples[i].micros.Load()
		if t <= 0 {
			continue
		}
		if t < oldestMicros {
			oldestMicros = t
			oldestIdx = int(i)
		}
		if t > newestMicros {
			newestMicros = t
			newestIdx = int(i)
		}
	}

	if oldestIdx < 0 || newestIdx < 0 || newestIdx == oldestIdx || newestMicros <= oldestMicros {
		return 0
	}

	progressDelta := float64(w.samples[newestIdx].progress.Load()) - float64(w.samples[oldestIdx].progress.Load())
	if progressDelta <= 0 {
		return 0
	}

	return 1e6 * progressDelta / float64(newestMicros-oldestMicros)
}
