// Package pace provides thread-safe progress bars for long-running work
// that is advanced concurrently from many goroutines.
//
// The package is built around three pieces:
//
//   - Tracker: a shared counter with a bounded-memory throughput estimator
//   - Renderer interface for pluggable output (terminal bar, text, JSON, channel)
//   - Bar: ties a Tracker to a Renderer and throttles how often it repaints
//
// # Basic Usage
//
// For a simple terminal progress bar:
//
//	bar := pace.New(100)
//	defer bar.Close()
//
//	for i := 0; i < 100; i++ {
//	    doWork()
//	    bar.Inc()
//	}
//
// Close performs the terminal render (and trailing newline) if Finish was
// never called explicitly, but only when the bar believes it is attached to
// an interactive output. Deferring Close guarantees the transition fires on
// every exit path, including early returns and panics.
//
// # Concurrent Advancement
//
// Advance is safe from any number of goroutines. Counter updates are
// lock-free; only the actual repaint is serialized, and at most one caller
// per throttle window (33ms by default) pays for it:
//
//	bar := pace.New(uint64(len(items)))
//	defer bar.Close()
//
//	var wg sync.WaitGroup
//	for _, item := range items {
//	    wg.Add(1)
//	    go func() {
//	        defer wg.Done()
//	        process(item)
//	        bar.Inc()
//	    }()
//	}
//	wg.Wait()
//
// # Iterator Sugar
//
// Slices and sequences can drive a bar automatically:
//
//	for _, f := range pace.All(files) {
//	}
//
// The bar is created with the element count as its total, advanced once per
// consumed element, and finished when the loop ends (including early break).
//
// # Renderers
//
// Rendering is a capability interface with two operations, Render and
// Finish. The built-in renderers cover the common cases:
//
//   - BarRenderer: in-place themed terminal bar (the default)
//   - TextRenderer: timestamped lines for logs and non-tty output
//   - JSONRenderer: newline-delimited JSON snapshots
//   - ChannelRenderer: snapshots on a Go channel for custom UIs
//   - NoopRenderer: discards everything (headless use, benchmarks)
//
// Whether rendering activates at all is controlled by an injected
// interactivity signal (WithInteractive), never by hard-coded terminal
// detection, so behavior is deterministic under test.
//
// # Thread Safety
//
// All exported types are safe for concurrent use. The tracker trades exact
// sample ordering for update throughput: concurrent increments are never
// lost, but individual rate samples may be overwritten under heavy
// contention, which only smooths the throughput estimate.
package pace
