package pace

import "time"

// Snapshot is an immutable view of a tracker's state at one instant,
// handed to renderers.
//
// Not all fields matter to every renderer: the terminal bar ignores
// Timestamp, while the JSON renderer emits everything. Duration fields
// serialize as nanoseconds.
type Snapshot struct {
	// Timestamp is when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Label is the bar's display label, if any.
	Label string `json:"label,omitempty"`

	// Current is the number of units completed so far.
	Current uint64 `json:"current"`

	// Total is the total number of units to process.
	Total uint64 `json:"total"`

	// Percentage is completion in [0, 100], clamped on overshoot.
	Percentage float64 `json:"percentage"`

	// Rate is the estimated throughput in units per second.
	Rate float64 `json:"rate"`

	// Elapsed is the wall time since the bar was created.
	Elapsed time.Duration `json:"elapsed"`

	// ETA is the estimated time remaining, 0 when unknown or done.
	ETA time.Duration `json:"eta"`
}
