package pace

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
)

// ChannelRenderer sends snapshots to a Go channel for programmatic
// consumption.
//
// This renderer is designed for building custom UIs, dashboards, or other
// tools that consume progress in-process. Snapshots are delivered with
// non-blocking sends so a slow consumer can never stall the goroutines
// advancing the bar; when the buffer is full the snapshot is dropped and
// counted instead.
//
// The channel closes when the constructor's context is cancelled or when
// Close is called, whichever comes first. Render and Finish after close
// are safe no-ops.
//
// Example:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	renderer := pace.NewChannelRenderer(ctx)
//
//	go func() {
//	    for s := range renderer.Snapshots() {
//	        fmt.Printf("progress: %d%%\n", int(s.Percentage))
//	    }
//	}()
//
//	bar := pace.New(total,
//	    pace.WithRenderer(renderer),
//	    pace.WithInteractive(true),
//	)
type ChannelRenderer struct {
	snapshots    chan Snapshot
	mu           sync.RWMutex
	closed       bool
	droppedCount atomic.Uint64
	log          logr.Logger
}

// ChannelRendererOption configures a ChannelRenderer.
type ChannelRendererOption func(r *ChannelRenderer)

// WithLogger sets a logger used to record dropped snapshots. The default
// discards.
func WithLogger(log logr.Logger) ChannelRendererOption {
	return func(r *ChannelRenderer) {
		r.log = log
	}
}

// WithBuffer sets the channel buffer size. The default is 100.
func WithBuffer(size int) ChannelRendererOption {
	return func(r *ChannelRenderer) {
		if size > 0 {
			r.snapshots = make(chan Snapshot, size)
		}
	}
}

// NewChannelRenderer creates a channel-based renderer.
//
// The renderer automatically closes when ctx is cancelled, following the
// standard shutdown pattern; Close can also be called directly and is safe
// to call multiple times.
func NewChannelRenderer(ctx context.Context, opts ...ChannelRendererOption) *ChannelRenderer {
	r := &ChannelRenderer{
		snapshots: make(chan Snapshot, 100),
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}

	go func() {
		<-ctx.Done()
		r.Close()
	}()

	return r
}

// Render delivers the snapshot with a non-blocking send, dropping it when
// the consumer is behind.
func (c *ChannelRenderer) Render(s Snapshot) {
	c.send(s)
}

// Finish delivers the terminal snapshot with a non-blocking send. It does
// not close the channel; lifetime is owned by the context or by Close, so
// one renderer can serve several consecutive bars.
func (c *ChannelRenderer) Finish(s Snapshot) {
	c.send(s)
}

func (c *ChannelRenderer) send(s Snapshot) {
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now()
	}

	// The read lock spans the send so Close cannot close the channel
	// between the closed check and the send.
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return
	}

	select {
	case c.snapshots <- s:
	default:
		dropped := c.droppedCount.Add(1)
		c.log.V(1).Info("progress snapshot dropped due to slow consumer",
			"current", s.Current,
			"total", s.Total,
			"total_dropped", dropped,
		)
	}
}

// Snapshots returns the read-only channel of snapshots. Consumers should
// range over it; the channel closes when the renderer is closed.
func (c *ChannelRenderer) Snapshots() <-chan Snapshot {
	return c.snapshots
}

// Dropped returns how many snapshots were discarded because the channel
// buffer was full. A large number means the consumer needs a bigger buffer
// or a faster loop.
func (c *ChannelRenderer) Dropped() uint64 {
	return c.droppedCount.Load()
}

// Close closes the snapshot channel, signaling consumers that no more
// snapshots will arrive. Subsequent calls have no effect.
func (c *ChannelRenderer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.snapshots)
	}
}
