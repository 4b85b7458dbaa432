package pace

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"
)

// mockRenderer captures all dispatched snapshots for testing.
type mockRenderer struct {
	mu       sync.Mutex
	renders  []Snapshot
	finishes []Snapshot
}

func (m *mockRenderer) Render(s Snapshot) {
	m.mu.Lock()
	m.renders = append(m.renders, s)
	m.mu.Unlock()
}

func (m *mockRenderer) Finish(s Snapshot) {
	m.mu.Lock()
	m.finishes = append(m.finishes, s)
	m.mu.Unlock()
}

func (m *mockRenderer) RenderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.renders)
}

func (m *mockRenderer) FinishCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.finishes)
}

func (m *mockRenderer) LastFinish() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.finishes[len(m.finishes)-1]
}

func TestBar_InitialPaintWhenInteractive(t *testing.T) {
	mock := &mockRenderer{}
	New(100, WithRenderer(mock), WithInteractive(true))

	if got := mock.RenderCount(); got != 1 {
		t.Errorf("Expected one initial render, got %d", got)
	}
}

func TestBar_NonInteractiveNeverRenders(t *testing.T) {
	mock := &mockRenderer{}
	bar := New(100, WithRenderer(mock), WithInteractive(false), WithRenderInterval(0))

	for i := 0; i < 100; i++ {
		bar.Inc()
	}
	bar.Close()

	if got := mock.RenderCount(); got != 0 {
		t.Errorf("Expected zero renders when non-interactive, got %d", got)
	}
	if got := mock.FinishCount(); got != 0 {
		t.Errorf("Expected zero finish renders when non-interactive, got %d", got)
	}
	if got := bar.Current(); got != 100 {
		t.Errorf("Expected counter to advance regardless, got %d", got)
	}
}

func TestBar_ConcurrentFinishDispatchesOnce(t *testing.T) {
	mock := &mockRenderer{}
	bar := New(100, WithRenderer(mock), WithInteractive(true))

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bar.Finish()
		}()
	}
	wg.Wait()

	if got := mock.FinishCount(); got != 1 {
		t.Errorf("Expected exactly one terminal render, got %d", got)
	}
}

func TestBar_CloseImpliesFinish(t *testing.T) {
	mock := &mockRenderer{}
	bar := New(100, WithRenderer(mock), WithInteractive(true))

	bar.Close()
	bar.Close()

	if got := mock.FinishCount(); got != 1 {
		t.Errorf("Expected one terminal render from Close, got %d", got)
	}
}

func TestBar_CloseAfterFinishIsNoop(t *testing.T) {
	mock := &mockRenderer{}
	bar := New(100, WithRenderer(mock), WithInteractive(true))

	bar.Finish()
	bar.Close()

	if got := mock.FinishCount(); got != 1 {
		t.Errorf("Expected one terminal render, got %d", got)
	}
}

func TestBar_SingleThreadEndToEnd(t *testing.T) {
	mock := &mockRenderer{}
	bar := New(100, WithRenderer(mock), WithInteractive(true))

	for i := 0; i < 100; i++ {
		bar.Inc()
	}
	bar.Finish()

	if got := bar.Current(); got != 100 {
		t.Errorf("Expected current 100, got %d", got)
	}
	if got := mock.FinishCount(); got != 1 {
		t.Fatalf("Expected exactly one finish, got %d", got)
	}
	if s := mock.LastFinish(); s.Current != 100 {
		t.Errorf("Expected terminal snapshot at current=100, got %d", s.Current)
	}
	if got := mock.RenderCount(); got < 1 {
		t.Errorf("Expected at least one render, got %d", got)
	}
}

func TestBar_ConcurrentEndToEnd(t *testing.T) {
	mock := &mockRenderer{}
	bar := New(1000, WithRenderer(mock), WithInteractive(false))

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				bar.Inc()
			}
		}()
	}
	wg.Wait()

	if got := bar.Current(); got != 1000 {
		t.Errorf("Expected current 1000, got %d", got)
	}

	rate := bar.Rate()
	if rate < 0 || math.IsInf(rate, 0) || math.IsNaN(rate) {
		t.Errorf("Expected finite non-negative rate, got %f", rate)
	}
}

func TestBar_ZeroTotal(t *testing.T) {
	mock := &mockRenderer{}
	bar := New(0, WithRenderer(mock), WithInteractive(true))

	bar.Inc()
	bar.Finish()

	if pct := bar.Percentage(); pct != 0 {
		t.Errorf("Expected 0%% with zero total, got %f", pct)
	}
	if eta := bar.ETA(); eta != 0 {
		t.Errorf("Expected 0 ETA with zero total, got %v", eta)
	}
}

func TestBar_ThrottleLimitsRenders(t *testing.T) {
	mock := &mockRenderer{}
	bar := New(1000, WithRenderer(mock), WithInteractive(true), WithRenderInterval(50*time.Millisecond))

	for i := 0; i < 1000; i++ {
		bar.Inc()
	}

	// A tight loop finishes in well under one interval; beyond the
	// initial paint only a couple of gate windows can open.
	if got := mock.RenderCount(); got > 5 {
		t.Errorf("Expected throttling to cap renders, got %d", got)
	}
}

func TestBar_NoRendersAfterFinish(t *testing.T) {
	mock := &mockRenderer{}
	bar := New(100, WithRenderer(mock), WithInteractive(true), WithRenderInterval(0))

	bar.Finish()
	before := mock.RenderCount()

	for i := 0; i < 50; i++ {
		bar.Inc()
	}

	if got := mock.RenderCount(); got != before {
		t.Errorf("Expected no renders after finish, got %d new", got-before)
	}
	if got := bar.Current(); got != 50 {
		t.Errorf("Expected counter still advancing after finish, got %d", got)
	}
}

// failingWriter fails every write, simulating a closed output stream.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("stream closed")
}

func TestBar_RenderFailureDoesNotCorruptTracker(t *testing.T) {
	renderer := NewBarRenderer(failingWriter{}, WithoutColor())
	bar := New(100, WithRenderer(renderer), WithInteractive(true), WithRenderInterval(0))

	for i := 0; i < 100; i++ {
		bar.Inc()
	}
	bar.Finish()

	if got := bar.Current(); got != 100 {
		t.Errorf("Expected current 100 despite render failures, got %d", got)
	}
}
