package pace

import (
	"fmt"
	"io"
	"sync"
)

// TextRenderer writes progress as timestamped, append-only text lines.
//
// Unlike BarRenderer it never repaints in place, which makes it the right
// choice for log files, pipes, and CI output where carriage returns would
// produce garbage. Pair it with WithInteractive(true) so the owning bar
// dispatches renders even though the output is not a terminal.
//
// Example output:
//
//	[17:06:14] indexing: 120/1000 (12.0%) [41.3 /s, 2s<21s]
//	[17:06:15] indexing: 480/1000 (48.0%) [44.1 /s, 3s<11s]
//	[17:06:16] indexing: done 1000/1000 in 5s
//
// The renderer is safe for concurrent use.
type TextRenderer struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewTextRenderer creates a text renderer writing to w, typically
// os.Stderr or a log file.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{writer: w}
}

// Render writes one status line.
func (t *TextRenderer) Render(s Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[%s] %s%d/%d (%.1f%%) [%s, %s<%s]\n",
		s.Timestamp.Format("15:04:05"),
		labelPrefix(s),
		s.Current, s.Total, s.Percentage,
		FormatRate(s.Rate),
		FormatDuration(s.Elapsed),
		FormatDuration(s.ETA),
	)
}

// Finish writes the completion line.
func (t *TextRenderer) Finish(s Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[%s] %sdone %d/%d in %s\n",
		s.Timestamp.Format("15:04:05"),
		labelPrefix(s),
		s.Current, s.Total,
		FormatDuration(s.Elapsed),
	)
}

func labelPrefix(s Snapshot) string {
	if s.Label == "" {
		return ""
	}
	return s.Label + ": "
}
