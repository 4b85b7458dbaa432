package pace

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

// BarRenderer paints an in-place themed progress bar with real-time
// updates.
//
// It uses a carriage return to repaint the same terminal line on every
// Render, showing a percentage, a themed bar with a fractionally filled
// leading edge, current/total counts, and a rate/elapsed/ETA block:
//
//	downloading:  42% [=================#                       ]| 420/1000 [96.3 /s, 4s<6s]
//
// When a repaint is shorter than the previous one, the tail is padded with
// spaces so no stale columns survive. Finish repaints one last time and
// emits a newline, leaving the line non-overwritable.
//
// IMPORTANT: the in-place repaint only makes sense on terminal output.
// For pipes, files, and CI logs use TextRenderer or JSONRenderer instead.
//
// The renderer carries its own mutex so it stays safe when shared between
// bars or driven directly, although a single Bar already serializes its
// dispatches. Write errors are deliberately ignored: a broken output
// stream must not stop the owning bar from being advanced.
type BarRenderer struct {
	writer         io.Writer
	theme          Theme
	width          int
	useColor       bool
	showRate       bool
	showETA        bool
	showPercentage bool

	mu        sync.Mutex
	lastWidth int
}

// BarRendererOption configures a BarRenderer during creation.
type BarRendererOption func(r *BarRenderer)

// WithTheme sets the glyph set. The default is ThemeUnicode.
func WithTheme(t Theme) BarRendererOption {
	return func(r *BarRenderer) {
		r.theme = t
	}
}

// WithBarWidth sets the bar width in cells. The default is 40.
func WithBarWidth(width int) BarRendererOption {
	return func(r *BarRenderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithoutColor disables the truecolor gradient on the bar fill.
func WithoutColor() BarRendererOption {
	return func(r *BarRenderer) {
		r.useColor = false
	}
}

// WithoutRate hides the throughput figure.
func WithoutRate() BarRendererOption {
	return func(r *BarRenderer) {
		r.showRate = false
	}
}

// WithoutETA hides the estimated time remaining.
func WithoutETA() BarRendererOption {
	return func(r *BarRenderer) {
		r.showETA = false
	}
}

// WithoutPercentage hides the leading percentage figure.
func WithoutPercentage() BarRendererOption {
	return func(r *BarRenderer) {
		r.showPercentage = false
	}
}

// NewBarRenderer creates a bar renderer writing to w, typically os.Stdout.
//
// Example:
//
//	renderer := pace.NewBarRenderer(os.Stdout,
//	    pace.WithTheme(pace.ThemeASCII),
//	    pace.WithBarWidth(25),
//	)
//	bar := pace.New(total, pace.WithRenderer(renderer))
func NewBarRenderer(w io.Writer, opts ...BarRendererOption) *BarRenderer {
	r := &BarRenderer{
		writer:         w,
		theme:          ThemeUnicode,
		width:          40,
		useColor:       true,
		showRate:       true,
		showETA:        true,
		showPercentage: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render repaints the progress line in place.
func (r *BarRenderer) Render(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paint(s)
}

// Finish repaints one final time and emits a newline so later output
// starts on a fresh line.
func (r *BarRenderer) Finish(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paint(s)
	fmt.Fprint(r.writer, "\n")
	r.lastWidth = 0
}

// paint writes one repaint. Caller holds r.mu.
func (r *BarRenderer) paint(s Snapshot) {
	line, visible := r.buildLine(s)

	// Pad over the tail of a previously longer line.
	if pad := r.lastWidth - visible; pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	r.lastWidth = visible

	fmt.Fprint(r.writer, "\r"+line)
}

// buildLine assembles the progress line and returns it together with its
// visible width in cells, which excludes any color escapes.
func (r *BarRenderer) buildLine(s Snapshot) (string, int) {
	var out strings.Builder
	visible := 0

	write := func(seg string) {
		out.WriteString(seg)
		visible += utf8.RuneCountInString(seg)
	}

	if s.Label != "" {
		write(s.Label + ": ")
	}
	if r.showPercentage {
		write(fmt.Sprintf("%3.0f%% ", s.Percentage))
	}

	if r.useColor {
		out.WriteString(ansiForeground(percentColor(s.Percentage)))
	}
	write(r.theme.LeftBracket)
	write(r.buildFill(s.Percentage))
	write(r.theme.RightBracket)
	if r.useColor {
		out.WriteString(ansiReset)
	}

	write(r.theme.RightPad + " ")
	write(fmt.Sprintf("%d/%d", s.Current, s.Total))

	if r.showRate || r.showETA {
		write(" [")
		if r.showRate {
			write(FormatRate(s.Rate) + ", ")
		}
		write(FormatDuration(s.Elapsed))
		if r.showETA && s.Percentage < 100 {
			write("<" + FormatDuration(s.ETA))
		}
		write("]")
	}

	return out.String(), visible
}

// buildFill draws the bar interior: whole cells at full intensity, one
// fractional edge glyph, then empty cells.
func (r *BarRenderer) buildFill(pct float64) string {
	fills := pct / 100.0 * float64(r.width)
	whole := int(fills)
	if whole > r.width {
		whole = r.width
	}

	var fill strings.Builder
	for i := 0; i < whole; i++ {
		fill.WriteString(r.theme.Blocks[8])
	}

	if whole < r.width {
		fracIdx := int((fills - float64(whole)) * 8)
		if fracIdx < 0 {
			fracIdx = 0
		}
		if fracIdx > 8 {
			fracIdx = 8
		}
		fill.WriteString(r.theme.Blocks[fracIdx])
		for i := whole + 1; i < r.width; i++ {
			fill.WriteString(r.theme.Blocks[0])
		}
	}

	return fill.String()
}
