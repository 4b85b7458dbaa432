package pace

import (
	"fmt"
	"time"
)

// FormatRate renders a per-second rate with a metric suffix, e.g.
// "1.2 M/s". Rates below one thousand keep a bare "/s" suffix.
func FormatRate(rate float64) string {
	switch {
	case rate >= 1e9:
		return fmt.Sprintf("%.1f G/s", rate/1e9)
	case rate >= 1e6:
		return fmt.Sprintf("%.1f M/s", rate/1e6)
	case rate >= 1e3:
		return fmt.Sprintf("%.1f K/s", rate/1e3)
	default:
		return fmt.Sprintf("%.1f /s", rate)
	}
}

// FormatDuration renders a duration at the coarsest useful unit pair:
// "2h3m", "4m10s", or "42s".
func FormatDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	minutes := seconds / 60
	hours := minutes / 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes%60)
	case minutes > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds%60)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
