package pace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRate(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want string
	}{
		{"zero", 0, "0.0 /s"},
		{"below thousand", 999, "999.0 /s"},
		{"kilo boundary", 1000, "1.0 K/s"},
		{"kilo", 1500, "1.5 K/s"},
		{"mega", 2500000, "2.5 M/s"},
		{"giga", 3000000000, "3.0 G/s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRate(tt.rate))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0s"},
		{"seconds", 59 * time.Second, "59s"},
		{"minute boundary", time.Minute, "1m0s"},
		{"minutes", 90 * time.Second, "1m30s"},
		{"hour boundary", time.Hour, "1h0m"},
		{"hours", time.Hour + time.Minute + time.Second, "1h1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}
