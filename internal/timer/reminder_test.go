package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestIsQuietHours(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		quiet bool
	}{
		{"start of quiet window", at(21, 0), true},
		{"late evening", at(23, 59), true},
		{"midnight", at(0, 0), true},
		{"just before end", at(3, 59), true},
		{"end of quiet window", at(4, 0), false},
		{"morning", at(9, 0), false},
		{"noon", at(12, 0), false},
		{"just before start", at(20, 59), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.quiet, IsQuietHours(tt.now))
		})
	}
}

func TestShouldFire(t *testing.T) {
	day := at(12, 0)
	night := at(22, 0)

	tests := []struct {
		name     string
		elapsed  int64
		target   float64
		fired    bool
		enabled  bool
		now      time.Time
		expected bool
	}{
		{"below threshold", 3600*7 - 1, 14, false, true, day, false},
		{"at threshold", 3600 * 7, 14, false, true, day, true},
		{"above threshold", 3600 * 8, 14, false, true, day, true},
		{"already fired", 3600 * 8, 14, true, true, day, false},
		{"notifications disabled", 3600 * 8, 14, false, false, day, false},
		{"quiet hours", 3600 * 8, 14, false, true, night, false},
		{"fractional target", 1800, 1, false, true, day, true},
		{"fractional target below", 1799, 1, false, true, day, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldFire(tt.elapsed, tt.target, tt.fired, tt.enabled, tt.now)
			assert.Equal(t, tt.expected, got)
		})
	}
}
