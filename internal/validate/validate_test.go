package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var ref = time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC)

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("5 Jan 99", ref))
	assert.True(t, IsDate("tomorrow", ref))
	assert.True(t, IsDate("2024-01-05 25:00", ref), "an out of range clock is dropped")
	assert.True(t, IsDate(ref, ref))
	assert.False(t, IsDate("not a date", ref))
	assert.False(t, IsDate("", ref))
	assert.False(t, IsDate(time.Time{}, ref))
	assert.False(t, IsDate(42, ref))
}

func TestIsTime(t *testing.T) {
	assert.True(t, IsTime("132pm", ref))
	assert.True(t, IsTime("now", ref))
	assert.False(t, IsTime("25:00", ref))
	assert.False(t, IsTime("noon", ref))
}

func TestIsDateInRange(t *testing.T) {
	startOfDay := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		rng      string
		expected bool
	}{
		{"past accepts earlier", ref.Add(-time.Hour), RangePast, true},
		{"past accepts now", ref, RangePast, true},
		{"past rejects later", ref.Add(time.Second), RangePast, false},
		{"future accepts start of today", startOfDay, RangeFuture, true},
		{"future accepts earlier today", ref.Add(-time.Hour), RangeFuture, true},
		{"future rejects yesterday", startOfDay.Add(-time.Second), RangeFuture, false},
		{"no range", time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), "", true},
		{"unknown range", time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), "last 30 days", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDateInRange(tt.date, tt.rng, ref))
		})
	}
}
