package cache

import (
	"context"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	day := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)
	got := Key(42, day)
	want := "attendance:today:42:2025-03-09"
	if got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
}

func TestTTLUntilMidnight(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{
			"midday",
			time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC),
			12 * time.Hour,
		},
		{
			"just before midnight gets the floor",
			time.Date(2025, 3, 9, 23, 59, 59, 0, time.UTC),
			time.Minute,
		},
		{
			"start of day",
			time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
			24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TTLUntilMidnight(tt.now); got != tt.want {
				t.Errorf("TTLUntilMidnight(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestNilCacheIsNoop(t *testing.T) {
	ctx := context.Background()

	var c *TodayCache
	if _, ok := c.Get(ctx, 1); ok {
		t.Error("nil cache reported a hit")
	}
	c.Set(ctx, 1, []byte("x"))
	c.Invalidate(ctx, 1)

	empty := NewTodayCache(nil)
	if _, ok := empty.Get(ctx, 1); ok {
		t.Error("cache without a client reported a hit")
	}
	empty.Set(ctx, 1, []byte("x"))
	empty.Invalidate(ctx, 1)
}
