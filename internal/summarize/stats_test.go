package summarize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLLMStatsSnapshotPercentiles(t *testing.T) {
	stats := NewLLMStats(time.Hour)
	for _, ms := range []int{300, 100, 500, 200, 400} {
		stats.Record(time.Duration(ms)*time.Millisecond, false)
	}
	stats.Record(0, true)

	snap := stats.Snapshot()
	assert.Equal(t, 6, snap.Count)
	assert.Equal(t, 1, snap.Failed)
	assert.Equal(t, int64(0), snap.MinMs)
	assert.Equal(t, int64(500), snap.MaxMs)
	assert.Equal(t, 250.0, snap.AvgMs)
	assert.Equal(t, 250.0, snap.P50Ms)
	assert.InDelta(t, 475.0, snap.P95Ms, 1e-9)
	assert.InDelta(t, 495.0, snap.P99Ms, 1e-9)
}

func TestLLMStatsExpiresOldSamples(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	stats := NewLLMStats(time.Minute)
	stats.now = func() time.Time { return now }

	stats.Record(100*time.Millisecond, false)
	now = now.Add(2 * time.Minute)
	assert.Zero(t, stats.Snapshot().Count)

	stats.Record(200*time.Millisecond, false)
	snap := stats.Snapshot()
	assert.Equal(t, 1, snap.Count)
	assert.Equal(t, int64(200), snap.MinMs)
	assert.Equal(t, int64(200), snap.MaxMs)
}

func TestLLMStatsClampsNegativeDuration(t *testing.T) {
	stats := NewLLMStats(0)
	stats.Record(-time.Second, false)
	snap := stats.Snapshot()
	assert.Equal(t, 1, snap.Count)
	assert.Equal(t, int64(0), snap.MaxMs)
}

func TestLLMStatsEmpty(t *testing.T) {
	assert.Equal(t, StatsSnapshot{}, NewLLMStats(time.Hour).Snapshot())
}
