package summarize

import (
	"slices"
	"sync"
	"time"
)

type callSample struct {
	at       time.Time
	duration time.Duration
	failed   bool
}

// StatsSnapshot aggregates the calls still inside the window.
type StatsSnapshot struct {
	Count  int     `json:"count"`
	Failed int     `json:"failed"`
	MinMs  int64   `json:"min_ms"`
	MaxMs  int64   `json:"max_ms"`
	AvgMs  float64 `json:"avg_ms"`
	P50Ms  float64 `json:"p50_ms"`
	P95Ms  float64 `json:"p95_ms"`
	P99Ms  float64 `json:"p99_ms"`
}

// LLMStats keeps a rolling window of completion call latencies.
// It is safe for concurrent use; the HTTP server shares one across requests.
type LLMStats struct {
	mu      sync.Mutex
	window  time.Duration
	samples []callSample
	now     func() time.Time
}

func NewLLMStats(window time.Duration) *LLMStats {
	if window <= 0 {
		window = time.Hour
	}
	return &LLMStats{window: window, now: time.Now}
}

// Record adds one call. Negative durations count as zero.
func (s *LLMStats) Record(d time.Duration, failed bool) {
	d = max(d, 0)
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.expireLocked(now)
	s.samples = append(s.samples, callSample{at: now, duration: d, failed: failed})
}

func (s *LLMStats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked(s.now())
	if len(s.samples) == 0 {
		return StatsSnapshot{}
	}

	ms := make([]int64, len(s.samples))
	var total int64
	snap := StatsSnapshot{Count: len(s.samples)}
	for i, c := range s.samples {
		ms[i] = c.duration.Milliseconds()
		total += ms[i]
		if c.failed {
			snap.Failed++
		}
	}
	slices.Sort(ms)

	snap.MinMs = ms[0]
	snap.MaxMs = ms[len(ms)-1]
	snap.AvgMs = float64(total) / float64(len(ms))
	snap.P50Ms = interpolate(ms, 50)
	snap.P95Ms = interpolate(ms, 95)
	snap.P99Ms = interpolate(ms, 99)
	return snap
}

func (s *LLMStats) expireLocked(now time.Time) {
	cutoff := now.Add(-s.window)
	s.samples = slices.DeleteFunc(s.samples, func(c callSample) bool {
		return c.at.Before(cutoff)
	})
}

// interpolate returns the pct-th percentile of sorted values using linear
// interpolation between closest ranks.
func interpolate(sorted []int64, pct float64) float64 {
	switch {
	case len(sorted) == 0:
		return 0
	case pct <= 0:
		return float64(sorted[0])
	case pct >= 100:
		return float64(sorted[len(sorted)-1])
	}
	rank := float64(len(sorted)-1) * pct / 100
	lo := int(rank)
	if lo+1 >= len(sorted) {
		return float64(sorted[lo])
	}
	frac := rank - float64(lo)
	return float64(sorted[lo]) + frac*float64(sorted[lo+1]-sorted[lo])
}
