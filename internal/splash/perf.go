package splash

import (
	"sync"
	"time"
)

// statsWindow caps the number of samples retained per operation; older samples
// roll off as new ones arrive.
const statsWindow = 50

// PerformanceMonitor records rolling per-operation timing statistics.
//
// Each operation name maps to a window of its most recent durations in
// milliseconds. The monitor is safe for concurrent use.
type PerformanceMonitor struct {
	mu      sync.Mutex
	now     func() time.Time
	samples map[string][]float64
}

// NewPerformanceMonitor creates a monitor backed by the system monotonic
// clock.
func NewPerformanceMonitor() *PerformanceMonitor {
	return NewPerformanceMonitorWithClock(time.Now)
}

// NewPerformanceMonitorWithClock creates a monitor reading time from now;
// tests inject a fake clock here.
func NewPerformanceMonitorWithClock(now func() time.Time) *PerformanceMonitor {
	return &PerformanceMonitor{
		now:     now,
		samples: make(map[string][]float64),
	}
}

// StartTimer begins timing an operation and returns the stop function that
// records the elapsed duration. Each call records exactly one sample when its
// stop function runs.
func (m *PerformanceMonitor) StartTimer(operation string) func() {
	start := m.now()
	return func() {
		elapsed := m.now().Sub(start)
		m.record(operation, float64(elapsed.Nanoseconds())/1e6)
	}
}

func (m *PerformanceMonitor) record(operation string, ms float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	window := append(m.samples[operation], ms)
	if len(window) > statsWindow {
		window = window[len(window)-statsWindow:]
	}
	m.samples[operation] = window
}

// OperationStats summarizes the rolling window for one operation. Durations
// are milliseconds rounded to two decimals.
type OperationStats struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Count   int     `json:"count"`
}

// Stats returns the summary for one operation, or nil if it has no samples
// yet.
func (m *PerformanceMonitor) Stats(operation string) *OperationStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return summarize(m.samples[operation])
}

// AllStats returns summaries for every operation with at least one sample.
func (m *PerformanceMonitor) AllStats() map[string]*OperationStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make(map[string]*OperationStats, len(m.samples))
	for op, window := range m.samples {
		if s := summarize(window); s != nil {
			all[op] = s
		}
	}
	return all
}

// Reset discards all recorded samples.
func (m *PerformanceMonitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples = make(map[string][]float64)
}

func summarize(window []float64) *OperationStats {
	if len(window) == 0 {
		return nil
	}
	min, max, sum := window[0], window[0], 0.0
	for _, v := range window {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return &OperationStats{
		Average: round2(sum / float64(len(window))),
		Min:     round2(min),
		Max:     round2(max),
		Count:   len(window),
	}
}
