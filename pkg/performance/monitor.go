package performance

import (
	"sync"
	"time"

	"github.com/apex/log"
)

// RollingAverage keeps the mean of the last n durations. It is not safe for
// concurrent use on its own; FrameMonitor guards it.
type RollingAverage struct {
	samples []time.Duration
	sum     time.Duration
	next    int
	filled  bool
}

// NewRollingAverage creates a rolling average over window samples
func NewRollingAverage(window int) *RollingAverage {
	if window < 1 {
		window = 1
	}
	return &RollingAverage{samples: make([]time.Duration, window)}
}

// Add records a sample, replacing the oldest one once the window is full.
func (r *RollingAverage) Add(d time.Duration) {
	r.sum += d - r.samples[r.next]
	r.samples[r.next] = d

	r.next++
	if r.next == len(r.samples) {
		r.next = 0
		r.filled = true
	}
}

// Count returns the number of samples in the window
func (r *RollingAverage) Count() int {
	if r.filled {
		return len(r.samples)
	}
	return r.next
}

// Average returns the mean of the samples in the window, or 0 with none.
func (r *RollingAverage) Average() time.Duration {
	n := r.Count()
	if n == 0 {
		return 0
	}
	return r.sum / time.Duration(n)
}

// Reset drops all samples
func (r *RollingAverage) Reset() {
	for i := range r.samples {
		r.samples[i] = 0
	}
	r.sum = 0
	r.next = 0
	r.filled = false
}

// FrameMonitor tracks how long the screen spends updating and drawing each
// frame, and how often a frame overruns its budget.
type FrameMonitor struct {
	mu sync.Mutex

	budget      time.Duration
	reportEvery int

	update *RollingAverage
	draw   *RollingAverage
	total  *RollingAverage

	frames     int
	overBudget int
	startTime  time.Time
}

// Report is a summary of recent frame timings.
type Report struct {
	AvgUpdateMs float64
	AvgDrawMs   float64
	AvgTotalMs  float64
	BudgetMs    float64
	Frames      int
	OverBudget  int
	// OverBudgetRate is the percentage of frames that overran the budget.
	OverBudgetRate float64
	Uptime         time.Duration
	Memory         GoMemoryStats
}

// Healthy reports whether frames fit the budget on average and overruns are
// rare.
func (r Report) Healthy() bool {
	return r.OverBudgetRate < 1.0 && r.AvgTotalMs <= r.BudgetMs
}

// NewFrameMonitor creates a monitor for the given frame rate. window is the
// number of frames averaged; a report is logged every reportEvery frames
// (never when zero).
func NewFrameMonitor(targetFPS, window, reportEvery int) *FrameMonitor {
	if targetFPS <= 0 {
		targetFPS = 60
	}
	return &FrameMonitor{
		budget:      time.Second / time.Duration(targetFPS),
		reportEvery: reportEvery,
		update:      NewRollingAverage(window),
		draw:        NewRollingAverage(window),
		total:       NewRollingAverage(window),
		startTime:   time.Now(),
	}
}

// Budget returns the time one frame may take.
func (m *FrameMonitor) Budget() time.Duration {
	return m.budget
}

// RecordFrame records the update and draw time of one frame. It returns true
// when a periodic report is due and was logged.
func (m *FrameMonitor) RecordFrame(update, draw time.Duration) bool {
	m.mu.Lock()
	total := update + draw
	m.update.Add(update)
	m.draw.Add(draw)
	m.total.Add(total)
	m.frames++
	if total > m.budget {
		m.overBudget++
	}
	due := m.reportEvery > 0 && m.frames%m.reportEvery == 0
	m.mu.Unlock()

	if !due {
		return false
	}
	m.GetReport().Log()
	return true
}

// GetReport returns the current metrics
func (m *FrameMonitor) GetReport() Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	rate := 0.0
	if m.frames > 0 {
		rate = float64(m.overBudget) / float64(m.frames) * 100.0
	}

	return Report{
		AvgUpdateMs:    ms(m.update.Average()),
		AvgDrawMs:      ms(m.draw.Average()),
		AvgTotalMs:     ms(m.total.Average()),
		BudgetMs:       ms(m.budget),
		Frames:         m.frames,
		OverBudget:     m.overBudget,
		OverBudgetRate: rate,
		Uptime:         time.Since(m.startTime),
		Memory:         GetGoMemory(),
	}
}

// Log writes the report at debug level, or as a warning when frames are
// overrunning their budget.
func (r Report) Log() {
	entry := log.WithFields(log.Fields{
		"update_ms":   r.AvgUpdateMs,
		"draw_ms":     r.AvgDrawMs,
		"total_ms":    r.AvgTotalMs,
		"frames":      r.Frames,
		"over_budget": r.OverBudget,
		"heap":        r.Memory.HeapString(),
		"gc":          r.Memory.NumGC,
	})
	if r.Healthy() {
		entry.Debug("frame timings")
		return
	}
	entry.Warn("frame timings over budget")
}

// Reset clears all metrics
func (m *FrameMonitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.update.Reset()
	m.draw.Reset()
	m.total.Reset()
	m.frames = 0
	m.overBudget = 0
	m.startTime = time.Now()
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
