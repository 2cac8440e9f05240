package performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollingAverage(t *testing.T) {
	r := NewRollingAverage(3)
	assert.Equal(t, time.Duration(0), r.Average())
	assert.Equal(t, 0, r.Count())

	r.Add(10 * time.Millisecond)
	r.Add(20 * time.Millisecond)
	assert.Equal(t, 15*time.Millisecond, r.Average())
	assert.Equal(t, 2, r.Count())

	r.Add(30 * time.Millisecond)
	r.Add(40 * time.Millisecond)
	assert.Equal(t, 3, r.Count())
	assert.Equal(t, 30*time.Millisecond, r.Average(), "oldest sample is dropped")

	r.Reset()
	assert.Equal(t, 0, r.Count())
	assert.Equal(t, time.Duration(0), r.Average())

	r.Add(6 * time.Millisecond)
	assert.Equal(t, 6*time.Millisecond, r.Average())
}

func TestRollingAverageMinimumWindow(t *testing.T) {
	r := NewRollingAverage(0)
	r.Add(time.Second)
	r.Add(2 * time.Second)
	assert.Equal(t, 2*time.Second, r.Average())
}

func TestFrameMonitor(t *testing.T) {
	m := NewFrameMonitor(50, 10, 0)
	require.Equal(t, 20*time.Millisecond, m.Budget())

	assert.False(t, m.RecordFrame(4*time.Millisecond, 6*time.Millisecond))
	assert.False(t, m.RecordFrame(10*time.Millisecond, 20*time.Millisecond))

	r := m.GetReport()
	assert.Equal(t, 2, r.Frames)
	assert.Equal(t, 1, r.OverBudget)
	assert.InDelta(t, 50.0, r.OverBudgetRate, 1e-9)
	assert.InDelta(t, 7.0, r.AvgUpdateMs, 1e-9)
	assert.InDelta(t, 13.0, r.AvgDrawMs, 1e-9)
	assert.InDelta(t, 20.0, r.AvgTotalMs, 1e-9)
	assert.InDelta(t, 20.0, r.BudgetMs, 1e-9)
	assert.False(t, r.Healthy())

	m.Reset()
	r = m.GetReport()
	assert.Equal(t, 0, r.Frames)
	assert.Equal(t, 0.0, r.AvgTotalMs)
	assert.True(t, r.Healthy())
}

func TestFrameMonitorReportsPeriodically(t *testing.T) {
	m := NewFrameMonitor(0, 4, 3)
	assert.Equal(t, time.Second/60, m.Budget())

	var due []bool
	for i := 0; i < 6; i++ {
		due = append(due, m.RecordFrame(time.Millisecond, time.Millisecond))
	}
	assert.Equal(t, []bool{false, false, true, false, false, true}, due)
}

func TestHeapString(t *testing.T) {
	s := GoMemoryStats{Alloc: 3_000_000, Sys: 12_000_000}
	assert.Equal(t, "3.0 MB / 12 MB", s.HeapString())

	assert.NotZero(t, GetGoMemory().Sys)
}
