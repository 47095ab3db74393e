package profiler

import (
	"bytes"
	"encoding/json"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestProfilerLogsOncePerInterval(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(zerolog.New(&buf), WithInterval(time.Second), WithClock(clock.now))

	for n := 0; n < 9; n++ {
		clock.advance(100 * time.Millisecond)
		assert.False(t, p.Tick())
	}
	assert.Zero(t, buf.Len())

	clock.advance(100 * time.Millisecond)
	require.True(t, p.Tick())

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "profiler", event["message"])
	assert.Equal(t, "info", event["level"])
	assert.InDelta(t, 10, event["fps"], 1e-9)
	assert.EqualValues(t, 10, event["frames"])
	assert.Contains(t, event, "heap_mb")
	assert.Contains(t, event, "gc_max_us")

	buf.Reset()
	clock.advance(500 * time.Millisecond)
	assert.False(t, p.Tick())
	assert.Equal(t, uint64(11), p.Frames())
}

func TestProfilerOptionsIgnoreInvalidValues(t *testing.T) {
	p := NewProfiler(zerolog.Nop(), WithInterval(-1), WithClock(nil))
	assert.Equal(t, time.Second, p.updateInterval)
	assert.NotNil(t, p.now)
}

func TestProfilerSeedsAllocationBaseline(t *testing.T) {
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	p := NewProfiler(zerolog.Nop())

	assert.GreaterOrEqual(t, p.lastTotalAlloc, before.TotalAlloc)
	assert.GreaterOrEqual(t, p.lastGCCount, before.NumGC)
	assert.NotZero(t, p.lastTotalAlloc)
}
