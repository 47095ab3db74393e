package engine

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost runs a fixed number of loop iterations, or fewer if closed.
type fakeHost struct {
	iterations int
	update     func()
	closed     int
}

func (h *fakeHost) SetUpdateCallback(callback func()) { h.update = callback }

func (h *fakeHost) ProcessMessages() {
	for i := 0; i < h.iterations && h.closed == 0; i++ {
		if h.update != nil {
			h.update()
		}
	}
}

func (h *fakeHost) RequestClose() { h.closed++ }

func TestLayersRunInKeyOrder(t *testing.T) {
	var order []int
	e := NewEngine(
		WithLayer(10, func(float32) { order = append(order, 10) }),
		WithLayer(-1, func(float32) { order = append(order, -1) }),
	)
	e.AddLayer(3, func(float32) { order = append(order, 3) })
	e.AddLayer(4, nil)

	e.Step(0.016)

	assert.Equal(t, []int{-1, 3, 10}, order)
	assert.Equal(t, []int{-1, 3, 10}, e.Layers())
	assert.Equal(t, uint64(1), e.Frames())

	e.RemoveLayer(3)
	assert.Equal(t, []int{-1, 10}, e.Layers())
}

func TestRunDrivesFramesFromHost(t *testing.T) {
	clock := time.Unix(0, 0)
	now := func() time.Time { return clock }
	host := &fakeHost{iterations: 3}

	var deltas []float32
	e := NewEngine(WithHost(host), withClock(now, func(time.Duration) {}), WithLayer(0, func(dt float32) {
		deltas = append(deltas, dt)
		clock = clock.Add(20 * time.Millisecond)
	}))

	e.Run()

	assert.Equal(t, uint64(3), e.Frames())
	require.Len(t, deltas, 3)
	assert.InDelta(t, 0, deltas[0], 1e-9)
	assert.InDelta(t, 0.02, deltas[1], 1e-6)
	assert.Same(t, host, e.Host())
}

func TestFrameLimitSleepsRemainder(t *testing.T) {
	clock := time.Unix(0, 0)
	var slept []time.Duration
	host := &fakeHost{iterations: 2}
	e := NewEngine(
		WithHost(host),
		WithFrameLimit(50),
		withClock(func() time.Time { return clock }, func(d time.Duration) { slept = append(slept, d) }),
		WithLayer(0, func(float32) { clock = clock.Add(5 * time.Millisecond) }),
	)

	e.Run()

	assert.Equal(t, []time.Duration{15 * time.Millisecond, 15 * time.Millisecond}, slept)

	e.SetFrameLimit(0)
	slept = nil
	host.iterations = 1
	e.Run()
	assert.Empty(t, slept)
}

func TestPanickingLayerQuits(t *testing.T) {
	var buf bytes.Buffer
	host := &fakeHost{iterations: 5}
	ran := 0
	e := NewEngine(WithHost(host), WithLogger(zerolog.New(&buf)), WithLayer(0, func(float32) {
		ran++
		panic("boom")
	}))

	assert.NotPanics(t, e.Run)
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, host.closed)
	assert.Contains(t, buf.String(), "boom")

	e.Quit()
	assert.Equal(t, 1, host.closed, "quit is idempotent")
}

func TestRunWithoutHost(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(WithLogger(zerolog.New(&buf)))
	e.Run()
	e.Quit()
	assert.Contains(t, buf.String(), "no host")
}

func TestProfilerToggles(t *testing.T) {
	e := NewEngine(WithProfiling(true)).(*engine)
	assert.True(t, e.profilingEnabled)
	e.DisableProfiler()
	assert.False(t, e.profilingEnabled)
	e.EnableProfiler()
	e.Step(0)
	assert.Equal(t, uint64(1), e.profiler.Frames())
}
