package engine

import (
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/rs/zerolog"
)

// Host is the platform message loop the engine drives frames from.
// window.Window satisfies it.
type Host interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// ProcessMessages runs the message loop until the host closes.
	ProcessMessages()

	// RequestClose asks the message loop to exit after the current iteration.
	RequestClose()
}

// FrameFunc is a per-frame callback receiving the delta time in seconds.
type FrameFunc func(deltaTime float32)

// engine implements the Engine interface.
// Runs every registered frame callback on the host's message loop thread.
type engine struct {
	mu *sync.Mutex

	host   Host
	logger zerolog.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	layers map[int]FrameFunc

	frameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastFrame  time.Time
	now        func() time.Time
	sleep      func(time.Duration)

	quitOnce sync.Once
	frames   uint64
}

// Engine drives per-frame callbacks from a host message loop.
// Input delivery, controller updates and rendering all happen on the loop thread, so a
// frame always sees the input that arrived before it.
type Engine interface {
	// Host returns the message loop the engine runs on.
	//
	// Returns:
	//   - Host: the host instance
	Host() Host

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// AddLayer registers a frame callback at the given z-index key.
	// Layers run in ascending key order every frame.
	//
	// Parameters:
	//   - key: the z-index determining run order (lower runs first)
	//   - fn: the callback to run
	AddLayer(key int, fn FrameFunc)

	// RemoveLayer removes the layer at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the layer to remove
	RemoveLayer(key int)

	// Layers returns the registered z-index keys in run order.
	//
	// Returns:
	//   - []int: sorted layer keys
	Layers() []int

	// Step runs one frame with an explicit delta time.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	Step(deltaTime float32)

	// Frames returns how many frames have run.
	//
	// Returns:
	//   - uint64: frame count
	Frames() uint64

	// Run starts the host message loop (blocks until the host closes).
	Run()

	// Quit asks the host to close. Safe to call multiple times.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (host, profiling, frame limit, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:     &sync.Mutex{},
		logger: zerolog.Nop(),
		layers: make(map[int]FrameFunc),
		now:    time.Now,
		sleep:  time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(e.logger)
	}

	return e
}

func (e *engine) Host() Host {
	return e.host
}

// Run registers the frame callback with the host and blocks in its message loop.
func (e *engine) Run() {
	if e.host == nil {
		e.logger.Error().Msg("engine has no host to run on")
		return
	}
	e.lastFrame = e.now()
	e.host.SetUpdateCallback(e.frame)
	e.host.ProcessMessages()
}

// Quit asks the host to close.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if e.host != nil {
			e.host.RequestClose()
		}
	})
}

// frame measures the delta time, runs one step and applies the frame limit.
func (e *engine) frame() {
	start := e.now()
	dt := float32(start.Sub(e.lastFrame).Seconds())
	e.lastFrame = start

	e.Step(dt)

	if e.frameLimit > 0 {
		if remaining := e.frameLimit - e.now().Sub(start); remaining > 0 {
			e.sleep(remaining)
		}
	}
}

// Step runs every layer in ascending z-index order.
// A panicking layer is logged and the host is asked to close.
func (e *engine) Step(dt float32) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Msg("frame recovered from panic")
			e.Quit()
		}
	}()

	e.mu.Lock()
	keys := e.sortedKeys()
	layers := make([]FrameFunc, 0, len(keys))
	for _, k := range keys {
		layers = append(layers, e.layers[k])
	}
	e.mu.Unlock()

	for _, fn := range layers {
		fn(dt)
	}

	e.mu.Lock()
	e.frames++
	profiling := e.profilingEnabled
	e.mu.Unlock()

	if profiling && e.profiler != nil {
		e.profiler.Tick()
	}
}

// sortedKeys returns the layer keys in ascending order. Caller must hold the mutex.
func (e *engine) sortedKeys() []int {
	keys := make([]int, 0, len(e.layers))
	for k := range e.layers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

// SetFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetFrameLimit(fps float64) {
	e.frameLimit = frameDuration(fps)
}

func (e *engine) AddLayer(key int, fn FrameFunc) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.layers[key] = fn
}

func (e *engine) RemoveLayer(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.layers, key)
}

func (e *engine) Layers() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sortedKeys()
}

func (e *engine) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// frameDuration converts a frame rate cap to a minimum frame duration; 0 means uncapped.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
