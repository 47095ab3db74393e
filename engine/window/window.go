package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// Window provides platform windowing and feeds keyboard and pointer input into buffered
// devices that camera controllers poll once per frame.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// Keyboard returns the keyboard buffer fed by this window.
	//
	// Returns:
	//   - input.Keyboard: the keyboard buffer
	Keyboard() input.Keyboard

	// Mouse returns the pointer buffer fed by this window.
	//
	// Returns:
	//   - input.Mouse: the mouse buffer
	Mouse() input.Mouse

	// HasFocus reports whether the window currently receives input.
	// A Window can be used directly as a controller focus gate.
	//
	// Returns:
	//   - bool: true if the window is focused
	HasFocus() bool

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// RequestClose asks the message loop to exit after the current iteration.
	RequestClose()

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth is the maximum allowed window width during resize.
	maxWidth int

	// maxHeight is the maximum allowed window height during resize.
	maxHeight int

	// minWidth is the minimum allowed window width during resize.
	minWidth int

	// minHeight is the minimum allowed window height during resize.
	minHeight int

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// keyboard and mouse are the buffers platform callbacks write into.
	keyboard input.Keyboard
	mouse    input.Mouse

	// scrollScale converts one wheel notch into wheel delta units.
	scrollScale float32

	// input translates platform callbacks into device input.
	input *bridge

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:       "Orbit",
		maxWidth:    3840,
		maxHeight:   2160,
		minWidth:    320,
		minHeight:   200,
		width:       1280,
		height:      720,
		scrollScale: DefaultScrollScale,
	}
	for _, opt := range options {
		opt(w)
	}
	if w.keyboard == nil {
		w.keyboard = input.NewKeyboard()
	}
	if w.mouse == nil {
		w.mouse = input.NewMouse()
	}
	w.input = newBridge(w.keyboard, w.mouse, w.scrollScale)

	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) Keyboard() input.Keyboard {
	return w.keyboard
}

func (w *engineWindow) Mouse() input.Mouse {
	return w.mouse
}

func (w *engineWindow) HasFocus() bool {
	return w.input.focused
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
