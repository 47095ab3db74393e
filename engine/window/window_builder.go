package window

import "github.com/Carmen-Shannon/oxy-orbit/engine/input"

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSizeLimits sets the minimum and maximum window size.
//
// Parameters:
//   - minWidth, minHeight: minimum size in pixels
//   - maxWidth, maxHeight: maximum size in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth = minWidth
		w.minHeight = minHeight
		w.maxWidth = maxWidth
		w.maxHeight = maxHeight
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.height = height
	}
}

// WithKeyboard feeds key events into an existing keyboard buffer instead of a new one.
//
// Parameters:
//   - keyboard: the buffer to write into
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithKeyboard(keyboard input.Keyboard) WindowBuilderOption {
	return func(w *engineWindow) {
		w.keyboard = keyboard
	}
}

// WithMouse feeds pointer events into an existing mouse buffer instead of a new one.
//
// Parameters:
//   - mouse: the buffer to write into
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMouse(mouse input.Mouse) WindowBuilderOption {
	return func(w *engineWindow) {
		w.mouse = mouse
	}
}

// WithScrollScale sets how many wheel delta units one wheel notch produces.
// Values <= 0 keep DefaultScrollScale.
//
// Parameters:
//   - scale: wheel delta units per notch
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithScrollScale(scale float32) WindowBuilderOption {
	return func(w *engineWindow) {
		if scale > 0 {
			w.scrollScale = scale
		}
	}
}
