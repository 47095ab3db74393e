// Package input defines the normalized device payloads consumed by the orbit controller,
// the buffered devices that accumulate them between frames, and the named command
// mappings resolved from key sets.
package input

// Mouse button bits carried in MouseEvent.Buttons.
const (
	ButtonPrimary   uint32 = 1 << 0
	ButtonSecondary uint32 = 1 << 1
	ButtonMiddle    uint32 = 1 << 2
)

// KeyboardEvent is a snapshot of the currently held keys, keyed by canonical key name.
type KeyboardEvent struct {
	// Keys maps a key name (see the common.Key* constants) to whether it is held.
	Keys map[string]bool
}

// MouseEvent carries the held button mask and the pointer motion accumulated since the last poll.
type MouseEvent struct {
	// Buttons is a bitmask of held buttons (ButtonPrimary, ButtonSecondary, ButtonMiddle).
	Buttons uint32
	// DeltaX is the horizontal motion in pixels. Positive moves right.
	DeltaX float32
	// DeltaY is the vertical motion in pixels. Positive moves down.
	DeltaY float32
}

// WheelEvent carries the wheel motion accumulated since the last poll.
type WheelEvent struct {
	// DeltaY is the vertical scroll amount. Positive scrolls toward the user (zoom out).
	DeltaY float32
}

// TouchPoint is one active touch and its motion since the last poll.
type TouchPoint struct {
	ID     int
	DeltaX float32
	DeltaY float32
}

// TouchEvent lists the active touches in the order they began.
type TouchEvent struct {
	Touches []TouchPoint
}
