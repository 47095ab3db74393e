package window

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// DefaultScrollScale converts one wheel notch into wheel delta units.
const DefaultScrollScale = 100

// bridge turns platform callbacks into buffered device input.
// All methods run on the message loop thread.
type bridge struct {
	keyboard    input.Keyboard
	mouse       input.Mouse
	scrollScale float32

	focused   bool
	hasCursor bool
	lastX     float64
	lastY     float64
}

func newBridge(keyboard input.Keyboard, mouse input.Mouse, scrollScale float32) *bridge {
	return &bridge{
		keyboard:    keyboard,
		mouse:       mouse,
		scrollScale: scrollScale,
		focused:     true,
	}
}

// key records a press or release of a named key.
func (b *bridge) key(name string, pressed bool) {
	if name == "" {
		return
	}
	if pressed {
		b.keyboard.Press(name)
	} else {
		b.keyboard.Release(name)
	}
}

// modifiers mirrors the platform's modifier state onto the generic modifier names.
func (b *bridge) modifiers(shift, control, alt, super bool) {
	b.key(common.KeyShift, shift)
	b.key(common.KeyControl, control)
	b.key(common.KeyAlt, alt)
	b.key(common.KeySuper, super)
}

func (b *bridge) button(bit uint32, pressed bool) {
	if bit == 0 {
		return
	}
	b.mouse.SetButton(bit, pressed)
}

// cursor converts absolute cursor positions into motion deltas.
// The first position after construction or a focus change only seeds the origin.
func (b *bridge) cursor(x, y float64) {
	if !b.hasCursor {
		b.lastX, b.lastY = x, y
		b.hasCursor = true
		return
	}
	b.mouse.Move(float32(x-b.lastX), float32(y-b.lastY))
	b.lastX, b.lastY = x, y
}

// scroll converts a vertical wheel offset (positive away from the user) into a wheel
// delta that is positive toward the user.
func (b *bridge) scroll(yoff float64) {
	if yoff == 0 {
		return
	}
	b.mouse.Scroll(float32(-yoff) * b.scrollScale)
}

// focus tracks input focus. Losing focus releases every key and button so nothing
// stays held while events go to another window.
func (b *bridge) focus(focused bool) {
	b.focused = focused
	b.hasCursor = false
	if focused {
		return
	}
	b.keyboard.Reset()
	for _, bit := range []uint32{input.ButtonPrimary, input.ButtonSecondary, input.ButtonMiddle} {
		b.mouse.SetButton(bit, false)
	}
}
