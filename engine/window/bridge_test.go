package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/stretchr/testify/assert"
)

func newTestBridge() (*bridge, input.Keyboard, input.Mouse) {
	kb := input.NewKeyboard()
	m := input.NewMouse()
	return newBridge(kb, m, DefaultScrollScale), kb, m
}

func pollMouse(m input.Mouse) (input.MouseEvent, input.WheelEvent) {
	var ev input.MouseEvent
	var wheel input.WheelEvent
	m.PollMouse(func(e input.MouseEvent) { ev = e })
	m.PollWheel(func(e input.WheelEvent) { wheel = e })
	return ev, wheel
}

func TestBridgeKeys(t *testing.T) {
	b, kb, _ := newTestBridge()

	b.key("up", true)
	b.key("", true)
	assert.True(t, kb.Pressed("up"))

	b.key("up", false)
	assert.False(t, kb.Pressed("up"))
}

func TestBridgeModifiers(t *testing.T) {
	b, kb, _ := newTestBridge()

	b.modifiers(true, false, true, false)
	assert.True(t, kb.Pressed("shift"))
	assert.True(t, kb.Pressed("alt"))
	assert.False(t, kb.Pressed("control"))

	b.modifiers(false, false, false, true)
	assert.False(t, kb.Pressed("shift"))
	assert.True(t, kb.Pressed("super"))
}

func TestBridgeCursorDeltas(t *testing.T) {
	b, _, m := newTestBridge()

	b.cursor(100, 100)
	b.cursor(110, 95)
	b.cursor(112, 90)

	ev, _ := pollMouse(m)
	assert.Equal(t, float32(12), ev.DeltaX)
	assert.Equal(t, float32(-10), ev.DeltaY)
}

func TestBridgeScrollIsFlippedAndScaled(t *testing.T) {
	b, _, m := newTestBridge()

	b.scroll(1)
	b.scroll(0)
	_, wheel := pollMouse(m)
	assert.Equal(t, float32(-100), wheel.DeltaY)

	b.scroll(-0.5)
	_, wheel = pollMouse(m)
	assert.Equal(t, float32(50), wheel.DeltaY)
}

func TestBridgeFocusLossReleasesInput(t *testing.T) {
	b, kb, m := newTestBridge()
	assert.True(t, b.focused)

	b.key("left", true)
	b.button(input.ButtonPrimary, true)
	b.button(0, true)
	b.cursor(0, 0)

	b.focus(false)
	assert.False(t, b.focused)
	assert.False(t, kb.Pressed("left"))
	ev, _ := pollMouse(m)
	assert.Equal(t, uint32(0), ev.Buttons)

	b.focus(true)
	b.cursor(50, 50)
	ev, _ = pollMouse(m)
	assert.Equal(t, float32(0), ev.DeltaX, "cursor origin is re-seeded after a focus change")
}
