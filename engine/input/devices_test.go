package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyboardSnapshot(t *testing.T) {
	kb := NewKeyboard()
	kb.Press("up")
	kb.Press("w")
	kb.Release("w")

	var ev KeyboardEvent
	kb.PollKeyboard(func(e KeyboardEvent) { ev = e })

	assert.True(t, ev.Keys["up"])
	assert.False(t, ev.Keys["w"])
	assert.True(t, kb.Pressed("up"), "held keys survive a poll")

	ev.Keys["down"] = true
	assert.False(t, kb.Pressed("down"), "the snapshot is detached")

	kb.Reset()
	assert.False(t, kb.Pressed("up"))
}

func TestMouseAccumulatesAndClears(t *testing.T) {
	m := NewMouse()
	m.SetButton(ButtonPrimary, true)
	m.SetButton(ButtonMiddle, true)
	m.SetButton(ButtonMiddle, false)
	m.Move(1, 2)
	m.Move(3, 4)
	m.Scroll(5)
	m.Scroll(-2)

	var ev MouseEvent
	var wheel WheelEvent
	m.PollMouse(func(e MouseEvent) { ev = e })
	m.PollWheel(func(e WheelEvent) { wheel = e })

	assert.Equal(t, MouseEvent{Buttons: ButtonPrimary, DeltaX: 4, DeltaY: 6}, ev)
	assert.Equal(t, float32(3), wheel.DeltaY)

	m.PollMouse(func(e MouseEvent) { ev = e })
	m.PollWheel(func(e WheelEvent) { wheel = e })
	assert.Equal(t, MouseEvent{Buttons: ButtonPrimary}, ev)
	assert.Equal(t, float32(0), wheel.DeltaY)
}

func TestTouchTracking(t *testing.T) {
	tc := NewTouch()
	tc.Begin(7)
	tc.Begin(7)
	tc.Move(7, 1, 2)
	tc.Move(9, 5, 5)

	var ev TouchEvent
	tc.PollTouch(func(e TouchEvent) { ev = e })
	require.Len(t, ev.Touches, 1)
	assert.Equal(t, TouchPoint{ID: 7, DeltaX: 1, DeltaY: 2}, ev.Touches[0])

	tc.PollTouch(func(e TouchEvent) { ev = e })
	assert.Equal(t, TouchPoint{ID: 7}, ev.Touches[0])

	tc.End(7)
	tc.PollTouch(func(e TouchEvent) { ev = e })
	assert.Empty(t, ev.Touches)
}
