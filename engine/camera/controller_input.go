package camera

import (
	"math/bits"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Input sensitivities, in radians per unit of damped input.
const (
	keyboardPitchStep = 0.068
	keyboardYawStep   = 0.062
	keyboardPanStep   = 0.05
	keyboardZoomStep  = 0.1

	mousePitchScale = 0.0038
	mouseYawScale   = 0.0042
	wheelZoomScale  = 0.01

	touchPitchScale = 0.004
	touchYawScale   = 0.0055
)

// InputAdapter translates one device's payloads into changes of the shared controller
// state. Poll runs synchronously inside the frame and must not retain the state.
type InputAdapter interface {
	// Poll reads the device and applies its deltas to state.
	//
	// Parameters:
	//   - state: the controller state for the current frame
	Poll(state *ControllerState)
}

// Inputs groups the three adapters a controller polls. Nil entries are skipped.
type Inputs struct {
	Keyboard InputAdapter
	Mouse    InputAdapter
	Touch    InputAdapter
}

// KeyboardInput rotates with directional keys and, while the modifier is held, pans,
// zooms and resets instead.
type KeyboardInput struct {
	device   input.KeyboardDevice
	bindings input.Bindings
}

var _ InputAdapter = &KeyboardInput{}

// NewKeyboardInput creates a keyboard adapter.
//
// Parameters:
//   - device: the keyboard to poll
//   - extension: extra key bindings appended to the defaults (may be nil)
//
// Returns:
//   - *KeyboardInput: the adapter
func NewKeyboardInput(device input.KeyboardDevice, extension input.Bindings) *KeyboardInput {
	return &KeyboardInput{device: device, bindings: extension}
}

func (k *KeyboardInput) Poll(state *ControllerState) {
	if k == nil || k.device == nil {
		return
	}
	k.device.PollKeyboard(func(ev input.KeyboardEvent) {
		applyKeyboard(state, ev.Keys, input.NewCommandMappings(ev.Keys, k.bindings))
	})
}

// applyKeyboard applies one keyboard snapshot. The modifier branch and the rotation
// branch are mutually exclusive.
func applyKeyboard(state *ControllerState, keys map[string]bool, mappings *input.CommandMappings) {
	if mappings.Value(input.ActionSuspend) {
		return
	}

	damping := state.Damping
	if mappings.Value(input.ActionModifier) {
		if keys[common.Key0] {
			switch {
			case state.Zoom.ByFov():
				state.Zoom.setFov(state.InitialFov)
			case state.Zoom.ByOffset():
				state.Position[2] = 0
			}
		} else if keys[common.KeyEqual] || keys[common.KeyPlus] || keys[common.KeyMinus] {
			dv := float32(keyboardZoomStep) * damping
			if keys[common.KeyEqual] || keys[common.KeyPlus] {
				dv = -dv
			}
			switch {
			case state.Zoom.ByFov():
				state.Zoom.addFov(dv)
			case state.Zoom.ByOffset():
				state.Translation[2] = clampNonNegative(state.Translation[2] + dv)
			}
		}

		if keys[common.KeySpace] {
			state.Euler[0], state.Euler[1] = 0, 0
			state.Position[0], state.Position[1], state.Position[2] = 0, 0, 0
			state.Offset[0], state.Offset[1], state.Offset[2] = 0, 0, 0
		}

		if mappings.Value(input.ActionUp) {
			state.Translation[2] -= keyboardPanStep
		} else if mappings.Value(input.ActionDown) {
			state.Translation[2] += keyboardPanStep
		}

		if mappings.Value(input.ActionLeft) {
			state.Translation[0] -= keyboardPanStep
		} else if mappings.Value(input.ActionRight) {
			state.Translation[0] += keyboardPanStep
		}
		return
	}

	sign := state.sign()
	if mappings.Value(input.ActionUp) {
		state.Euler[0] += sign * keyboardPitchStep * damping
	} else if mappings.Value(input.ActionDown) {
		state.Euler[0] -= sign * keyboardPitchStep * damping
	}

	if mappings.Value(input.ActionLeft) {
		state.Euler[1] += sign * keyboardYawStep * damping
	} else if mappings.Value(input.ActionRight) {
		state.Euler[1] -= sign * keyboardYawStep * damping
	}
}

// MouseInput rotates while exactly one button is dragged and zooms with the wheel.
type MouseInput struct {
	device input.MouseDevice
}

var _ InputAdapter = &MouseInput{}

// NewMouseInput creates a pointer adapter.
//
// Parameters:
//   - device: the mouse to poll
//
// Returns:
//   - *MouseInput: the adapter
func NewMouseInput(device input.MouseDevice) *MouseInput {
	return &MouseInput{device: device}
}

func (m *MouseInput) Poll(state *ControllerState) {
	if m == nil || m.device == nil {
		return
	}
	m.device.PollMouse(func(ev input.MouseEvent) {
		if bits.OnesCount32(ev.Buttons) != 1 || (ev.DeltaX == 0 && ev.DeltaY == 0) {
			return
		}
		sign := -state.sign()
		state.Euler[0] += sign * mousePitchScale * ev.DeltaY * state.Damping
		state.Euler[1] += sign * mouseYawScale * ev.DeltaX * state.Damping
	})
	m.device.PollWheel(func(ev input.WheelEvent) {
		if ev.DeltaY == 0 {
			return
		}
		dv := wheelZoomScale * state.ZoomDamping * state.Damping * ev.DeltaY
		switch {
		case state.Zoom.ByFov():
			state.Zoom.addFov(dv)
		case state.Zoom.ByOffset():
			state.Offset[2] = clampNonNegative(state.Offset[2] + dv)
		}
	})
}

// TouchInput rotates with single-finger drags. Multi-touch gestures are left to the host.
type TouchInput struct {
	device input.TouchDevice
}

var _ InputAdapter = &TouchInput{}

// NewTouchInput creates a touch adapter.
//
// Parameters:
//   - device: the touch surface to poll
//
// Returns:
//   - *TouchInput: the adapter
func NewTouchInput(device input.TouchDevice) *TouchInput {
	return &TouchInput{device: device}
}

func (t *TouchInput) Poll(state *ControllerState) {
	if t == nil || t.device == nil {
		return
	}
	t.device.PollTouch(func(ev input.TouchEvent) {
		if len(ev.Touches) != 1 {
			return
		}
		touch := ev.Touches[0]
		sign := -state.sign()
		state.Euler[0] += sign * touchPitchScale * touch.DeltaY * state.Damping
		state.Euler[1] += sign * touchYawScale * touch.DeltaX * state.Damping
	})
}

// clampNonNegative clamps v to [0, +Inf); NaN becomes 0.
func clampNonNegative(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return mgl32.Clamp(v, 0, math32.Inf(1))
}
