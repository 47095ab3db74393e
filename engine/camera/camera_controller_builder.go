package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithMinEuler sets the lower (pitch, yaw) bounds. Defaults to -Inf.
//
// Parameters:
//   - pitch: minimum pitch in radians
//   - yaw: minimum yaw in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the lower bounds
func WithMinEuler(pitch, yaw float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.MinEuler = mgl32.Vec2{pitch, yaw}
	}
}

// WithMaxEuler sets the upper (pitch, yaw) bounds. Defaults to +Inf.
//
// Parameters:
//   - pitch: maximum pitch in radians
//   - yaw: maximum yaw in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the upper bounds
func WithMaxEuler(pitch, yaw float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.MaxEuler = mgl32.Vec2{pitch, yaw}
	}
}

// WithEuler sets the initial (pitch, yaw) angles.
//
// Parameters:
//   - pitch: initial pitch in radians
//   - yaw: initial yaw in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the initial angles
func WithEuler(pitch, yaw float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.Euler = mgl32.Vec2{pitch, yaw}
	}
}

// WithPosition sets the initial camera position. Defaults to the origin.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.Position = mgl32.Vec3{x, y, z}
	}
}

// WithTarget sets the initial orbit pivot.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraControllerOption: functional option to set the target
func WithTarget(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.Target = mgl32.Vec3{x, y, z}
	}
}

// WithFov sets the initial field of view. It is also the value the reset-zoom key restores.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the field of view
func WithFov(fov float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.Fov = fov
	}
}

// WithInterpolationFactor sets how far committed state chases its target each frame.
// 1 (the default) applies changes immediately; 0 freezes the camera.
//
// Parameters:
//   - factor: blend weight in [0, 1]
//
// Returns:
//   - CameraControllerOption: functional option to set the interpolation factor
func WithInterpolationFactor(factor float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.InterpolationFactor = clampUnit(factor, DefaultInterpolationFactor)
	}
}

// WithDamping sets the attenuation applied to every input delta. Clamped to [0, 1].
//
// Parameters:
//   - damping: input attenuation (default 0.8)
//
// Returns:
//   - CameraControllerOption: functional option to set the damping
func WithDamping(damping float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.Damping = clampUnit(damping, DefaultDamping)
	}
}

// WithZoomDamping sets an extra multiplier for wheel zoom.
//
// Parameters:
//   - damping: wheel zoom multiplier (default 1)
//
// Returns:
//   - CameraControllerOption: functional option to set the zoom damping
func WithZoomDamping(damping float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.ZoomDamping = damping
	}
}

// WithInvert flips the sign of every rotation input.
//
// Parameters:
//   - invert: true to invert rotation input
//
// Returns:
//   - CameraControllerOption: functional option to set inversion
func WithInvert(invert bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.Invert = invert
	}
}

// WithZoom sets the zoom policy. Defaults to ZoomByOffset.
//
// Parameters:
//   - zoom: the zoom policy
//
// Returns:
//   - CameraControllerOption: functional option to set the zoom policy
func WithZoom(zoom ZoomPolicy) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.Zoom = zoom.clone()
	}
}

// WithClampX is accepted for configuration compatibility; the flag is stored and has no effect.
//
// Parameters:
//   - clampX: reserved flag
//
// Returns:
//   - CameraControllerOption: functional option to set the reserved flag
func WithClampX(clampX bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.ClampX = clampX
	}
}

// WithInputs replaces the non-nil adapters in inputs. Adapters left nil are default constructed.
//
// Parameters:
//   - inputs: the adapters to use
//
// Returns:
//   - CameraControllerOption: functional option to set the input adapters
func WithInputs(inputs Inputs) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if inputs.Keyboard != nil {
			cc.inputs.Keyboard = inputs.Keyboard
		}
		if inputs.Mouse != nil {
			cc.inputs.Mouse = inputs.Mouse
		}
		if inputs.Touch != nil {
			cc.inputs.Touch = inputs.Touch
		}
	}
}

// WithDevices sets the buffers the default adapters poll. Nil entries get fresh buffers.
//
// Parameters:
//   - devices: keyboard, mouse and touch buffers, typically fed by a window
//
// Returns:
//   - CameraControllerOption: functional option to set the device buffers
func WithDevices(devices Devices) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.devices = devices
	}
}

// WithKeyBindings appends key bindings to the defaults used by the default keyboard adapter.
//
// Parameters:
//   - bindings: extra keys per action
//
// Returns:
//   - CameraControllerOption: functional option to extend the key bindings
func WithKeyBindings(bindings input.Bindings) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bindings = bindings
	}
}

// WithFocusGate sets the gate consulted before any input is consumed. Defaults to always focused.
//
// Parameters:
//   - gate: the focus gate
//
// Returns:
//   - CameraControllerOption: functional option to set the focus gate
func WithFocusGate(gate FocusGate) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.focus = gate
	}
}

// WithLogger sets the logger used for debug diagnostics. Defaults to a no-op logger.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - CameraControllerOption: functional option to set the logger
func WithLogger(logger zerolog.Logger) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.logger = logger
	}
}
