package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController is an orbit-camera controller. Once per rendered frame, Update fuses
// the keyboard, pointer and touch deltas accumulated since the previous frame into a
// clamped pitch/yaw state, turns that state into a smoothed orientation quaternion,
// eases the position toward its pan/zoom target and renders the result through the
// attached Sink. The pose the Sink reports back is persisted into the next frame.
//
// Update must be called from one goroutine at a time, once per frame; the accessors may
// be called from anywhere, including from inside the frame continuation.
type CameraController interface {
	// Update advances the controller by one frame and renders through the sink.
	// next is invoked synchronously with the authoritative pose once the sink responds.
	//
	// Parameters:
	//   - args: per-frame overrides and flags
	//   - next: the caller's continuation (may be nil)
	//
	// Returns:
	//   - Pose: the authoritative pose after this frame
	Update(args FrameArgs, next FrameFunc) Pose

	// State returns a copy of the controller state.
	//
	// Returns:
	//   - ControllerState: detached copy of the current state
	State() ControllerState

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the orbit pivot.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// Euler returns the clamped (pitch, yaw) angles.
	//
	// Returns:
	//   - mgl32.Vec2: pitch and yaw in radians
	Euler() mgl32.Vec2

	// Rotation returns the smoothed orientation last handed to the sink.
	//
	// Returns:
	//   - mgl32.Quat: unit rotation quaternion
	Rotation() mgl32.Quat

	// Fov returns the current field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Zoom returns a copy of the active zoom policy.
	//
	// Returns:
	//   - ZoomPolicy: the zoom policy
	Zoom() ZoomPolicy

	// Frames returns how many times Update has run.
	//
	// Returns:
	//   - uint64: frame count
	Frames() uint64

	// Inputs returns the adapters polled each focused frame.
	//
	// Returns:
	//   - Inputs: keyboard, mouse and touch adapters
	Inputs() Inputs

	// Devices returns the device buffers created for default adapters. Entries are nil
	// for adapters that were supplied through options.
	//
	// Returns:
	//   - Devices: the default keyboard, mouse and touch buffers
	Devices() Devices
}

// FocusGate reports whether the hosting context currently owns input focus.
type FocusGate interface {
	HasFocus() bool
}

// FocusFunc adapts a plain function to the FocusGate interface.
type FocusFunc func() bool

// HasFocus calls f().
func (f FocusFunc) HasFocus() bool {
	return f()
}

// alwaysFocused is the gate used when none is configured.
var alwaysFocused = FocusFunc(func() bool { return true })

// Devices holds the buffers backing the default input adapters.
type Devices struct {
	Keyboard input.Keyboard
	Mouse    input.Mouse
	Touch    input.Touch
}

// FrameArgs carries optional per-frame overrides. Nil pointers leave the persistent
// value untouched; non-nil values are copied in, never aliased.
type FrameArgs struct {
	Rotation    *mgl32.Quat
	Orientation *mgl32.Quat
	MinEuler    *mgl32.Vec2
	MaxEuler    *mgl32.Vec2
	Euler       *mgl32.Vec2
	Position    *mgl32.Vec3
	Target      *mgl32.Vec3
	Fov         *float32

	Damping             *float32
	InterpolationFactor *float32
	Invert              *bool
	Zoom                *ZoomPolicy

	// Direction and WorldUp override the basis the pitch and yaw axes are derived from.
	Direction *mgl32.Vec3
	WorldUp   *mgl32.Vec3

	// PitchOnly advances only the pitch rotation this frame; YawOnly only the yaw.
	PitchOnly bool
	YawOnly   bool

	// Inputs replaces the non-nil adapters for this frame only.
	Inputs *Inputs

	// Attachments is passed through to the sink request and the continuation.
	Attachments map[string]any
}

// Frame is what the continuation receives: the authoritative pose plus the caller's attachments.
type Frame struct {
	Pose
	Attachments map[string]any
}

// FrameFunc is the caller continuation invoked at the end of every frame.
type FrameFunc func(Frame)
