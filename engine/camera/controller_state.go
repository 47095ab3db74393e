package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Controller defaults.
const (
	DefaultDamping             = float32(0.8)
	DefaultZoomDamping         = float32(1)
	DefaultInterpolationFactor = float32(1)
)

// ControllerState is the persistent per-controller orbit state. It is owned by exactly one
// controller, mutated in place once per frame and handed by pointer to each input adapter
// during that frame. It is never shared between controllers.
type ControllerState struct {
	// Euler holds (pitch, yaw) in radians, clamped to [MinEuler, MaxEuler] every frame.
	Euler    mgl32.Vec2
	MinEuler mgl32.Vec2
	MaxEuler mgl32.Vec2

	// Orientation accumulates the incremental pitch and yaw rotations.
	Orientation mgl32.Quat
	// Rotation is Orientation smoothed by the interpolation factor; it is what the camera receives.
	Rotation mgl32.Quat

	Position mgl32.Vec3
	Target   mgl32.Vec3
	// Translation is this frame's pan/zoom impulse. It is cleared at the end of every update.
	Translation mgl32.Vec3
	// Offset is the persistent dolly offset driven by wheel zoom.
	Offset mgl32.Vec3

	// Direction and Up are the last basis vectors reported by the camera.
	Direction mgl32.Vec3
	Up        mgl32.Vec3

	Fov        float32
	InitialFov float32

	Damping             float32
	ZoomDamping         float32
	InterpolationFactor float32
	Invert              bool
	Zoom                ZoomPolicy

	// ClampX is accepted for configuration compatibility and has no effect.
	ClampX bool

	// pitch and yaw are the incremental rotations slerped toward each frame.
	pitch mgl32.Quat
	yaw   mgl32.Quat
}

// newControllerState returns the state a controller starts from before options are applied.
func newControllerState() ControllerState {
	return ControllerState{
		MinEuler:            mgl32.Vec2{math32.Inf(-1), math32.Inf(-1)},
		MaxEuler:            mgl32.Vec2{math32.Inf(1), math32.Inf(1)},
		Orientation:         mgl32.QuatIdent(),
		Rotation:            mgl32.QuatIdent(),
		Direction:           mgl32.Vec3{0, 0, -1},
		Up:                  mgl32.Vec3{0, 1, 0},
		Fov:                 DefaultFov,
		InitialFov:          DefaultFov,
		Damping:             DefaultDamping,
		ZoomDamping:         DefaultZoomDamping,
		InterpolationFactor: DefaultInterpolationFactor,
		Zoom:                ZoomByOffset(),
		pitch:               mgl32.QuatIdent(),
		yaw:                 mgl32.QuatIdent(),
	}
}

// sign returns the rotation sign for the configured inversion.
func (s *ControllerState) sign() float32 {
	if s.Invert {
		return -1
	}
	return 1
}

// clone returns a copy that shares no mutable memory with s.
func (s *ControllerState) clone() ControllerState {
	out := *s
	out.Zoom = s.Zoom.clone()
	return out
}
