package camera

import (
	"errors"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// ErrNilSink is returned when a controller is constructed without a camera sink.
var ErrNilSink = errors.New("camera controller requires a sink")

// worldUp is the default yaw axis.
var worldUp = mgl32.Vec3{0, 1, 0}

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	state ControllerState
	pose  Pose

	sink     Sink
	inputs   Inputs
	devices  Devices
	bindings input.Bindings
	focus    FocusGate
	logger   zerolog.Logger

	frames uint64
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates an orbit controller rendering through sink.
// Adapters not supplied through WithInputs are default constructed on the buffers given
// by WithDevices, or on fresh ones, which are exposed through Devices so a host can feed them.
//
// Parameters:
//   - sink: the camera the controller renders through (required)
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
//   - error: ErrNilSink if sink is nil
func NewCameraController(sink Sink, options ...CameraControllerOption) (CameraController, error) {
	if sink == nil {
		return nil, ErrNilSink
	}

	cc := &cameraControllerImpl{
		mu:     &sync.Mutex{},
		state:  newControllerState(),
		sink:   sink,
		focus:  alwaysFocused,
		logger: zerolog.Nop(),
	}

	for _, option := range options {
		option(cc)
	}

	cc.state.InitialFov = cc.state.Fov
	cc.pose = Pose{
		Direction: cc.state.Direction,
		Position:  cc.state.Position,
		Target:    cc.state.Target,
		Up:        cc.state.Up,
		Fov:       cc.state.Fov,
	}

	if cc.inputs.Keyboard == nil {
		cc.devices.Keyboard = common.Coalesce(cc.devices.Keyboard, input.NewKeyboard())
		cc.inputs.Keyboard = NewKeyboardInput(cc.devices.Keyboard, cc.bindings)
	} else {
		cc.devices.Keyboard = nil
	}
	if cc.inputs.Mouse == nil {
		cc.devices.Mouse = common.Coalesce(cc.devices.Mouse, input.NewMouse())
		cc.inputs.Mouse = NewMouseInput(cc.devices.Mouse)
	} else {
		cc.devices.Mouse = nil
	}
	if cc.inputs.Touch == nil {
		cc.devices.Touch = common.Coalesce(cc.devices.Touch, input.NewTouch())
		cc.inputs.Touch = NewTouchInput(cc.devices.Touch)
	} else {
		cc.devices.Touch = nil
	}

	return cc, nil
}

// NewOrbitController creates a new orbit controller.
// This is a convenience wrapper around NewCameraController.
//
// Parameters:
//   - sink: the camera the controller renders through (required)
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
//   - error: ErrNilSink if sink is nil
func NewOrbitController(sink Sink, options ...CameraControllerOption) (CameraController, error) {
	return NewCameraController(sink, options...)
}

func (cc *cameraControllerImpl) Update(args FrameArgs, next FrameFunc) Pose {
	req := cc.beginFrame(&args)

	cc.sink.Render(req, func(pose Pose) {
		pose = cc.endFrame(pose)
		if next != nil {
			next(Frame{Pose: pose, Attachments: args.Attachments})
		}
	})

	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose
}

// beginFrame counts the frame and advances the state under the mutex.
func (cc *cameraControllerImpl) beginFrame(args *FrameArgs) Request {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.frames++
	return cc.advance(args)
}

// endFrame commits the sink's pose under the mutex.
func (cc *cameraControllerImpl) endFrame(pose Pose) Pose {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.commit(pose)
}

// advance runs every step of the frame up to the sink request.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) advance(args *FrameArgs) Request {
	s := &cc.state

	cc.applyOverrides(args)
	if s.Zoom.normalize(s.Fov) {
		cc.logger.Debug().Msg("non-finite fov zoom target, falling back to offset zoom")
	}

	// Unfocused frames still drain the devices, into a scratch state that is discarded,
	// so input received without focus is never applied later.
	target := s
	if !cc.focus.HasFocus() {
		scratch := s.clone()
		target = &scratch
	}
	inputs := cc.frameInputs(args.Inputs)
	for _, adapter := range []InputAdapter{inputs.Keyboard, inputs.Mouse, inputs.Touch} {
		if adapter != nil {
			adapter.Poll(target)
		}
	}

	s.Euler = common.ClampVec2(s.Euler, s.MinEuler, s.MaxEuler)

	var sanitized bool
	if s.Rotation, sanitized = common.SanitizeQuat(s.Rotation); sanitized {
		cc.logger.Debug().Msg("sanitized corrupt rotation quaternion")
	}
	if s.Orientation, sanitized = common.SanitizeQuat(s.Orientation); sanitized {
		cc.logger.Debug().Msg("sanitized corrupt orientation quaternion")
	}

	up := worldUp
	if args.WorldUp != nil {
		up = *args.WorldUp
	}
	frameDirection := s.Direction
	if args.Direction != nil {
		frameDirection = *args.Direction
	}
	right := orbitRight(frameDirection, s.Direction, up)

	factor := s.InterpolationFactor
	pitchFactor := mgl32.Clamp(0.5+factor, 0, 1)
	switch {
	case args.PitchOnly:
		s.pitch = common.Slerp(s.pitch, common.AxisAngle(right, s.Euler[0]), pitchFactor)
	case args.YawOnly:
		s.yaw = common.Slerp(s.yaw, common.AxisAngle(up, s.Euler[1]), factor)
	default:
		s.pitch = common.Slerp(s.pitch, common.AxisAngle(right, s.Euler[0]), pitchFactor)
		s.yaw = common.Slerp(s.yaw, common.AxisAngle(up, s.Euler[1]), factor)
	}
	s.pitch = s.pitch.Normalize()
	s.yaw = s.yaw.Normalize()

	// Pitch composes in the local frame, yaw in the world frame.
	s.Orientation = s.pitch.Mul(s.Orientation).Normalize()
	s.Orientation = s.Orientation.Mul(s.yaw).Normalize()

	if s.Zoom.ByFov() {
		s.Zoom.setFov(mgl32.Clamp(*s.Zoom.Fov, MinZoomFov, MaxZoomFov))
		s.Fov = *s.Zoom.Fov
	}

	s.Rotation = common.Slerp(s.Rotation, s.Orientation, factor)
	s.Position = common.Lerp3(s.Position, s.Translation.Add(s.Position).Add(s.Offset), factor)

	// The pan/zoom impulse is consumed by this frame.
	s.Translation = mgl32.Vec3{}

	return Request{
		Position:    s.Position,
		Rotation:    s.Rotation,
		Target:      s.Target,
		Fov:         s.Fov,
		Attachments: args.Attachments,
	}
}

// applyOverrides copies the per-frame overrides into the persistent state and resolves
// the per-frame scalars. Caller must hold the mutex.
func (cc *cameraControllerImpl) applyOverrides(args *FrameArgs) {
	s := &cc.state
	if args.Rotation != nil {
		s.Rotation = *args.Rotation
	}
	if args.Orientation != nil {
		s.Orientation = *args.Orientation
	}
	if args.MinEuler != nil {
		s.MinEuler = *args.MinEuler
	}
	if args.MaxEuler != nil {
		s.MaxEuler = *args.MaxEuler
	}
	if args.Euler != nil {
		s.Euler = *args.Euler
	}
	if args.Position != nil {
		s.Position = *args.Position
	}
	if args.Target != nil {
		s.Target = *args.Target
	}
	if args.Fov != nil {
		s.Fov = *args.Fov
	}
	if args.Damping != nil {
		s.Damping = clampUnit(*args.Damping, DefaultDamping)
	}
	if args.InterpolationFactor != nil {
		s.InterpolationFactor = clampUnit(*args.InterpolationFactor, DefaultInterpolationFactor)
	}
	if args.Invert != nil {
		s.Invert = *args.Invert
	}
	if args.Zoom != nil {
		s.Zoom = args.Zoom.clone()
	}
}

// frameInputs merges per-frame adapter overrides over the configured adapters.
func (cc *cameraControllerImpl) frameInputs(override *Inputs) Inputs {
	inputs := cc.inputs
	if override == nil {
		return inputs
	}
	if override.Keyboard != nil {
		inputs.Keyboard = override.Keyboard
	}
	if override.Mouse != nil {
		inputs.Mouse = override.Mouse
	}
	if override.Touch != nil {
		inputs.Touch = override.Touch
	}
	return inputs
}

// commit copies the sink's authoritative pose into the persistent state.
// Non-finite values reported by the sink keep the previous value.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) commit(pose Pose) Pose {
	s := &cc.state
	if v, bad := common.SanitizeVec3(pose.Direction); !bad {
		s.Direction = v
	}
	if v, bad := common.SanitizeVec3(pose.Position); !bad {
		s.Position = v
	}
	if v, bad := common.SanitizeVec3(pose.Target); !bad {
		s.Target = v
	}
	if v, bad := common.SanitizeVec3(pose.Up); !bad {
		s.Up = v
	}
	if common.IsFinite(pose.Fov) {
		s.Fov = pose.Fov
	}

	cc.pose = Pose{
		Direction: s.Direction,
		Position:  s.Position,
		Target:    s.Target,
		Up:        s.Up,
		Fov:       s.Fov,
	}
	return cc.pose
}

// orbitRight derives the pitch axis. The first cross product uses the frame's direction
// override; the camera up and the right axis use the direction last reported by the camera.
// A degenerate basis (direction parallel to up, or zero) falls back to +X.
func orbitRight(frameDirection, direction, up mgl32.Vec3) mgl32.Vec3 {
	camUp := frameDirection.Cross(up).Cross(direction)
	right := direction.Cross(camUp)
	l := right.Len()
	if l < 1e-6 || !common.IsFinite(l) {
		return mgl32.Vec3{1, 0, 0}
	}
	return right.Mul(1 / l)
}

// clampUnit clamps v to [0, 1], substituting fallback for NaN.
func clampUnit(v, fallback float32) float32 {
	if math32.IsNaN(v) {
		return fallback
	}
	return mgl32.Clamp(v, 0, 1)
}

func (cc *cameraControllerImpl) State() ControllerState {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.clone()
}

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Position
}

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Target
}

func (cc *cameraControllerImpl) Euler() mgl32.Vec2 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Euler
}

func (cc *cameraControllerImpl) Rotation() mgl32.Quat {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Rotation
}

func (cc *cameraControllerImpl) Fov() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Fov
}

func (cc *cameraControllerImpl) Zoom() ZoomPolicy {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Zoom.clone()
}

func (cc *cameraControllerImpl) Frames() uint64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.frames
}

func (cc *cameraControllerImpl) Inputs() Inputs {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.inputs
}

func (cc *cameraControllerImpl) Devices() Devices {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.devices
}
