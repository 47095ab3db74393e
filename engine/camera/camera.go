package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	// forward and up are the camera-local basis vectors rotated by each request.
	forward mgl32.Vec3
	up      mgl32.Vec3

	minFov float32
	maxFov float32

	bounded     bool
	minPosition mgl32.Vec3
	maxPosition mgl32.Vec3

	pose   Pose
	frames uint64
}

// Camera is the reference Sink. It turns a requested rotation into world-space direction
// and up vectors, clamps the field of view to its bounds and optionally confines the eye
// position to an axis-aligned box. The corrected values are reported as the authoritative
// pose, which is what a controller persists into its next frame.
type Camera interface {
	Sink

	// Pose returns the pose produced by the most recent Render.
	//
	// Returns:
	//   - Pose: the last authoritative pose
	Pose() Pose

	// Frames returns how many requests the camera has rendered.
	//
	// Returns:
	//   - uint64: number of Render calls
	Frames() uint64

	// FovBounds returns the accepted field-of-view range in radians.
	//
	// Returns:
	//   - min, max: the fov bounds
	FovBounds() (min, max float32)

	// SetPositionBounds confines the eye position to the box [min, max].
	//
	// Parameters:
	//   - min: lower corner of the box
	//   - max: upper corner of the box
	SetPositionBounds(min, max mgl32.Vec3)

	// ClearPositionBounds removes any position constraint.
	ClearPositionBounds()
}

var _ Camera = &cameraImpl{}

// NewCamera creates a reference camera looking down -Z with +Y up.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:      &sync.Mutex{},
		forward: mgl32.Vec3{0, 0, -1},
		up:      mgl32.Vec3{0, 1, 0},
		minFov:  mgl32.DegToRad(1),
		maxFov:  mgl32.DegToRad(179),
	}
	for _, option := range options {
		option(c)
	}
	c.pose = Pose{
		Direction: c.forward,
		Up:        c.up,
		Fov:       DefaultFov,
	}
	return c
}

func (c *cameraImpl) Render(req Request, next func(Pose)) {
	c.mu.Lock()
	rot, _ := common.SanitizeQuat(req.Rotation)
	rot = rot.Normalize()

	position, _ := common.SanitizeVec3(req.Position)
	if c.bounded {
		for i := range position {
			position[i] = mgl32.Clamp(position[i], c.minPosition[i], c.maxPosition[i])
		}
	}

	fov := req.Fov
	if !common.IsFinite(fov) {
		fov = c.pose.Fov
	}

	c.pose = Pose{
		Direction: rot.Rotate(c.forward).Normalize(),
		Position:  position,
		Target:    req.Target,
		Up:        rot.Rotate(c.up).Normalize(),
		Fov:       mgl32.Clamp(fov, c.minFov, c.maxFov),
	}
	c.frames++
	pose := c.pose
	c.mu.Unlock()

	if next != nil {
		next(pose)
	}
}

func (c *cameraImpl) Pose() Pose {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pose
}

func (c *cameraImpl) Frames() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

func (c *cameraImpl) FovBounds() (min, max float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minFov, c.maxFov
}

func (c *cameraImpl) SetPositionBounds(min, max mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bounded = true
	c.minPosition = min
	c.maxPosition = max
}

func (c *cameraImpl) ClearPositionBounds() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bounded = false
}
