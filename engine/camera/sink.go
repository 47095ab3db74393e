package camera

import "github.com/go-gl/mathgl/mgl32"

// Request is the pose a controller asks the camera to adopt for one frame.
type Request struct {
	// Position is the world-space eye position.
	Position mgl32.Vec3
	// Rotation is the smoothed unit orientation quaternion.
	Rotation mgl32.Quat
	// Target is the world-space orbit pivot.
	Target mgl32.Vec3
	// Fov is the vertical field of view in radians.
	Fov float32
	// Attachments carries caller data through to the continuation untouched.
	Attachments map[string]any
}

// Pose is the authoritative camera state reported back after a Request.
// The camera may have constrained any of the requested values.
type Pose struct {
	Direction mgl32.Vec3
	Position  mgl32.Vec3
	Target    mgl32.Vec3
	Up        mgl32.Vec3
	Fov       float32
}

// Sink is the camera boundary a controller renders through. Render must invoke next
// synchronously, at most once, before returning; a sink that never calls next leaves the
// controller's pose unchanged for that frame.
type Sink interface {
	// Render applies req and reports the resulting pose.
	//
	// Parameters:
	//   - req: the requested pose
	//   - next: continuation receiving the authoritative pose
	Render(req Request, next func(Pose))
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(req Request, next func(Pose))

var _ Sink = SinkFunc(nil)

// Render calls f(req, next).
func (f SinkFunc) Render(req Request, next func(Pose)) {
	f(req, next)
}
