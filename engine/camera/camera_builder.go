package camera

import "github.com/go-gl/mathgl/mgl32"

// DefaultFov is the vertical field of view a camera reports before its first frame (60°).
var DefaultFov = mgl32.DegToRad(60)

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithUp sets the camera-local up vector that requests rotate into world space.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = mgl32.Vec3{x, y, z}.Normalize()
	}
}

// WithForward sets the camera-local viewing direction that requests rotate into world space.
//
// Parameters:
//   - x, y, z: forward vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's forward vector
func WithForward(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.forward = mgl32.Vec3{x, y, z}.Normalize()
	}
}

// WithFovBounds sets the field-of-view range the camera accepts. Requests outside the
// range are clamped before being reported back.
//
// Parameters:
//   - min: smallest accepted fov in radians
//   - max: largest accepted fov in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the fov bounds
func WithFovBounds(min, max float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.minFov = min
		c.maxFov = max
	}
}

// WithPositionBounds confines the eye position to the box [min, max].
//
// Parameters:
//   - min: lower corner of the box
//   - max: upper corner of the box
//
// Returns:
//   - CameraBuilderOption: a function that sets the position bounds
func WithPositionBounds(min, max mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.bounded = true
		c.minPosition = min
		c.maxPosition = max
	}
}
