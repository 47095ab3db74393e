package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraDefaults(t *testing.T) {
	c := NewCamera()
	pose := c.Pose()

	assert.Equal(t, mgl32.Vec3{0, 0, -1}, pose.Direction)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, pose.Up)
	assert.Equal(t, DefaultFov, pose.Fov)
	assert.Equal(t, uint64(0), c.Frames())

	lo, hi := c.FovBounds()
	assert.Equal(t, mgl32.DegToRad(1), lo)
	assert.Equal(t, mgl32.DegToRad(179), hi)
}

func TestCameraRenderDerivesBasis(t *testing.T) {
	c := NewCamera()
	rot := mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 1, 0})

	var got Pose
	c.Render(Request{Rotation: rot, Position: mgl32.Vec3{1, 2, 3}, Fov: 1}, func(p Pose) { got = p })

	assert.InDelta(t, -1, got.Direction[0], tol)
	assert.InDelta(t, 0, got.Direction[2], tol)
	assert.InDelta(t, 1, got.Up[1], tol)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, got.Position)
	assert.Equal(t, float32(1), got.Fov)
	assert.Equal(t, got, c.Pose())
	assert.Equal(t, uint64(1), c.Frames())
}

func TestCameraClampsFov(t *testing.T) {
	c := NewCamera(WithFovBounds(0.5, 1.5))

	c.Render(Request{Rotation: mgl32.QuatIdent(), Fov: 3}, nil)
	assert.Equal(t, float32(1.5), c.Pose().Fov)

	c.Render(Request{Rotation: mgl32.QuatIdent(), Fov: 0.1}, nil)
	assert.Equal(t, float32(0.5), c.Pose().Fov)

	c.Render(Request{Rotation: mgl32.QuatIdent(), Fov: math32.NaN()}, nil)
	assert.Equal(t, float32(0.5), c.Pose().Fov, "non-finite fov keeps the previous one")
}

func TestCameraPositionBounds(t *testing.T) {
	c := NewCamera()
	c.SetPositionBounds(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})

	c.Render(Request{Rotation: mgl32.QuatIdent(), Position: mgl32.Vec3{-5, 0.5, 9}, Fov: 1}, nil)
	assert.Equal(t, mgl32.Vec3{-1, 0.5, 1}, c.Pose().Position)

	c.ClearPositionBounds()
	c.Render(Request{Rotation: mgl32.QuatIdent(), Position: mgl32.Vec3{-5, 0.5, 9}, Fov: 1}, nil)
	assert.Equal(t, mgl32.Vec3{-5, 0.5, 9}, c.Pose().Position)
}

func TestCameraCustomBasis(t *testing.T) {
	c := NewCamera(WithForward(0, 0, 1), WithUp(0, 0, 1))
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, c.Pose().Direction)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, c.Pose().Up)
}

func TestCameraSanitizesRotation(t *testing.T) {
	c := NewCamera()
	nan := math32.NaN()

	c.Render(Request{Rotation: mgl32.Quat{W: nan, V: mgl32.Vec3{nan, nan, nan}}, Fov: 1}, nil)

	assert.Equal(t, mgl32.Vec3{0, 0, -1}, c.Pose().Direction)
}
