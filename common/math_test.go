package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-3.5))
	assert.False(t, IsFinite(math32.NaN()))
	assert.False(t, IsFinite(math32.Inf(1)))
	assert.False(t, IsFinite(math32.Inf(-1)))
}

func TestClampVec2(t *testing.T) {
	lo := mgl32.Vec2{-1, math32.Inf(-1)}
	hi := mgl32.Vec2{1, math32.Inf(1)}

	assert.Equal(t, mgl32.Vec2{1, 100}, ClampVec2(mgl32.Vec2{5, 100}, lo, hi))
	assert.Equal(t, mgl32.Vec2{-1, -100}, ClampVec2(mgl32.Vec2{-5, -100}, lo, hi))
	assert.Equal(t, mgl32.Vec2{0, 0}, ClampVec2(mgl32.Vec2{math32.NaN(), math32.NaN()}, lo, hi))
	assert.Equal(t, mgl32.Vec2{0.5, 0}, ClampVec2(mgl32.Vec2{math32.NaN(), 0}, mgl32.Vec2{0.5, 0}, mgl32.Vec2{1, 0}))
}

func TestSanitizeQuat(t *testing.T) {
	nan := math32.NaN()

	q, changed := SanitizeQuat(mgl32.Quat{W: nan, V: mgl32.Vec3{nan, 0, 0}})
	assert.True(t, changed)
	assert.Equal(t, mgl32.QuatIdent(), q)

	q, changed = SanitizeQuat(mgl32.Quat{W: 0.5, V: mgl32.Vec3{math32.Inf(1), 0.5, nan}})
	assert.True(t, changed)
	assert.Equal(t, mgl32.Quat{W: 0.5, V: mgl32.Vec3{0, 0.5, 0}}, q)

	again, changed := SanitizeQuat(q)
	assert.False(t, changed)
	assert.Equal(t, q, again)
}

func TestSanitizeVec3(t *testing.T) {
	v, changed := SanitizeVec3(mgl32.Vec3{1, math32.NaN(), 3})
	assert.True(t, changed)
	assert.Equal(t, mgl32.Vec3{1, 0, 3}, v)

	v, changed = SanitizeVec3(mgl32.Vec3{1, 2, 3})
	assert.False(t, changed)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, v)
}

func TestAxisAngle(t *testing.T) {
	q := AxisAngle(mgl32.Vec3{0, 2, 0}, math32.Pi/2)
	v := q.Rotate(mgl32.Vec3{0, 0, -1})
	assert.InDelta(t, -1, v[0], 1e-5)
	assert.InDelta(t, 0, v[2], 1e-5)
	assert.InDelta(t, 1, q.Len(), 1e-6)

	assert.Equal(t, mgl32.QuatIdent(), AxisAngle(mgl32.Vec3{}, 1))
	assert.Equal(t, mgl32.QuatIdent(), AxisAngle(mgl32.Vec3{1, 0, 0}, math32.NaN()))
}

func TestSlerpEndpoints(t *testing.T) {
	a := mgl32.QuatIdent()
	b := AxisAngle(mgl32.Vec3{1, 0, 0}, 1)

	assert.Equal(t, a, Slerp(a, b, 0))
	assert.Equal(t, b, Slerp(a, b, 1))
	assert.Equal(t, a, Slerp(a, b, -2))
	assert.Equal(t, b, Slerp(a, b, 3))

	mid := Slerp(a, b, 0.5)
	assert.True(t, AxisAngle(mgl32.Vec3{1, 0, 0}, 0.5).ApproxEqualThreshold(mid, 1e-5))
}

func TestLerp3(t *testing.T) {
	a := mgl32.Vec3{1, 2, 3}
	b := mgl32.Vec3{25, 25, 25}

	assert.Equal(t, a, Lerp3(a, b, 0))
	assert.Equal(t, b, Lerp3(a, b, 1))
	assert.Equal(t, mgl32.Vec3{13, 13.5, 14}, Lerp3(a, b, 0.5))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.Equal(t, float32(2), Coalesce(float32(0), 2))
}
