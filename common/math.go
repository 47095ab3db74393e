package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// IsFinite reports whether f is neither NaN nor an infinity.
//
// Parameters:
//   - f: the value to check
//
// Returns:
//   - bool: true if f is a finite number
func IsFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// ClampVec2 clamps each component of v to the matching components of lo and hi.
// NaN components are replaced with 0 before clamping so that bounds always hold.
//
// Parameters:
//   - v: the vector to clamp
//   - lo: per-component lower bounds (may be -Inf)
//   - hi: per-component upper bounds (may be +Inf)
//
// Returns:
//   - mgl32.Vec2: the clamped vector
func ClampVec2(v, lo, hi mgl32.Vec2) mgl32.Vec2 {
	for i := range v {
		if math32.IsNaN(v[i]) {
			v[i] = 0
		}
		v[i] = mgl32.Clamp(v[i], lo[i], hi[i])
	}
	return v
}

// SanitizeQuat replaces corrupt quaternion components with identity defaults.
// Non-finite X, Y and Z become 0 and a non-finite W becomes 1. Applying it twice
// yields the same quaternion as applying it once.
//
// Parameters:
//   - q: the quaternion to sanitize
//
// Returns:
//   - mgl32.Quat: the sanitized quaternion
//   - bool: true if any component was replaced
func SanitizeQuat(q mgl32.Quat) (mgl32.Quat, bool) {
	changed := false
	for i := range q.V {
		if !IsFinite(q.V[i]) {
			q.V[i] = 0
			changed = true
		}
	}
	if !IsFinite(q.W) {
		q.W = 1
		changed = true
	}
	return q, changed
}

// SanitizeVec3 replaces non-finite components of v with 0.
//
// Parameters:
//   - v: the vector to sanitize
//
// Returns:
//   - mgl32.Vec3: the sanitized vector
//   - bool: true if any component was replaced
func SanitizeVec3(v mgl32.Vec3) (mgl32.Vec3, bool) {
	changed := false
	for i := range v {
		if !IsFinite(v[i]) {
			v[i] = 0
			changed = true
		}
	}
	return v, changed
}

// AxisAngle builds a unit quaternion rotating by angle radians around axis.
// The axis is normalized first; a zero-length or non-finite axis yields the identity.
//
// Parameters:
//   - axis: rotation axis (need not be unit length)
//   - angle: rotation angle in radians
//
// Returns:
//   - mgl32.Quat: the rotation quaternion
func AxisAngle(axis mgl32.Vec3, angle float32) mgl32.Quat {
	l := axis.Len()
	if l < 1e-8 || !IsFinite(l) || !IsFinite(angle) {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatRotate(angle, axis.Mul(1/l))
}

// Slerp spherically interpolates from a toward b by t along the shortest arc.
// t is clamped to [0, 1]; the endpoints return a and b unchanged so that a factor of 0
// freezes the source and a factor of 1 reaches the destination exactly.
//
// Parameters:
//   - a: source rotation
//   - b: destination rotation
//   - t: interpolation factor
//
// Returns:
//   - mgl32.Quat: the interpolated unit quaternion
func Slerp(a, b mgl32.Quat, t float32) mgl32.Quat {
	t = mgl32.Clamp(t, 0, 1)
	switch {
	case t == 0:
		return a
	case t == 1:
		return b
	}
	return mgl32.QuatSlerp(a, b, t)
}

// Lerp3 linearly interpolates from a toward b by t.
// Written as a*(1-t) + b*t so that t == 1 lands on b exactly.
//
// Parameters:
//   - a: source vector
//   - b: destination vector
//   - t: interpolation factor
//
// Returns:
//   - mgl32.Vec3: the interpolated vector
func Lerp3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
