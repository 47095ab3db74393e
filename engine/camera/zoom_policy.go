package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Field-of-view range enforced while zooming by fov.
var (
	MinZoomFov = mgl32.DegToRad(1.1)
	MaxZoomFov = mgl32.DegToRad(120)
)

// ZoomMode selects what zoom input drives.
type ZoomMode int

const (
	// ZoomNone ignores zoom input.
	ZoomNone ZoomMode = iota
	// ZoomOffset dollies the camera along its local z offset.
	ZoomOffset
	// ZoomFov narrows or widens the field of view.
	ZoomFov
)

// String returns the config-file spelling of the mode.
func (m ZoomMode) String() string {
	switch m {
	case ZoomNone:
		return "none"
	case ZoomOffset:
		return "offset"
	case ZoomFov:
		return "fov"
	}
	return "unknown"
}

// ZoomPolicy decides whether zoom deltas adjust the field of view or a physical offset.
type ZoomPolicy struct {
	Mode ZoomMode
	// Fov is the field-of-view target in radians used by ZoomFov. A nil target is seeded
	// from the controller's current fov on the next frame.
	Fov *float32
}

// ZoomByOffset returns a policy that dollies the camera.
//
// Returns:
//   - ZoomPolicy: the offset policy
func ZoomByOffset() ZoomPolicy {
	return ZoomPolicy{Mode: ZoomOffset}
}

// ZoomByFov returns a fov policy whose target is seeded from the current fov.
//
// Returns:
//   - ZoomPolicy: the fov policy
func ZoomByFov() ZoomPolicy {
	return ZoomPolicy{Mode: ZoomFov}
}

// ZoomToFov returns a fov policy with an explicit target.
//
// Parameters:
//   - fov: field-of-view target in radians
//
// Returns:
//   - ZoomPolicy: the fov policy
func ZoomToFov(fov float32) ZoomPolicy {
	return ZoomPolicy{Mode: ZoomFov, Fov: &fov}
}

// ZoomDisabled returns a policy that ignores zoom input.
//
// Returns:
//   - ZoomPolicy: the disabled policy
func ZoomDisabled() ZoomPolicy {
	return ZoomPolicy{Mode: ZoomNone}
}

// ByFov reports whether zoom input drives the field of view.
func (z ZoomPolicy) ByFov() bool {
	return z.Mode == ZoomFov && z.Fov != nil
}

// ByOffset reports whether zoom input drives the physical offset.
func (z ZoomPolicy) ByOffset() bool {
	return z.Mode == ZoomOffset
}

// clone returns a copy that does not share the fov target with z.
func (z ZoomPolicy) clone() ZoomPolicy {
	if z.Fov != nil {
		fov := *z.Fov
		z.Fov = &fov
	}
	return z
}

// normalize seeds an empty fov target from currentFov and downgrades a non-finite target
// to offset zoom.
//
// Returns:
//   - bool: true if the policy was downgraded
func (z *ZoomPolicy) normalize(currentFov float32) bool {
	if z.Mode != ZoomFov {
		z.Fov = nil
		return false
	}
	if z.Fov == nil {
		fov := currentFov
		z.Fov = &fov
		return false
	}
	if !common.IsFinite(*z.Fov) {
		z.Mode = ZoomOffset
		z.Fov = nil
		return true
	}
	return false
}

// addFov nudges the fov target by dv. No-op unless zooming by fov.
func (z *ZoomPolicy) addFov(dv float32) {
	if z.ByFov() {
		*z.Fov += dv
	}
}

// setFov replaces the fov target. No-op unless zooming by fov.
func (z *ZoomPolicy) setFov(fov float32) {
	if z.ByFov() {
		*z.Fov = fov
	}
}
