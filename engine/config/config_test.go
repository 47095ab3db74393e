package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
window:
  title: ""
  width: 800
camera:
  damping: 0.5
  zoom: fov
  fov: 45
  euler: [10, -20]
  position: [1, 2, 3]
  bindings:
    up: [i]
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "Orbit", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	require.NotNil(t, cfg.Camera.Damping)
	assert.Equal(t, float32(0.5), *cfg.Camera.Damping)
	assert.Nil(t, cfg.Camera.InterpolationFactor)
	assert.Equal(t, []float32{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"zoom":      "camera: {zoom: sideways}",
		"level":     "log: {level: loud}",
		"euler":     "camera: {euler: [1, 2, 3]}",
		"position":  "camera: {position: [1, 2]}",
		"size":      "window: {width: 0}",
		"limit":     "engine: {frame_limit: -1}",
		"malformed": "camera: [",
	}
	for name, doc := range tests {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestLoadFromPath(t *testing.T) {
	cfg, err := LoadFromPath("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "orbit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera: {invert: true}\n"), 0o644))
	cfg, err = LoadFromPath(path)
	require.NoError(t, err)
	assert.True(t, cfg.Camera.Invert)

	_, err = LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseZoom(t *testing.T) {
	z, err := ParseZoom("")
	require.NoError(t, err)
	assert.Equal(t, camera.ZoomOffset, z.Mode)

	z, err = ParseZoom("fov")
	require.NoError(t, err)
	assert.Equal(t, camera.ZoomFov, z.Mode)

	z, err = ParseZoom("none")
	require.NoError(t, err)
	assert.Equal(t, camera.ZoomNone, z.Mode)

	_, err = ParseZoom("pinch")
	assert.Error(t, err)
}

func TestControllerOptionsConfigureController(t *testing.T) {
	damping := float32(0.25)
	factor := float32(0.5)
	cfg := CameraConfig{
		Damping:             &damping,
		InterpolationFactor: &factor,
		Invert:              true,
		Zoom:                "fov",
		Fov:                 90,
		MinEuler:            []float32{-45, -90},
		MaxEuler:            []float32{45, 90},
		Position:            []float32{0, 0, 5},
		Target:              []float32{1, 0, 0},
		Bindings:            map[string][]string{"up": {"i"}},
	}
	opts, err := cfg.ControllerOptions()
	require.NoError(t, err)

	cc, err := camera.NewCameraController(camera.NewCamera(), opts...)
	require.NoError(t, err)
	s := cc.State()

	assert.Equal(t, damping, s.Damping)
	assert.Equal(t, factor, s.InterpolationFactor)
	assert.True(t, s.Invert)
	assert.Equal(t, camera.ZoomFov, s.Zoom.Mode)
	assert.InDelta(t, mgl32.DegToRad(90), s.InitialFov, 1e-6)
	assert.InDelta(t, mgl32.DegToRad(-45), s.MinEuler[0], 1e-6)
	assert.InDelta(t, mgl32.DegToRad(90), s.MaxEuler[1], 1e-6)
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, s.Position)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, s.Target)

	cc.Devices().Keyboard.Press("i")
	cc.Update(camera.FrameArgs{}, nil)
	assert.InDelta(t, -0.068*0.25, cc.Euler()[0], 1e-6)

	_, err = CameraConfig{Zoom: "bogus"}.ControllerOptions()
	assert.Error(t, err)
}
