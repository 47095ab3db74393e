package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the demo host configuration, loaded from a YAML file.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Engine EngineConfig `yaml:"engine"`
	Camera CameraConfig `yaml:"camera"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig configures the host window.
type WindowConfig struct {
	Title       string  `yaml:"title"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	ScrollScale float32 `yaml:"scroll_scale"`
}

// EngineConfig configures the frame driver.
type EngineConfig struct {
	// FrameLimit caps the frame rate; 0 is uncapped.
	FrameLimit float64 `yaml:"frame_limit"`
	Profile    bool    `yaml:"profile"`
	// ProfileInterval is a Go duration string such as "2s".
	ProfileInterval string `yaml:"profile_interval"`
}

// CameraConfig configures the orbit controller and its reference camera.
// Angles are in degrees.
type CameraConfig struct {
	Damping             *float32 `yaml:"damping"`
	ZoomDamping         *float32 `yaml:"zoom_damping"`
	InterpolationFactor *float32 `yaml:"interpolation_factor"`
	Invert              bool     `yaml:"invert"`
	ClampX              bool     `yaml:"clamp_x"`

	// Zoom is one of "offset", "fov" or "none".
	Zoom string `yaml:"zoom"`
	// Fov is the initial vertical field of view.
	Fov float32 `yaml:"fov"`

	MinEuler []float32 `yaml:"min_euler"`
	MaxEuler []float32 `yaml:"max_euler"`
	Euler    []float32 `yaml:"euler"`
	Position []float32 `yaml:"position"`
	Target   []float32 `yaml:"target"`

	// Bindings appends extra key names to the built-in actions.
	Bindings map[string][]string `yaml:"bindings"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
//
// Returns:
//   - *Config: a new default configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:       "Orbit",
			Width:       1280,
			Height:      720,
			ScrollScale: 100,
		},
		Engine: EngineConfig{
			FrameLimit:      144,
			ProfileInterval: "1s",
		},
		Camera: CameraConfig{
			Zoom:     camera.ZoomOffset.String(),
			Fov:      60,
			Position: []float32{0, 0, 5},
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadFromPath reads and validates a configuration file. Fields absent from the file keep
// their default values. An empty path returns the defaults.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if the file cannot be read, parsed or validated
func LoadFromPath(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration over the defaults.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if the document is malformed or invalid
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Window.Title = common.Coalesce(cfg.Window.Title, Default().Window.Title)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the controller cannot use.
//
// Returns:
//   - error: the first problem found, or nil
func (c *Config) Validate() error {
	if _, err := ParseZoom(c.Camera.Zoom); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level '%s': %w", c.Log.Level, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.New("window width and height must be positive")
	}
	if c.Engine.FrameLimit < 0 {
		return errors.New("frame_limit cannot be negative")
	}
	for name, v := range map[string][]float32{
		"min_euler": c.Camera.MinEuler,
		"max_euler": c.Camera.MaxEuler,
		"euler":     c.Camera.Euler,
	} {
		if v != nil && len(v) != 2 {
			return fmt.Errorf("%s must have 2 components, got %d", name, len(v))
		}
	}
	for name, v := range map[string][]float32{
		"position": c.Camera.Position,
		"target":   c.Camera.Target,
	} {
		if v != nil && len(v) != 3 {
			return fmt.Errorf("%s must have 3 components, got %d", name, len(v))
		}
	}
	return nil
}

// LogLevel returns the configured zerolog level.
//
// Returns:
//   - zerolog.Level: the parsed level (info if invalid)
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// ParseZoom converts a config-file zoom mode into a zoom policy.
//
// Parameters:
//   - mode: "offset", "fov", "none" or empty for offset
//
// Returns:
//   - camera.ZoomPolicy: the policy
//   - error: error for an unknown mode
func ParseZoom(mode string) (camera.ZoomPolicy, error) {
	switch mode {
	case "", camera.ZoomOffset.String():
		return camera.ZoomByOffset(), nil
	case camera.ZoomFov.String():
		return camera.ZoomByFov(), nil
	case camera.ZoomNone.String():
		return camera.ZoomDisabled(), nil
	}
	return camera.ZoomPolicy{}, fmt.Errorf("invalid zoom mode '%s', must be one of: offset, fov, none", mode)
}

// ControllerOptions translates the camera section into controller options.
//
// Returns:
//   - []camera.CameraControllerOption: the options, in application order
//   - error: error for an invalid zoom mode
func (c CameraConfig) ControllerOptions() ([]camera.CameraControllerOption, error) {
	zoom, err := ParseZoom(c.Zoom)
	if err != nil {
		return nil, err
	}

	opts := []camera.CameraControllerOption{
		camera.WithInvert(c.Invert),
		camera.WithClampX(c.ClampX),
		camera.WithZoom(zoom),
	}
	if c.Fov > 0 {
		opts = append(opts, camera.WithFov(mgl32.DegToRad(c.Fov)))
	}
	if c.Damping != nil {
		opts = append(opts, camera.WithDamping(*c.Damping))
	}
	if c.ZoomDamping != nil {
		opts = append(opts, camera.WithZoomDamping(*c.ZoomDamping))
	}
	if c.InterpolationFactor != nil {
		opts = append(opts, camera.WithInterpolationFactor(*c.InterpolationFactor))
	}
	if len(c.MinEuler) == 2 {
		opts = append(opts, camera.WithMinEuler(mgl32.DegToRad(c.MinEuler[0]), mgl32.DegToRad(c.MinEuler[1])))
	}
	if len(c.MaxEuler) == 2 {
		opts = append(opts, camera.WithMaxEuler(mgl32.DegToRad(c.MaxEuler[0]), mgl32.DegToRad(c.MaxEuler[1])))
	}
	if len(c.Euler) == 2 {
		opts = append(opts, camera.WithEuler(mgl32.DegToRad(c.Euler[0]), mgl32.DegToRad(c.Euler[1])))
	}
	if len(c.Position) == 3 {
		opts = append(opts, camera.WithPosition(c.Position[0], c.Position[1], c.Position[2]))
	}
	if len(c.Target) == 3 {
		opts = append(opts, camera.WithTarget(c.Target[0], c.Target[1], c.Target[2]))
	}
	if len(c.Bindings) > 0 {
		bindings := make(input.Bindings, len(c.Bindings))
		for action, keys := range c.Bindings {
			bindings[input.Action(action)] = keys
		}
		opts = append(opts, camera.WithKeyBindings(bindings))
	}
	return opts, nil
}
