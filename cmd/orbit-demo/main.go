// Command orbit-demo opens a window and drives an orbit camera controller from its
// keyboard and mouse, logging the camera pose the reference camera reports each frame.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/config"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath       string
	damping       float32
	interpolation float32
	invert        bool
	zoom          string
	profile       bool
	frameLimit    float64
	logLevel      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbit-demo",
		Short: "Orbit camera controller demo",
		Long: `Opens a window and orbits a camera around the origin.

Arrow keys, WASD or HJKL rotate. Hold shift to pan instead, shift with +/- to zoom,
shift+0 to reset zoom and shift+space to reset the view. Drag with one mouse button
to rotate and scroll to zoom. Escape quits.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&cfgPath, "config", "", "config file path (YAML)")
	rootCmd.Flags().Float32Var(&damping, "damping", camera.DefaultDamping, "input damping in [0, 1]")
	rootCmd.Flags().Float32Var(&interpolation, "interpolation", camera.DefaultInterpolationFactor, "smoothing factor in [0, 1]; 1 disables smoothing")
	rootCmd.Flags().BoolVar(&invert, "invert", false, "invert rotation input")
	rootCmd.Flags().StringVar(&zoom, "zoom", "offset", "zoom mode: offset, fov or none")
	rootCmd.Flags().BoolVar(&profile, "profile", false, "log frame rate and memory statistics")
	rootCmd.Flags().Float64Var(&frameLimit, "frame-limit", 0, "frame rate cap (0 keeps the config value)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies any flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadFromPath(cfgPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("damping") {
		cfg.Camera.Damping = &damping
	}
	if flags.Changed("interpolation") {
		cfg.Camera.InterpolationFactor = &interpolation
	}
	if flags.Changed("invert") {
		cfg.Camera.Invert = invert
	}
	if flags.Changed("zoom") {
		cfg.Camera.Zoom = zoom
	}
	if flags.Changed("profile") {
		cfg.Engine.Profile = profile
	}
	if frameLimit > 0 {
		cfg.Engine.FrameLimit = frameLimit
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(cfg.LogLevel()).
		With().Timestamp().Logger()

	interval, err := time.ParseDuration(cfg.Engine.ProfileInterval)
	if err != nil {
		return fmt.Errorf("invalid profile_interval: %w", err)
	}

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithScrollScale(cfg.Window.ScrollScale),
	)
	defer win.Close()

	win.SetResizeCallback(func(width, height int) {
		logger.Debug().Int("width", width).Int("height", height).Msg("window resized")
	})

	opts, err := cfg.Camera.ControllerOptions()
	if err != nil {
		return err
	}
	opts = append(opts,
		camera.WithDevices(camera.Devices{Keyboard: win.Keyboard(), Mouse: win.Mouse()}),
		camera.WithFocusGate(win),
		camera.WithLogger(logger.With().Str("component", "orbit").Logger()),
	)

	cc, err := camera.NewOrbitController(camera.NewCamera(), opts...)
	if err != nil {
		return err
	}

	eng := engine.NewEngine(
		engine.WithHost(win),
		engine.WithLogger(logger),
		engine.WithFrameLimit(cfg.Engine.FrameLimit),
		engine.WithProfiling(cfg.Engine.Profile),
		engine.WithProfiler(profiler.NewProfiler(logger, profiler.WithInterval(interval))),
		engine.WithLayer(0, func(dt float32) {
			cc.Update(camera.FrameArgs{Attachments: map[string]any{"dt": dt}}, func(f camera.Frame) {
				logger.Trace().
					Floats32("position", f.Position[:]).
					Floats32("direction", f.Direction[:]).
					Float32("fov", f.Fov).
					Interface("dt", f.Attachments["dt"]).
					Msg("frame")
			})
		}),
	)

	logger.Info().
		Str("zoom", cfg.Camera.Zoom).
		Bool("invert", cfg.Camera.Invert).
		Float64("frame_limit", cfg.Engine.FrameLimit).
		Msg("orbit demo started")

	eng.Run()

	logger.Info().Uint64("frames", cc.Frames()).Msg("window closed")
	return nil
}
