package main

import (
	"fmt"
	"os"
	"strings"

	"terrain-demo/config"
	"terrain-demo/input"
	"terrain-demo/internal/logger"
	"terrain-demo/opengl"
	"terrain-demo/platform"
	"terrain-demo/player"
	"terrain-demo/scene"

	"github.com/spf13/cobra"
)

func main() {
	var configPath, logLevel string

	cmd := &cobra.Command{
		Use:   "terrain-demo",
		Short: "Heightmap terrain demo",
		Long: `terrain-demo - Heightmap terrain demo

Renders a heightmap terrain with a player model that can be turned with the
keyboard while a free camera flies around it.

Run "terrain-demo info <model>" to inspect a model file without opening a
window.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgErr := loadConfig(configPath)
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
			if cfgErr != nil {
				return fmt.Errorf("invalid configuration: %w", cfgErr)
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file (defaults are used when empty)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	infoCmd := &cobra.Command{
		Use:   "info <model.obj|model.glb>",
		Short: "Display model information",
		Long:  "Display vertex and triangle counts and the bounding box of a model file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout(), args[0])
		},
	}
	cmd.AddCommand(infoCmd)

	if err := cmd.Execute(); err != nil {
		logger.L().Error("demo failed", "err", err)
		os.Exit(1)
	}
}

// loadConfig returns the defaults alongside any load error so logging can
// still be set up.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Default(), err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	log := logger.L()

	keys, err := cfg.Controls.Keys()
	if err != nil {
		return err
	}

	tracker := input.NewKeyTracker()
	hk := newHotkeys()
	dispatcher := input.NewDispatcher(tracker, hk)

	wc := cfg.Window
	window, err := platform.NewWindow(platform.WindowConfig{
		Width:      wc.Width,
		Height:     wc.Height,
		Title:      wc.Title,
		Resizable:  wc.Resizable,
		VSync:      wc.VSync,
		Fullscreen: wc.Fullscreen,
	}, dispatcher)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.SetCursorVisible(!wc.HideCursor)

	renderer, err := opengl.NewRenderer()
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	fbWidth, fbHeight := window.GetFramebufferSize()
	w, err := buildWorld(cfg, float32(fbWidth)/float32(max(fbHeight, 1)))
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	camera := w.scene.Camera

	hk.bind(keys.Quit, func() { window.SetShouldClose(true) })
	hk.bind(keys.Wireframe, w.toggleWireframe)

	controller := player.NewController(player.Bindings{
		PitchUp:   keys.PitchUp,
		PitchDown: keys.PitchDown,
		YawLeft:   keys.YawLeft,
		YawRight:  keys.YawRight,
		LookAt:    keys.LookAtPlayer,
	}, cfg.Player.TurnStep)
	fpsCamera := scene.NewFPSCamera(cfg.Camera.MoveSpeed, cfg.Camera.LookSpeed)
	window.OnFocusLost(func() {
		tracker.Reset()
		hk.reset()
		fpsCamera.ResetMouse()
	})

	printControls(controlsHelp(cfg.Controls))
	log.Info("entering frame loop", "receivers", dispatcher.Len())

	last := window.GetTime()
	stats := newFrameStats(last, 1)
	for !window.ShouldClose() {
		now := window.GetTime()
		dt := float32(now - last)
		last = now

		window.PollEvents()

		mouseX, mouseY := window.GetCursorPos()
		fpsCamera.Update(tracker, mouseX, mouseY, dt, camera)
		if err := controller.Update(tracker, w.player, camera); err != nil {
			log.Warn("player update skipped", "err", err)
		}
		if w.updateAim() {
			renderer.UpdateMesh(w.aim.Mesh)
		}

		fbWidth, fbHeight = window.GetFramebufferSize()
		renderer.SetViewport(fbWidth, fbHeight)
		camera.UpdateAspectRatio(float32(fbWidth), float32(fbHeight))

		renderer.BeginFrame(w.scene.ClearColor)
		renderer.DrawScene(w.scene)
		window.SwapBuffers()

		if stats.tick(now) {
			rot := w.player.Node.Rotation()
			window.SetTitle(statusTitle(wc.Title, stats.fps, rot, w.wireframe))
			log.Debug("frame stats",
				"fps", int(stats.fps+0.5),
				"draws", renderer.DrawCalls,
				"triangles", renderer.Triangles,
				"rotation", rot,
				"camera", camera.Position)
		}
	}

	log.Info("exiting")
	return nil
}

func controlsHelp(c config.ControlsConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-14s - Pitch player up / down\n", c.PitchUp+" / "+c.PitchDown)
	fmt.Fprintf(&b, "  %-14s - Yaw player left / right\n", c.YawLeft+" / "+c.YawRight)
	fmt.Fprintf(&b, "  %-14s - Look at player\n", c.LookAtPlayer)
	fmt.Fprintf(&b, "  %-14s - Toggle wireframe\n", c.Wireframe)
	fmt.Fprintf(&b, "  %-14s - Quit", c.Quit)
	return b.String()
}
