// Package app implements the viewer's main loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/engine/debug"
	"github.com/Faultbox/voxelspace/internal/engine/input"
	"github.com/Faultbox/voxelspace/internal/engine/scene"
	"github.com/Faultbox/voxelspace/internal/engine/window"
	"github.com/Faultbox/voxelspace/internal/logger"
	"github.com/Faultbox/voxelspace/internal/terrain"
)

const title = "Voxel Space"

// App is the interactive viewer.
type App struct {
	config  *config.Config
	running bool
	window  *window.Window
	input   *input.Input
	scene   *scene.Scene
	capture *debug.ScreenshotCapture
	log     *zap.Logger
}

// New creates the window and everything a frame needs.
func New(cfg *config.Config, t *terrain.Terrain) (*App, error) {
	a := &App{
		config:  cfg,
		capture: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "voxelspace"),
		log:     logger.Named("app"),
	}

	a.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("smoothing", cfg.Render.Smoothing),
	)

	var err error
	a.scene, err = scene.New(cfg, t)
	if err != nil {
		return nil, fmt.Errorf("failed to set up renderer: %w", err)
	}

	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.input = input.New()

	a.log.Info("viewer initialized")
	return a, nil
}

// Run loops until the window is closed or Escape is pressed. Quit is only
// checked between frames, so a frame is never left half drawn.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	fps := newFPSCounter(lastTime)
	canvas := a.window.Canvas()

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}

		if c := a.input.Controls(); c.Any() {
			a.scene.Update(c, dt)
		}
		stats := a.scene.Draw(canvas)

		if a.input.ScreenshotRequested() {
			a.screenshot()
		}

		if err := canvas.Present(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		if n, ok := fps.tick(time.Now()); ok {
			a.log.Debug("fps",
				zap.Int("count", n),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Int("slices", stats.Slices),
				zap.Int("lines", stats.Lines),
				zap.Float64("x", a.scene.Camera.Position.X),
				zap.Float64("y", a.scene.Camera.Position.Y),
				zap.Float64("heading", a.scene.Camera.Heading),
			)
			if a.config.Debug.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s - %d fps", title, n))
			}
		}
	}

	return nil
}

func (a *App) screenshot() {
	pixels, width, height, pitch, err := a.window.ReadPixels()
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	path, err := a.capture.CaptureFromPixels(pixels, width, height, pitch)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.window != nil {
		a.window.Close()
	}
}
