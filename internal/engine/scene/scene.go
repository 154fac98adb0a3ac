// Package scene holds the state of one rendered view: the camera, the
// terrain it looks at and the rasterizer that draws it. The interactive
// viewer and the offline renderer share it.
package scene

import (
	"fmt"

	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/engine/voxel"
	"github.com/Faultbox/voxelspace/internal/terrain"
)

// RenderOptions builds rasterizer options from the render config.
func RenderOptions(cfg *config.Config) (voxel.Options, error) {
	mode, err := terrain.ParseSmoothMode(cfg.Render.Smoothing)
	if err != nil {
		return voxel.Options{}, err
	}
	return voxel.Options{
		DepthStep:        cfg.Render.DepthStep,
		DepthStepGrowth:  cfg.Render.DepthStepGrowth,
		Smoothing:        mode,
		AdvanceOffscreen: cfg.Render.AdvanceOffscreen,
	}, nil
}

// Scene is the per-frame work of the viewer without any window attached:
// move the camera, clear to the sky, draw the terrain, present.
type Scene struct {
	Camera     camera.Camera
	integrator camera.Integrator
	rasterizer *voxel.Rasterizer
	terrain    *terrain.Terrain
	sky        terrain.RGB
}

// New creates the scene for cfg and t.
func New(cfg *config.Config, t *terrain.Terrain) (*Scene, error) {
	opts, err := RenderOptions(cfg)
	if err != nil {
		return nil, err
	}
	r, g, b, err := cfg.SkyRGB()
	if err != nil {
		return nil, err
	}
	return &Scene{
		Camera:     camera.FromConfig(cfg),
		integrator: camera.NewIntegrator(cfg),
		rasterizer: voxel.NewRasterizer(opts),
		terrain:    t,
		sky:        terrain.RGB{R: r, G: g, B: b},
	}, nil
}

// Update applies the held controls for dt seconds.
func (s *Scene) Update(c camera.Controls, dt float64) {
	s.Camera = s.integrator.Apply(s.Camera, c, dt)
}

// Draw clears dst to the sky colour and renders the terrain onto it. The
// frame is not presented so it can still be captured.
func (s *Scene) Draw(dst voxel.Surface) voxel.Stats {
	dst.Clear(s.sky)
	return s.rasterizer.Render(dst, s.Camera, s.terrain)
}

// Step runs Update, Draw and Present.
func (s *Scene) Step(dst voxel.Surface, c camera.Controls, dt float64) (voxel.Stats, error) {
	s.Update(c, dt)
	stats := s.Draw(dst)
	if err := dst.Present(); err != nil {
		return stats, fmt.Errorf("present: %w", err)
	}
	return stats, nil
}
