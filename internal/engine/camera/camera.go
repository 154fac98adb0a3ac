// Package camera holds the first-person terrain camera and the integrator
// that moves it from held keys.
package camera

import (
	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/pkg/math"
)

// Camera is the per-frame view state. It is passed by value: the frame loop
// owns the current camera and the renderer only reads it.
type Camera struct {
	// World position, not locked to the map grid
	Position math.Vec2
	// Heading in radians
	Heading float64

	// Render constants
	EyeHeight   float64 // Eye height above elevation zero
	Horizon     float64 // Screen row of the horizon
	ScaleHeight float64 // Vertical exaggeration
	Distance    float64 // Maximum draw distance

	// Viewport size in pixels
	Width  int
	Height int
}

// FromConfig builds the starting camera from configuration.
func FromConfig(cfg *config.Config) Camera {
	return Camera{
		Position:    math.Vec2{X: cfg.Camera.StartX, Y: cfg.Camera.StartY},
		Heading:     cfg.Camera.Heading,
		EyeHeight:   cfg.Render.EyeHeight,
		Horizon:     cfg.Render.Horizon,
		ScaleHeight: cfg.Render.ScaleHeight,
		Distance:    cfg.Render.Distance,
		Width:       cfg.Graphics.Width,
		Height:      cfg.Graphics.Height,
	}
}

// Controls is a snapshot of the movement keys held this frame.
type Controls struct {
	Forward   bool // W
	Back      bool // S
	Left      bool // A
	Right     bool // D
	TurnLeft  bool // Q
	TurnRight bool // E
}

// Any reports whether any control is held.
func (c Controls) Any() bool {
	return c.Forward || c.Back || c.Left || c.Right || c.TurnLeft || c.TurnRight
}

// Integrator applies held controls to a camera as constant velocities.
// Movement is along the fixed world axes regardless of heading.
type Integrator struct {
	MoveSpeed float64 // World units per second
	TurnSpeed float64 // Radians per second
}

// NewIntegrator creates an integrator from configuration.
func NewIntegrator(cfg *config.Config) Integrator {
	return Integrator{
		MoveSpeed: cfg.Camera.MoveSpeed,
		TurnSpeed: cfg.Camera.TurnSpeed,
	}
}

// Apply returns cam moved by the held controls over dt seconds.
func (in Integrator) Apply(cam Camera, c Controls, dt float64) Camera {
	step := in.MoveSpeed * dt
	turn := in.TurnSpeed * dt

	if c.Forward {
		cam.Position.Y += step
	}
	if c.Back {
		cam.Position.Y -= step
	}
	if c.Left {
		cam.Position.X -= step
	}
	if c.Right {
		cam.Position.X += step
	}
	if c.TurnLeft {
		cam.Heading += turn
	}
	if c.TurnRight {
		cam.Heading -= turn
	}
	return cam
}
