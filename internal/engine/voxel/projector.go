package voxel

import "github.com/Faultbox/voxelspace/internal/engine/camera"

// Projector maps an elevation at a given depth to a screen row.
type Projector struct {
	EyeHeight float64
	Horizon   float64
	Scale     float64
}

// ProjectorFor returns the projector for a camera's render constants.
func ProjectorFor(cam camera.Camera) Projector {
	return Projector{
		EyeHeight: cam.EyeHeight,
		Horizon:   cam.Horizon,
		Scale:     cam.ScaleHeight,
	}
}

// Project returns the screen row of elevation seen at depth z (z > 0).
// Terrain above the eye lands above the horizon; the row is truncated toward zero.
func (p Projector) Project(elevation, z float64) int {
	return int((p.EyeHeight-elevation)/z*p.Scale + p.Horizon)
}
