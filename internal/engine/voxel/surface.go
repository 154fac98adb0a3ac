// Package voxel renders heightfield terrain column by column, near to far,
// with a per-column occlusion boundary standing in for a depth buffer.
package voxel

import "github.com/Faultbox/voxelspace/internal/terrain"

// Surface is the drawing target of a render pass.
type Surface interface {
	// DrawVerticalLine fills column x from row yTop to row yBottom inclusive.
	DrawVerticalLine(x, yTop, yBottom int, c terrain.RGB)
	// Clear fills the whole surface with one colour.
	Clear(c terrain.RGB)
	// Present shows the finished frame.
	Present() error
}
