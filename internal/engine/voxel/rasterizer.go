package voxel

import (
	"math"

	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/terrain"
	vmath "github.com/Faultbox/voxelspace/pkg/math"
)

// Options holds renderer settings that are not part of the camera.
type Options struct {
	DepthStep       float64 // First depth increment
	DepthStepGrowth float64 // Added to the increment after every slice
	Smoothing       terrain.SmoothMode

	// AdvanceOffscreen steps the sample position for columns whose terrain
	// projects below the viewport. When false those columns leave the
	// position where it was, and the rest of the slice samples from there.
	AdvanceOffscreen bool
}

// DefaultOptions returns the classic depth schedule without colour smoothing.
func DefaultOptions() Options {
	return Options{
		DepthStep:       1,
		DepthStepGrowth: 0.01,
		Smoothing:       terrain.SmoothNone,
	}
}

// Stats summarizes one render pass.
type Stats struct {
	Slices     int     // Depth slices processed
	Lines      int     // Vertical lines drawn
	FinalDepth float64 // Depth of the last slice
}

// Rasterizer draws terrain one depth slice at a time. It keeps its
// occlusion buffer between frames to avoid reallocating it; a Rasterizer
// is not safe for concurrent use.
type Rasterizer struct {
	opts      Options
	occlusion *OcclusionBuffer
}

// NewRasterizer creates a rasterizer.
func NewRasterizer(opts Options) *Rasterizer {
	return &Rasterizer{
		opts:      opts,
		occlusion: NewOcclusionBuffer(0),
	}
}

// Render draws one frame of t as seen from cam onto s. The surface is
// neither cleared nor presented.
func (r *Rasterizer) Render(s Surface, cam camera.Camera, t *terrain.Terrain) Stats {
	f := r.begin(cam, t)
	for f.next() {
		f.slice(s)
	}
	return f.stats
}

// frame is the state of one render pass.
type frame struct {
	r        *Rasterizer
	cam      camera.Camera
	terrain  *terrain.Terrain
	proj     Projector
	sin, cos float64
	schedule *DepthSchedule
	z        float64
	stats    Stats
}

func (r *Rasterizer) begin(cam camera.Camera, t *terrain.Terrain) *frame {
	r.occlusion.Reset(cam.Width, cam.Height)
	sin, cos := math.Sincos(cam.Heading)
	return &frame{
		r:        r,
		cam:      cam,
		terrain:  t,
		proj:     ProjectorFor(cam),
		sin:      sin,
		cos:      cos,
		schedule: NewDepthSchedule(r.opts.DepthStep, r.opts.DepthStepGrowth, cam.Distance),
	}
}

// next advances to the next depth slice.
func (f *frame) next() bool {
	z, ok := f.schedule.Next()
	if ok {
		f.z = z
	}
	return ok
}

// FrustumEdges returns the world positions seen by the leftmost and
// rightmost screen columns at depth z.
func FrustumEdges(pos vmath.Vec2, sin, cos, z float64) (left, right vmath.Vec2) {
	left = vmath.Vec2{
		X: (-cos*z - sin*z) + pos.X,
		Y: -(sin*z - cos*z) + pos.Y,
	}
	right = vmath.Vec2{
		X: (cos*z - sin*z) + pos.X,
		Y: -(-sin*z - cos*z) + pos.Y,
	}
	return left, right
}

// slice draws every column at the current depth.
func (f *frame) slice(s Surface) {
	left, right := FrustumEdges(f.cam.Position, f.sin, f.cos, f.z)
	step := right.Sub(left).Div(float64(f.cam.Width))

	occ := f.r.occlusion
	mode := f.r.opts.Smoothing
	p := left
	for col := 0; col < occ.Width(); col++ {
		alt, c := f.terrain.Sample(p.X, p.Y)
		y := f.proj.Project(alt, f.z)

		if y >= f.cam.Height {
			if f.r.opts.AdvanceOffscreen {
				p = p.Add(step)
			}
			continue
		}

		if top, bottom, ok := occ.Claim(col, y); ok {
			s.DrawVerticalLine(col, top, bottom, f.terrain.Smooth(c, p.X, p.Y, mode))
			f.stats.Lines++
		}
		p = p.Add(step)
	}

	f.stats.Slices++
	f.stats.FinalDepth = f.z
}
