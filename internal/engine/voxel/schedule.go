package voxel

// nearDepth is the depth of the first slice.
const nearDepth = 1.0

// DepthSchedule yields slice depths from near to far. The step between
// slices grows by a fixed amount each iteration, so sampling is densest
// close to the camera.
type DepthSchedule struct {
	far    float64
	growth float64
	z      float64
	dz     float64
}

// NewDepthSchedule starts at nearDepth with the given first step.
func NewDepthSchedule(step, growth, far float64) *DepthSchedule {
	return &DepthSchedule{
		far:    far,
		growth: growth,
		z:      nearDepth,
		dz:     step,
	}
}

// Next returns the next slice depth, or false once the depth reaches far.
func (d *DepthSchedule) Next() (float64, bool) {
	if d.z >= d.far {
		return 0, false
	}
	z := d.z
	d.z += d.dz
	d.dz += d.growth
	return z, true
}

// Depth returns the depth accumulated so far.
func (d *DepthSchedule) Depth() float64 {
	return d.z
}

// DepthAfter is the closed form of the depth after n calls to Next:
// nearDepth plus an arithmetic series with first term step and difference growth.
func DepthAfter(step, growth float64, n int) float64 {
	fn := float64(n)
	return nearDepth + fn*step + growth*fn*(fn-1)/2
}
