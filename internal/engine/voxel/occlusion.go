package voxel

// OcclusionBuffer tracks, per screen column, the topmost row already claimed
// by nearer terrain. Within a frame every boundary only moves up.
type OcclusionBuffer struct {
	bounds []int
}

// NewOcclusionBuffer allocates a buffer for width columns.
func NewOcclusionBuffer(width int) *OcclusionBuffer {
	return &OcclusionBuffer{bounds: make([]int, width)}
}

// Reset sizes the buffer to width columns and releases every column down to
// height. The backing array is reused when it is large enough.
func (b *OcclusionBuffer) Reset(width, height int) {
	if cap(b.bounds) < width {
		b.bounds = make([]int, width)
	}
	b.bounds = b.bounds[:width]
	for i := range b.bounds {
		b.bounds[i] = height
	}
}

// Width returns the number of columns.
func (b *OcclusionBuffer) Width() int {
	return len(b.bounds)
}

// At returns the boundary of column col.
func (b *OcclusionBuffer) At(col int) int {
	return b.bounds[col]
}

// Claim records terrain projected to row y in column col. It returns the
// inclusive span of rows still free to draw, which ends just above the
// previous boundary; ok is false when nothing in the column is free.
func (b *OcclusionBuffer) Claim(col, y int) (top, bottom int, ok bool) {
	boundary := b.bounds[col]
	if y < boundary {
		b.bounds[col] = y
	}

	top = max(y, 0)
	bottom = boundary - 1
	if top > bottom {
		return 0, 0, false
	}
	return top, bottom, true
}
