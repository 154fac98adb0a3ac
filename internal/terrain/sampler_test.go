package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleAtCellCorner(t *testing.T) {
	ter := gradientTerrain(t, 4, 4)

	// Rows come from X, columns from Y. With fy == 0 the whole weight sits
	// on the column one step further in Y.
	alt, c := ter.Sample(2, 1)
	assert.Equal(t, float64(2*16+2), alt)
	assert.Equal(t, RGB{20, 20, 50}, c)
}

func TestSampleInterpolatesAlongX(t *testing.T) {
	ter := gradientTerrain(t, 4, 4)

	// Between rows 1 and 2 at column 1: 17 and 33.
	alt, c := ter.Sample(1.5, 0)
	assert.Equal(t, 25.0, alt)
	assert.Equal(t, RGB{15, 10, 50}, c)
}

func TestSampleBlendsTowardNearerColumnWithFy(t *testing.T) {
	ter := gradientTerrain(t, 4, 4)

	// fy weights the floor column: lerp(at(col 1), at(col 0), 0.25).
	alt, _ := ter.Sample(0, 0.25)
	assert.InDelta(t, 0.75*1+0.25*0, alt, 1e-9)
}

func TestSampleToroidal(t *testing.T) {
	ter := gradientTerrain(t, 8, 8)
	points := [][2]float64{{1.25, 3.5}, {0, 0}, {7.75, 6.125}, {4.5, 0.5}}

	for _, p := range points {
		wantAlt, wantColor := ter.Sample(p[0], p[1])
		for _, k := range []int{-3, -1, 1, 2, 5} {
			alt, c := ter.Sample(p[0]+float64(k*8), p[1]+float64(k*8))
			assert.Equal(t, wantAlt, alt, "point %v offset %d", p, k)
			assert.Equal(t, wantColor, c, "point %v offset %d", p, k)
		}
	}
}

func TestSampleNegativeCoordinates(t *testing.T) {
	ter := gradientTerrain(t, 4, 4)

	assert.NotPanics(t, func() {
		ter.Sample(-500.75, -1e6+0.5)
		ter.Sample(-0.001, -3.999)
	})

	alt, c := ter.Sample(-1, -2)
	assert.Equal(t, float64(ter.Height.At(3, 3)), alt)
	assert.Equal(t, ter.Color.At(3, 3), c)
}

func TestSampleWrapsEdgeNeighbours(t *testing.T) {
	ter := gradientTerrain(t, 4, 4)

	// Row 3 blends with row 0 across the seam.
	alt, _ := ter.Sample(3.5, 0)
	assert.Equal(t, (49.0+1.0)/2, alt)
}

func TestLerpColorTruncates(t *testing.T) {
	got := LerpColor(RGB{0, 0, 0}, RGB{3, 255, 1}, 0.5)
	assert.Equal(t, RGB{1, 127, 0}, got)
}
