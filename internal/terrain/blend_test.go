package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerceptualAverageIdentity(t *testing.T) {
	for v := 0; v <= 255; v++ {
		assert.Equal(t, uint8(v), PerceptualAverage(uint8(v), uint8(v)), "value %d", v)
	}
}

func TestPerceptualAverageIsNotArithmeticMean(t *testing.T) {
	got := PerceptualAverage(0, 255)
	assert.NotEqual(t, uint8(127), got)
	assert.NotEqual(t, uint8(128), got)
	assert.Equal(t, got, PerceptualAverage(255, 0))
}

func TestAverageLegacyCurve(t *testing.T) {
	assert.Equal(t, uint8(130), Average(255, 255))
	assert.Equal(t, uint8(6), Average(0, 0))

	// Darker than the naive mean.
	assert.Less(t, Average(0, 255), uint8(127))
	assert.Equal(t, Average(0, 255), Average(255, 0))
}

func TestAverageMonotonic(t *testing.T) {
	prev := Average(0, 0)
	for v := 1; v <= 255; v++ {
		got := Average(uint8(v), uint8(v))
		assert.GreaterOrEqual(t, got, prev, "value %d", v)
		prev = got
	}
}

func TestCombine(t *testing.T) {
	a := RGB{200, 100, 0}
	b := RGB{200, 100, 0}
	assert.Equal(t, a, Combine(a, b, SmoothPerceptual))
	assert.Equal(t, a, Combine(a, RGB{}, SmoothNone))
	assert.Equal(t, RGB{Average(200, 200), Average(100, 100), Average(0, 0)}, Combine(a, b, SmoothLegacy))
}

func TestParseSmoothMode(t *testing.T) {
	tests := []struct {
		in   string
		want SmoothMode
	}{
		{"none", SmoothNone},
		{"", SmoothNone},
		{"perceptual", SmoothPerceptual},
		{"legacy", SmoothLegacy},
	}
	for _, tt := range tests {
		got, err := ParseSmoothMode(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		if tt.in != "" {
			assert.Equal(t, tt.in, got.String())
		}
	}

	_, err := ParseSmoothMode("bicubic")
	assert.Error(t, err)
}

func TestSmoothUsesNextRowClamped(t *testing.T) {
	ter := gradientTerrain(t, 4, 4)
	sample := RGB{90, 90, 90}

	got := ter.Smooth(sample, 1.2, 2.7, SmoothPerceptual)
	assert.Equal(t, Combine(sample, ter.Color.At(2, 2), SmoothPerceptual), got)

	// Last row has no row below; it blends with itself.
	got = ter.Smooth(sample, 3.5, 0, SmoothLegacy)
	assert.Equal(t, Combine(sample, ter.Color.At(3, 0), SmoothLegacy), got)

	// Wrapped positions resolve to the same neighbour.
	assert.Equal(t, ter.Smooth(sample, 1.2, 2.7, SmoothLegacy), ter.Smooth(sample, 1.2-8, 2.7+4, SmoothLegacy))

	assert.Equal(t, sample, ter.Smooth(sample, 0, 0, SmoothNone))
}
