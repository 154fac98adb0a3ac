package terrain

import (
	"fmt"
	"math"
)

// SmoothMode selects how a rendered colour sample is blended with its neighbour.
type SmoothMode int

const (
	SmoothNone SmoothMode = iota
	SmoothPerceptual
	SmoothLegacy
)

// String returns the config name of the mode.
func (m SmoothMode) String() string {
	switch m {
	case SmoothNone:
		return "none"
	case SmoothPerceptual:
		return "perceptual"
	case SmoothLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("SmoothMode(%d)", int(m))
	}
}

// ParseSmoothMode parses a config name into a SmoothMode.
func ParseSmoothMode(s string) (SmoothMode, error) {
	switch s {
	case "none", "off", "":
		return SmoothNone, nil
	case "perceptual":
		return SmoothPerceptual, nil
	case "legacy":
		return SmoothLegacy, nil
	}
	return SmoothNone, fmt.Errorf("unknown smoothing mode %q", s)
}

// toLinear undoes the sRGB transfer curve.
func toLinear(v uint8) float64 {
	return math.Pow((float64(v)/255.0+0.055)/1.055, 2.4)
}

// Average blends two channel values in linear light and re-encodes them
// with a halved curve, as the legacy smoothing mode renders. The result is
// biased dark: Average(255, 255) is 130, Average(0, 255) is well below 127.
func Average(x, y uint8) uint8 {
	mean := (toLinear(x) + toLinear(y)) / 2.0
	return uint8(math.Pow(1.055*mean, 1.0/2.4) * 255.0 / 2.0)
}

// PerceptualAverage blends two channel values in linear light and
// re-encodes with the exact inverse curve. Equal inputs are returned unchanged.
func PerceptualAverage(x, y uint8) uint8 {
	mean := (toLinear(x) + toLinear(y)) / 2.0
	v := (1.055*math.Pow(mean, 1.0/2.4) - 0.055) * 255.0
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

// Combine blends two colours per channel using the given mode.
func Combine(a, b RGB, mode SmoothMode) RGB {
	var avg func(x, y uint8) uint8
	switch mode {
	case SmoothPerceptual:
		avg = PerceptualAverage
	case SmoothLegacy:
		avg = Average
	default:
		return a
	}
	return RGB{
		R: avg(a.R, b.R),
		G: avg(a.G, b.G),
		B: avg(a.B, b.B),
	}
}

// Smooth blends a rendered colour sample with the colour of the next row of
// the cell containing (wx, wy). The neighbour row is clamped to the last map
// row. Only one neighbour is used; folding in more with the legacy curve
// compounds its darkening into black.
func (t *Terrain) Smooth(c RGB, wx, wy float64, mode SmoothMode) RGB {
	if mode == SmoothNone {
		return c
	}
	row := wrap(int(math.Floor(wx)), t.Color.Height)
	col := int(math.Floor(wy))
	next := min(row+1, t.Color.Height-1)
	return Combine(c, t.Color.At(next, col), mode)
}
