package terrain

import vmath "github.com/Faultbox/voxelspace/pkg/math"

// Sample returns the bilinearly interpolated elevation and colour at a
// fractional world position.
//
// Map rows are indexed by world X and columns by world Y, so the image pixel
// at (x=col, y=row) holds the cell. Each row is blended along X first and
// truncated to 8 bits, then the row one step further in Y is blended toward
// the nearer row with weight fy.
func (t *Terrain) Sample(wx, wy float64) (float64, RGB) {
	p := vmath.Vec2{X: wx, Y: wy}
	base, frac := p.Floor(), p.Fract()
	fx, fy := frac.X, frac.Y

	left := int(base.X)
	right := left + 1
	upper := int(base.Y)
	lower := upper + 1

	h := t.Height
	upperAlt := Lerp(h.At(left, upper), h.At(right, upper), fx)
	lowerAlt := Lerp(h.At(left, lower), h.At(right, lower), fx)
	alt := Lerp(uint8(lowerAlt), uint8(upperAlt), fy)

	c := t.Color
	upperColor := LerpColor(c.At(left, upper), c.At(right, upper), fx)
	lowerColor := LerpColor(c.At(left, lower), c.At(right, lower), fx)

	return alt, LerpColor(lowerColor, upperColor, fy)
}

// Lerp blends two elevations. Equal endpoints come back exactly, so flat
// terrain samples to the same height everywhere.
func Lerp(a, b uint8, t float64) float64 {
	return float64(a) + (float64(b)-float64(a))*t
}

// LerpColor blends two colours channel by channel, truncating each result.
func LerpColor(a, b RGB, t float64) RGB {
	return RGB{
		R: uint8(Lerp(a.R, b.R, t)),
		G: uint8(Lerp(a.G, b.G, t)),
		B: uint8(Lerp(a.B, b.B, t)),
	}
}
