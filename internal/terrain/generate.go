package terrain

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	baseFrequency   = 4.0
	detailFrequency = 24.0
	zoneFrequency   = 1.5
)

// GenerateOptions controls procedural terrain generation.
type GenerateOptions struct {
	Seed int64
	Size int
}

// rampStop maps an elevation to a colour; the ramp is blended in Lab space.
type rampStop struct {
	level uint8
	color colorful.Color
}

var defaultRamp = []rampStop{
	{0, mustHex("#123a6b")},
	{58, mustHex("#2f6fa8")},
	{66, mustHex("#d8c58f")},
	{84, mustHex("#6b8f3a")},
	{140, mustHex("#3f5f2a")},
	{190, mustHex("#7a6a58")},
	{228, mustHex("#b0a89c")},
	{255, mustHex("#f4f4f4")},
}

// mustHex parses a colour literal from the ramp table.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("terrain: bad ramp colour %q: %v", s, err))
	}
	return c
}

// generator layers perlin noise the way the mk48 coastline generator does:
// a broad landmass, fine detail and a very low frequency zone mask.
type generator struct {
	size   float64
	land   *perlin.Perlin
	detail *perlin.Perlin
	zone   *perlin.Perlin
}

// Generate builds a square, seamlessly tiling terrain from noise.
// The same seed and size always produce the same maps.
func Generate(opts GenerateOptions) (*Terrain, error) {
	if opts.Size <= 1 {
		return nil, fmt.Errorf("terrain: generate size %d too small", opts.Size)
	}

	g := &generator{
		size:   float64(opts.Size),
		land:   perlin.NewPerlin(2, 2, 4, opts.Seed),
		detail: perlin.NewPerlin(1.5, 2, 3, opts.Seed+1),
		zone:   perlin.NewPerlin(2.5, 3, 2, opts.Seed+2),
	}

	hm := NewHeightMap(opts.Size, opts.Size)
	for row := 0; row < opts.Size; row++ {
		for col := 0; col < opts.Size; col++ {
			hm.Set(row, col, g.elevation(float64(col), float64(row)))
		}
	}

	cm := NewColorMap(opts.Size, opts.Size)
	for row := 0; row < opts.Size; row++ {
		for col := 0; col < opts.Size; col++ {
			h := hm.At(row, col)
			// Light from the previous row gives slopes some relief.
			slope := float64(h) - float64(hm.At(row-1, col-1))
			cm.Set(row, col, shade(rampColor(h), slope))
		}
	}

	return New(hm, cm)
}

// elevation returns the noise height at (x, y) as a byte.
func (g *generator) elevation(x, y float64) uint8 {
	land := g.tileable(g.land, x, y, baseFrequency)
	detail := g.tileable(g.detail, x, y, detailFrequency)
	zone := clamp(g.tileable(g.zone, x, y, zoneFrequency)*1.5+0.7, 0.2, 1)

	h := (land*0.8 + detail*0.2) * zone
	return clampToByte((h*0.5 + 0.5) * 255)
}

// tileable samples noise so the field wraps at the map size: four copies
// offset by one period are weighted by position inside the period.
func (g *generator) tileable(p *perlin.Perlin, x, y, freq float64) float64 {
	s := g.size
	u := x / s
	v := y / s
	at := func(px, py float64) float64 {
		return p.Noise2D(px/s*freq, py/s*freq)
	}
	a := at(x, y)
	b := at(x-s, y)
	c := at(x, y-s)
	d := at(x-s, y-s)
	return a*(1-u)*(1-v) + b*u*(1-v) + c*(1-u)*v + d*u*v
}

func rampColor(h uint8) colorful.Color {
	for i := 1; i < len(defaultRamp); i++ {
		hi := defaultRamp[i]
		if h > hi.level {
			continue
		}
		lo := defaultRamp[i-1]
		t := float64(h-lo.level) / float64(hi.level-lo.level)
		return lo.color.BlendLab(hi.color, t)
	}
	return defaultRamp[len(defaultRamp)-1].color
}

func shade(c colorful.Color, slope float64) RGB {
	l, a, b := c.Lab()
	l = clamp(l+slope*0.01, 0, 1)
	r, g, bl := colorful.Lab(l, a, b).Clamped().RGB255()
	return RGB{r, g, bl}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampToByte(v float64) uint8 {
	return uint8(clamp(v, 0, 255))
}
