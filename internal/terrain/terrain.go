// Package terrain holds the elevation and colour grids the voxel renderer samples,
// addressed toroidally so the terrain tiles infinitely in every direction.
package terrain

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrEmptyMap is returned when a map has no cells.
var ErrEmptyMap = errors.New("terrain: empty map")

// RGB is an 8-bit colour triple.
type RGB struct {
	R, G, B uint8
}

// HeightMap is a row-major grid of 8-bit elevations.
type HeightMap struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewHeightMap allocates a zeroed height map.
func NewHeightMap(width, height int) *HeightMap {
	return &HeightMap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// HeightMapFromImage converts an image to luma elevations.
func HeightMapFromImage(img image.Image) *HeightMap {
	b := img.Bounds()
	hm := NewHeightMap(b.Dx(), b.Dy())

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < hm.Height; y++ {
			src := gray.Pix[y*gray.Stride : y*gray.Stride+hm.Width]
			copy(hm.Pix[y*hm.Width:], src)
		}
		return hm
	}

	for y := 0; y < hm.Height; y++ {
		for x := 0; x < hm.Width; x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			hm.Pix[y*hm.Width+x] = g.Y
		}
	}
	return hm
}

// At returns the elevation at (row, col), wrapping both indices.
func (m *HeightMap) At(row, col int) uint8 {
	return m.Pix[wrap(row, m.Height)*m.Width+wrap(col, m.Width)]
}

// Set writes the elevation at (row, col), wrapping both indices.
func (m *HeightMap) Set(row, col int, v uint8) {
	m.Pix[wrap(row, m.Height)*m.Width+wrap(col, m.Width)] = v
}

// Range returns the lowest and highest elevation in the map.
func (m *HeightMap) Range() (lo, hi uint8) {
	if len(m.Pix) == 0 {
		return 0, 0
	}
	lo, hi = 255, 0
	for _, v := range m.Pix {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// Image returns the height map as a grayscale image.
func (m *HeightMap) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	copy(img.Pix, m.Pix)
	return img
}

// ColorMap is a row-major grid of RGB colours.
type ColorMap struct {
	Width  int
	Height int
	Pix    []RGB
}

// NewColorMap allocates a black colour map.
func NewColorMap(width, height int) *ColorMap {
	return &ColorMap{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

// ColorMapFromImage converts an image to an RGB colour map, dropping alpha.
func ColorMapFromImage(img image.Image) *ColorMap {
	b := img.Bounds()
	cm := NewColorMap(b.Dx(), b.Dy())

	for y := 0; y < cm.Height; y++ {
		for x := 0; x < cm.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			cm.Pix[y*cm.Width+x] = RGB{c.R, c.G, c.B}
		}
	}
	return cm
}

// At returns the colour at (row, col), wrapping both indices.
func (m *ColorMap) At(row, col int) RGB {
	return m.Pix[wrap(row, m.Height)*m.Width+wrap(col, m.Width)]
}

// Set writes the colour at (row, col), wrapping both indices.
func (m *ColorMap) Set(row, col int, c RGB) {
	m.Pix[wrap(row, m.Height)*m.Width+wrap(col, m.Width)] = c
}

// Image returns the colour map as an opaque RGBA image.
func (m *ColorMap) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for i, c := range m.Pix {
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = 255
	}
	return img
}

// Terrain pairs an elevation grid with an index-aligned colour grid.
// Both maps are read-only once constructed and may be shared freely.
type Terrain struct {
	Height *HeightMap
	Color  *ColorMap
}

// New validates that both maps are non-empty and equally sized.
func New(height *HeightMap, colors *ColorMap) (*Terrain, error) {
	if height == nil || colors == nil || len(height.Pix) == 0 || len(colors.Pix) == 0 {
		return nil, ErrEmptyMap
	}
	if height.Width != colors.Width || height.Height != colors.Height {
		return nil, fmt.Errorf("terrain: height map is %dx%d but color map is %dx%d",
			height.Width, height.Height, colors.Width, colors.Height)
	}
	return &Terrain{Height: height, Color: colors}, nil
}

// Width returns the number of columns.
func (t *Terrain) Width() int { return t.Height.Width }

// Rows returns the number of rows.
func (t *Terrain) Rows() int { return t.Height.Height }

// Square reports whether the maps have as many rows as columns.
func (t *Terrain) Square() bool {
	return t.Height.Width == t.Height.Height
}

// wrap reduces i into [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
