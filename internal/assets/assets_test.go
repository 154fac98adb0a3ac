package assets

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/terrain"
)

func writeTestPNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func testMaps(t *testing.T, w, h int) (heightPath, colorPath string) {
	t.Helper()
	dir := t.TempDir()

	gray := image.NewGray(image.Rect(0, 0, w, h))
	rgb := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray.SetGray(x, y, color.Gray{Y: uint8(x + y*w)})
			rgb.Set(x, y, color.RGBA{uint8(x * 20), uint8(y * 20), 7, 255})
		}
	}

	heightPath = filepath.Join(dir, "height.png")
	colorPath = filepath.Join(dir, "color.png")
	writeTestPNG(t, heightPath, gray)
	writeTestPNG(t, colorPath, rgb)
	return heightPath, colorPath
}

func TestLoadTerrain(t *testing.T) {
	heightPath, colorPath := testMaps(t, 4, 4)

	ter, err := LoadTerrain(context.Background(), heightPath, colorPath)
	require.NoError(t, err)

	assert.Equal(t, 4, ter.Width())
	assert.Equal(t, 4, ter.Rows())
	// Image pixel (x=col, y=row)
	assert.Equal(t, uint8(2+1*4), ter.Height.At(1, 2))
	assert.Equal(t, terrain.RGB{R: 40, G: 20, B: 7}, ter.Color.At(1, 2))
}

func TestLoadTerrainNonSquare(t *testing.T) {
	heightPath, colorPath := testMaps(t, 6, 3)

	ter, err := LoadTerrain(context.Background(), heightPath, colorPath)
	require.NoError(t, err)
	assert.False(t, ter.Square())
}

func TestLoadTerrainDimensionMismatch(t *testing.T) {
	heightPath, _ := testMaps(t, 4, 4)
	_, colorPath := testMaps(t, 8, 4)

	_, err := LoadTerrain(context.Background(), heightPath, colorPath)
	assert.True(t, errors.Is(err, ErrDimensionMismatch), "got %v", err)
}

func TestLoadTerrainMissingFile(t *testing.T) {
	heightPath, _ := testMaps(t, 4, 4)

	_, err := LoadTerrain(context.Background(), heightPath, filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadTerrainCancelled(t *testing.T) {
	heightPath, colorPath := testMaps(t, 4, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadTerrain(ctx, heightPath, colorPath)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDecodeImageUnsupported(t *testing.T) {
	_, err := DecodeImage([]byte("definitely not an image"), "map.xyz")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadBMP(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 0, color.RGBA{200, 100, 50, 255})

	path := filepath.Join(dir, "color.bmp")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, img))
	require.NoError(t, f.Close())

	decoded, err := LoadImage(path)
	require.NoError(t, err)
	cm := terrain.ColorMapFromImage(decoded)
	assert.Equal(t, terrain.RGB{R: 200, G: 100, B: 50}, cm.At(0, 1))
}

func TestLoadMapsGenerate(t *testing.T) {
	cfg := config.Default().Maps
	cfg.Generate = true
	cfg.Size = 16
	cfg.Seed = 5

	ter, err := LoadMaps(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 16, ter.Width())
}

func TestLoadMapsFromFiles(t *testing.T) {
	heightPath, colorPath := testMaps(t, 4, 4)
	cfg := config.MapsConfig{HeightMap: heightPath, ColorMap: colorPath}

	ter, err := LoadMaps(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, ter.Rows())
}

func TestSaveTerrainRoundTrip(t *testing.T) {
	ter, err := terrain.Generate(terrain.GenerateOptions{Seed: 2, Size: 16})
	require.NoError(t, err)

	heightPath, colorPath, err := SaveTerrain(ter, filepath.Join(t.TempDir(), "maps"))
	require.NoError(t, err)

	loaded, err := LoadTerrain(context.Background(), heightPath, colorPath)
	require.NoError(t, err)
	assert.Equal(t, ter.Height.Pix, loaded.Height.Pix)
	assert.Equal(t, ter.Color.Pix, loaded.Color.Pix)
}
