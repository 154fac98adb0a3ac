package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC)
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("shots", "voxel")
	sc.now = fixedClock

	assert.Equal(t, filepath.Join("shots", "voxel_2026-10-19_12-30-00.png"), sc.GenerateFilename())
	assert.Equal(t, filepath.Join("shots", "voxel_2026-10-19_12-30-00_1.png"), sc.GenerateFilename())

	here := NewScreenshotCapture("", "voxel")
	here.now = fixedClock
	assert.Equal(t, "voxel_2026-10-19_12-30-00.png", here.GenerateFilename())
}

func TestCaptureFromImage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sc := NewScreenshotCapture(dir, "frame")
	sc.now = fixedClock

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(2, 1, color.RGBA{10, 20, 30, 255})

	path, err := sc.CaptureFromImage(img)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)

	r, g, b, _ := decoded.At(2, 1).RGBA()
	assert.Equal(t, []uint32{10, 20, 30}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestCaptureFromPixelsPitch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "frame")
	sc.now = fixedClock

	// 2x2 image with 4 bytes of row padding.
	pitch := 12
	pixels := make([]byte, pitch*2)
	copy(pixels[pitch+4:], []byte{1, 2, 3, 255})

	path, err := sc.CaptureFromPixels(pixels, 2, 2, pitch)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)

	r, g, b, _ := decoded.At(1, 1).RGBA()
	assert.Equal(t, []uint32{1, 2, 3}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestCaptureFromPixelsRejectsShortData(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "frame")
	_, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2, 8)
	assert.Error(t, err)

	_, err = sc.CaptureFromPixels(make([]byte, 64), 4, 2, 8)
	assert.Error(t, err)
}
