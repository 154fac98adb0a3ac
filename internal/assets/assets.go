// Package assets loads the elevation and colour maps that make up a terrain.
package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // GIF decoder registration
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp" // BMP decoder registration
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/logger"
	"github.com/Faultbox/voxelspace/internal/terrain"
)

var (
	// ErrUnsupportedFormat is returned for images no decoder understands.
	ErrUnsupportedFormat = errors.New("assets: unsupported image format")
	// ErrDimensionMismatch is returned when the two maps differ in size.
	ErrDimensionMismatch = errors.New("assets: map dimensions differ")
)

// DecodeImage decodes image data. TGA has no magic number, so it is
// selected by the file extension; everything else is sniffed.
func DecodeImage(data []byte, name string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		return DecodeTGA(data)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if errors.Is(err, image.ErrFormat) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	return img, err
}

// LoadImage reads and decodes an image file.
func LoadImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := DecodeImage(data, path)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// LoadTerrain decodes the elevation and colour maps concurrently and pairs them.
func LoadTerrain(ctx context.Context, heightPath, colorPath string) (*terrain.Terrain, error) {
	log := logger.Named("assets")

	var (
		hm *terrain.HeightMap
		cm *terrain.ColorMap
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		img, err := LoadImage(heightPath)
		if err != nil {
			return fmt.Errorf("height map: %w", err)
		}
		hm = terrain.HeightMapFromImage(img)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		img, err := LoadImage(colorPath)
		if err != nil {
			return fmt.Errorf("color map: %w", err)
		}
		cm = terrain.ColorMapFromImage(img)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if hm.Width != cm.Width || hm.Height != cm.Height {
		return nil, fmt.Errorf("%w: %s is %dx%d, %s is %dx%d", ErrDimensionMismatch,
			heightPath, hm.Width, hm.Height, colorPath, cm.Width, cm.Height)
	}

	t, err := terrain.New(hm, cm)
	if err != nil {
		return nil, err
	}

	lo, hi := hm.Range()
	log.Info("terrain loaded",
		zap.String("height_map", heightPath),
		zap.String("color_map", colorPath),
		zap.Int("width", t.Width()),
		zap.Int("rows", t.Rows()),
		zap.Uint8("min_elevation", lo),
		zap.Uint8("max_elevation", hi),
	)
	if !t.Square() {
		log.Warn("terrain is not square, rows and columns wrap independently",
			zap.Int("width", t.Width()),
			zap.Int("rows", t.Rows()),
		)
	}
	return t, nil
}

// LoadMaps returns the terrain described by the maps config, either
// generated or read from disk.
func LoadMaps(ctx context.Context, cfg config.MapsConfig) (*terrain.Terrain, error) {
	if cfg.Generate {
		t, err := terrain.Generate(terrain.GenerateOptions{Seed: cfg.Seed, Size: cfg.Size})
		if err != nil {
			return nil, err
		}
		logger.Named("assets").Info("terrain generated",
			zap.Int64("seed", cfg.Seed),
			zap.Int("size", cfg.Size),
		)
		return t, nil
	}
	return LoadTerrain(ctx, cfg.HeightMap, cfg.ColorMap)
}

// SaveTerrain writes the maps of t as height.png and color.png in dir.
func SaveTerrain(t *terrain.Terrain, dir string) (heightPath, colorPath string, err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", err
	}

	heightPath = filepath.Join(dir, "height.png")
	colorPath = filepath.Join(dir, "color.png")
	if err := writePNG(heightPath, t.Height.Image()); err != nil {
		return "", "", err
	}
	if err := writePNG(colorPath, t.Color.Image()); err != nil {
		return "", "", err
	}
	return heightPath, colorPath, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
