// vxtool is a CLI utility for rendering and inspecting voxel terrain offline.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Faultbox/voxelspace/internal/assets"
	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/engine/debug"
	"github.com/Faultbox/voxelspace/internal/engine/scene"
	"github.com/Faultbox/voxelspace/internal/engine/surface"
	"github.com/Faultbox/voxelspace/internal/logger"
	"github.com/Faultbox/voxelspace/internal/terrain"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	if err := logger.Init("warn", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	switch command {
	case "render", "r":
		cmdRender(args)
	case "generate", "gen":
		cmdGenerate(args)
	case "info":
		cmdInfo(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`vxtool - voxel terrain utility

Usage:
  vxtool <command> [options]

Commands:
  render [options]             Render one frame to a PNG
  generate [options]           Write a procedural height and colour map
  info <map>                   Show map dimensions and elevation range
  config [-o file]             Write the default viewer config

Examples:
  vxtool render -heightmap maps/D17.png -colormap maps/C17w.png -x 500 -y 800 -o shots
  vxtool render -seed 7 -heading 1.2 -smoothing legacy
  vxtool generate -seed 7 -size 512 -o maps/gen
  vxtool info maps/D17.png
  vxtool config -o config.yaml`)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func cmdRender(args []string) {
	cfg := config.Default()

	fs := flag.NewFlagSet("render", flag.ExitOnError)
	fs.StringVar(&cfg.Maps.HeightMap, "heightmap", "", "Elevation map (generated terrain if empty)")
	fs.StringVar(&cfg.Maps.ColorMap, "colormap", "", "Colour map")
	fs.Int64Var(&cfg.Maps.Seed, "seed", cfg.Maps.Seed, "Seed for generated terrain")
	fs.IntVar(&cfg.Maps.Size, "size", cfg.Maps.Size, "Size of generated terrain")
	fs.Float64Var(&cfg.Camera.StartX, "x", cfg.Camera.StartX, "Camera X")
	fs.Float64Var(&cfg.Camera.StartY, "y", cfg.Camera.StartY, "Camera Y")
	fs.Float64Var(&cfg.Camera.Heading, "heading", cfg.Camera.Heading, "Camera heading in radians")
	fs.Float64Var(&cfg.Render.EyeHeight, "eye", cfg.Render.EyeHeight, "Eye height")
	fs.Float64Var(&cfg.Render.Distance, "distance", cfg.Render.Distance, "Draw distance")
	fs.StringVar(&cfg.Render.Smoothing, "smoothing", cfg.Render.Smoothing, "Colour smoothing: none, perceptual or legacy")
	fs.BoolVar(&cfg.Render.AdvanceOffscreen, "advance-offscreen", false, "Advance the sample position for offscreen columns")
	fs.IntVar(&cfg.Graphics.Width, "w", cfg.Graphics.Width, "Image width")
	fs.IntVar(&cfg.Graphics.Height, "h", cfg.Graphics.Height, "Image height")
	output := fs.String("o", ".", "Output directory")
	fs.Parse(args)

	generate, err := mapSource(cfg.Maps.HeightMap, cfg.Maps.ColorMap)
	if err != nil {
		fail("%v", err)
	}
	cfg.Maps.Generate = generate
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}

	t, err := assets.LoadMaps(context.Background(), cfg.Maps)
	if err != nil {
		fail("%v", err)
	}

	s, err := scene.New(cfg, t)
	if err != nil {
		fail("%v", err)
	}

	fb := surface.NewFramebuffer(cfg.Graphics.Width, cfg.Graphics.Height)
	stats, err := s.Step(fb, camera.Controls{}, 0)
	if err != nil {
		fail("%v", err)
	}

	path, err := debug.NewScreenshotCapture(*output, "render").CaptureFromImage(fb.Image())
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Rendered: %s\n", path)
	fmt.Printf("Slices:   %d (final depth %.1f)\n", stats.Slices, stats.FinalDepth)
	fmt.Printf("Lines:    %d\n", stats.Lines)
}

// mapSource reports whether render should generate its terrain. Both maps
// are required when either is given.
func mapSource(heightMap, colorMap string) (generate bool, err error) {
	switch {
	case heightMap == "" && colorMap == "":
		return true, nil
	case heightMap == "":
		return false, errors.New("-colormap needs -heightmap")
	case colorMap == "":
		return false, errors.New("-heightmap needs -colormap")
	}
	return false, nil
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	seed := fs.Int64("seed", 1, "Noise seed")
	size := fs.Int("size", 1024, "Map size in pixels")
	output := fs.String("o", "maps", "Output directory")
	fs.Parse(args)

	t, err := terrain.Generate(terrain.GenerateOptions{Seed: *seed, Size: *size})
	if err != nil {
		fail("%v", err)
	}

	heightPath, colorPath, err := assets.SaveTerrain(t, *output)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Height map: %s\n", heightPath)
	fmt.Printf("Colour map: %s\n", colorPath)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vxtool info <map>")
		os.Exit(1)
	}

	img, err := assets.LoadImage(args[0])
	if err != nil {
		fail("%v", err)
	}

	hm := terrain.HeightMapFromImage(img)
	lo, hi := hm.Range()

	fmt.Printf("Map:       %s\n", args[0])
	fmt.Printf("Size:      %dx%d\n", hm.Width, hm.Height)
	fmt.Printf("Square:    %v\n", hm.Width == hm.Height)
	fmt.Printf("Elevation: %d..%d\n", lo, hi)
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	output := fs.String("o", "", "Output file (default: user config directory)")
	fs.Parse(args)

	cfg := config.Default()
	path := *output
	var err error
	if path == "" {
		path = filepath.Join(config.ConfigDir(), "config.yaml")
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Config: %s\n", path)
}
