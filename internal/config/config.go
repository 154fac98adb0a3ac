// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/voxelspace/internal/terrain"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Render   RenderConfig   `yaml:"render"`
	Camera   CameraConfig   `yaml:"camera"`
	Maps     MapsConfig     `yaml:"maps"`
	Logging  LoggingConfig  `yaml:"logging"`
	Debug    DebugConfig    `yaml:"debug"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// RenderConfig holds the voxel renderer constants.
type RenderConfig struct {
	EyeHeight        float64 `yaml:"eye_height"`
	Horizon          float64 `yaml:"horizon"`
	ScaleHeight      float64 `yaml:"scale_height"`
	Distance         float64 `yaml:"distance"`
	DepthStep        float64 `yaml:"depth_step"`        // First depth increment
	DepthStepGrowth  float64 `yaml:"depth_step_growth"` // Added to the increment every slice
	SkyColor         string  `yaml:"sky_color"`         // Hex, e.g. "#70CEEB"
	Smoothing        string  `yaml:"smoothing"`         // none, perceptual or legacy
	AdvanceOffscreen bool    `yaml:"advance_offscreen"` // Step the sample position for columns below the viewport
}

// CameraConfig holds the starting pose and movement speeds.
type CameraConfig struct {
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
	Heading   float64 `yaml:"heading"`
	MoveSpeed float64 `yaml:"move_speed"` // World units per second
	TurnSpeed float64 `yaml:"turn_speed"` // Radians per second
}

// MapsConfig holds terrain map sources.
type MapsConfig struct {
	HeightMap string `yaml:"height_map"`
	ColorMap  string `yaml:"color_map"`
	Generate  bool   `yaml:"generate"` // Use procedural terrain instead of files
	Seed      int64  `yaml:"seed"`
	Size      int    `yaml:"size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	ShowFPS       bool   `yaml:"show_fps"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Render: RenderConfig{
			EyeHeight:       78,
			Horizon:         120,
			ScaleHeight:     220,
			Distance:        300,
			DepthStep:       1,
			DepthStepGrowth: 0.01,
			SkyColor:        "#70CEEB",
			Smoothing:       "none", // Unsmoothed colour, as the classic renderer draws
		},
		Camera: CameraConfig{
			StartX:    500,
			StartY:    800,
			Heading:   0,
			MoveSpeed: 15,
			TurnSpeed: 3,
		},
		Maps: MapsConfig{
			HeightMap: "maps/D17.png",
			ColorMap:  "maps/C17w.png",
			Seed:      1,
			Size:      1024,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
	}
}

// SkyRGB parses the sky colour into 8-bit channels.
func (c *Config) SkyRGB() (r, g, b uint8, err error) {
	col, err := colorful.Hex(c.Render.SkyColor)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("sky_color %q: %w", c.Render.SkyColor, err)
	}
	r, g, b = col.RGB255()
	return r, g, b, nil
}

// Validate reports every setting the renderer cannot work with.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if !(c.Render.Distance > 0) {
		errs = append(errs, fmt.Errorf("distance %v must be positive", c.Render.Distance))
	}
	if !(c.Render.DepthStep > 0) {
		errs = append(errs, fmt.Errorf("depth_step %v must be positive", c.Render.DepthStep))
	}
	if c.Render.DepthStepGrowth < 0 || math.IsNaN(c.Render.DepthStepGrowth) {
		errs = append(errs, fmt.Errorf("depth_step_growth %v must not be negative", c.Render.DepthStepGrowth))
	}
	if _, err := terrain.ParseSmoothMode(c.Render.Smoothing); err != nil {
		errs = append(errs, err)
	}
	if _, _, _, err := c.SkyRGB(); err != nil {
		errs = append(errs, err)
	}
	if math.IsNaN(c.Camera.MoveSpeed) || math.IsNaN(c.Camera.TurnSpeed) {
		errs = append(errs, errors.New("camera speeds must be numbers"))
	}
	if c.Maps.Generate && c.Maps.Size <= 1 {
		errs = append(errs, fmt.Errorf("generated map size %d too small", c.Maps.Size))
	}
	if !c.Maps.Generate && (c.Maps.HeightMap == "" || c.Maps.ColorMap == "") {
		errs = append(errs, errors.New("height_map and color_map are required unless generate is set"))
	}

	return errors.Join(errs...)
}
