package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagHeightMap  = flag.String("heightmap", "", "Path to the elevation map image")
	flagColorMap   = flag.String("colormap", "", "Path to the colour map image")
	flagGenerate   = flag.Bool("generate", false, "Use procedurally generated terrain")
	flagSeed       = flag.Int64("seed", 0, "Seed for generated terrain")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowFPS = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagHeightMap != "" {
		cfg.Maps.HeightMap = *flagHeightMap
	}
	if *flagColorMap != "" {
		cfg.Maps.ColorMap = *flagColorMap
	}
	if *flagGenerate {
		cfg.Maps.Generate = true
	}
	if *flagSeed != 0 {
		cfg.Maps.Seed = *flagSeed
	}
}
