package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagLight      = flag.String("light", "", "Selected light: rectangle, cylinder, disk or sphere")
	flagMode       = flag.String("mode", "", "Scene mode: single or showcase")
	flagSpheres    = flag.Int("spheres", -1, "Number of moving sphere lights in showcase mode")
	flagFrames     = flag.Int("frames", 0, "Exit after this many frames")
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
	if *flagLight != "" {
		cfg.Scene.Light = *flagLight
	}
	if *flagMode != "" {
		cfg.Scene.Mode = *flagMode
	}
	if *flagSpheres >= 0 {
		cfg.Scene.MovingSpheres = *flagSpheres
	}
	if *flagFrames > 0 {
		cfg.Scene.Frames = *flagFrames
	}
}
