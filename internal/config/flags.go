package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging and FPS logging")
	flagBackend     = flag.String("backend", "", "Window backend (sdl or glfw)")
	flagScene       = flag.String("scene", "", "Path to a YAML scene manifest")
	flagShowBounds  = flag.Bool("show-bounds", false, "Draw collision boxes")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config and scene to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config destination, or "".
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.LogFPS = true
	}
	if *flagBackend != "" {
		cfg.Graphics.Backend = *flagBackend
	}
	if *flagScene != "" {
		cfg.Scene.Manifest = *flagScene
	}
	if *flagShowBounds {
		cfg.Debug.ShowBounds = true
	}
}
