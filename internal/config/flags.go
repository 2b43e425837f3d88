package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagWidth  = flag.Float64("width", 0, "Domain width")
	flagHeight = flag.Float64("height", 0, "Domain height")
	flagPoints = flag.Int("points", 0, "Target cell count")
	flagSeed   = flag.Int64("seed", 0, "Generation seed (0 = random)")
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
	if *flagWidth > 0 {
		cfg.World.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.World.Height = *flagHeight
	}
	if *flagPoints > 0 {
		cfg.World.Points = *flagPoints
	}
	if *flagSeed != 0 {
		cfg.World.Seed = *flagSeed
	}
}
