// Package config handles viewer and generation configuration.
package config

// Config holds all terramap settings.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WorldConfig holds terrain generation inputs. Points <= 0 means "derive
// a target from the domain area at startup". Seed 0 means "pick a random
// seed at startup".
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Points int     `yaml:"points"`
	Seed   int64   `yaml:"seed"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	WindowWidth  int  `yaml:"window_width"`
	WindowHeight int  `yaml:"window_height"`
	VSync        bool `yaml:"vsync"`
	FPSLimit     int  `yaml:"fps_limit"`
	ShowHUD      bool `yaml:"show_hud"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:  1000,
			Height: 1000,
			Points: 0,
			Seed:   0,
		},
		Graphics: GraphicsConfig{
			WindowWidth:  1000,
			WindowHeight: 1000,
			VSync:        true,
			FPSLimit:     0,
			ShowHUD:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
