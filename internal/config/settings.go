package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every settings variable.
const EnvPrefix = "COSMIC_MINES_"

// Settings are the run-time options read from the environment.
type Settings struct {
	LogLevel    string  `env:"LOG_LEVEL" envDefault:"info"`
	AssetsDir   string  `env:"ASSETS_DIR" envDefault:"assets"`
	RecordsPath string  `env:"RECORDS_PATH" envDefault:"cosmic-mines.db"`
	NoRecords   bool    `env:"NO_RECORDS" envDefault:"false"`
	Seed        int64   `env:"SEED" envDefault:"0"`
	WindowScale float64 `env:"WINDOW_SCALE" envDefault:"1"`
	SkipIntro   bool    `env:"SKIP_INTRO" envDefault:"false"`
}

// LoadSettings parses Settings. A nil environ reads the process environment.
func LoadSettings(environ map[string]string) (Settings, error) {
	var s Settings
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.WindowScale <= 0 {
		return Settings{}, fmt.Errorf("window scale must be positive, got %v", s.WindowScale)
	}
	return s, nil
}

// WindowSize is the scaled window size in device-independent pixels.
func (s Settings) WindowSize() (int, int) {
	return int(float64(ScreenWidth) * s.WindowScale), int(float64(ScreenHeight) * s.WindowScale)
}
