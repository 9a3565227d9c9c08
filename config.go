package boxkit

import (
	"github.com/dmitrymomot/boxkit/pkg/boxname"
	"github.com/dmitrymomot/boxkit/pkg/config"
	"github.com/dmitrymomot/boxkit/pkg/palette"
)

// Config holds the tunables of a Kit. Field defaults match the package defaults.
type Config struct {
	MinColorDistance int    `env:"BOXKIT_MIN_COLOR_DISTANCE" envDefault:"100"`
	MaxColorAttempts int    `env:"BOXKIT_MAX_COLOR_ATTEMPTS" envDefault:"1000000"`
	RegisterColors   bool   `env:"BOXKIT_REGISTER_COLORS" envDefault:"false"`
	FirstBoxID       int    `env:"BOXKIT_FIRST_BOX_ID" envDefault:"1"`
	LogLevel         string `env:"BOXKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"BOXKIT_LOG_FORMAT" envDefault:"text"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		MinColorDistance: palette.DefaultThreshold,
		MaxColorAttempts: palette.DefaultMaxAttempts,
		FirstBoxID:       boxname.DefaultStart,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// LoadConfig reads Config from the environment (and an optional .env file).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
