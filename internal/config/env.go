// Package config loads vjdump settings from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
)

// Config holds the defaults for vjdump flags. Flags given on the command
// line override them.
type Config struct {
	Label     string `env:"VJDUMP_LABEL"`
	NoAssets  bool   `env:"VJDUMP_NO_ASSETS"`
	Page      bool   `env:"VJDUMP_PAGE" envDefault:"true"`
	Measure   string `env:"VJDUMP_MEASURE" envDefault:"runes"`
	Limit     int    `env:"VJDUMP_LIMIT" envDefault:"100"`
	AllFields bool   `env:"VJDUMP_ALL_FIELDS"`
}

// Load reads Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
