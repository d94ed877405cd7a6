package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds runtime configuration for the forest CLI.
// Values are populated from .forest.yaml, FOREST_* env vars, and CLI flags.
type Config struct {
	DBPath  string `mapstructure:"db"`
	JSON    bool   `mapstructure:"json"`
	TopN    int    `mapstructure:"top_n"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("db", "")
	viper.SetDefault("json", false)
	viper.SetDefault("top_n", 10)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.TopN < 1 {
		return Config{}, fmt.Errorf("top_n must be at least 1, got %d", cfg.TopN)
	}
	return cfg, nil
}
