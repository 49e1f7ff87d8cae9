// Package config loads game settings from defaults, an optional YAML file and
// WUMPUS_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the game settings
type Config struct {
	Pits      int    `mapstructure:"pits"`
	Bats      int    `mapstructure:"bats"`
	Arrows    int    `mapstructure:"arrows"`
	Seed      int64  `mapstructure:"seed"` // 0 picks a time based seed
	Locale    string `mapstructure:"locale"`
	LocaleDir string `mapstructure:"locale_dir"`
	Color     bool   `mapstructure:"color"`
	LogFile   string `mapstructure:"log_file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pits", 3)
	v.SetDefault("bats", 3)
	v.SetDefault("arrows", 5)
	v.SetDefault("seed", 0)
	v.SetDefault("locale", "en_GB")
	v.SetDefault("locale_dir", "locales")
	v.SetDefault("color", true)
	v.SetDefault("log_file", "")
}

// Load reads the configuration. path may be empty, in which case only defaults and
// the environment are used.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("WUMPUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the hazard counts make sense
func (c *Config) Validate() error {
	if c.Pits < 0 {
		return fmt.Errorf("pits must not be negative, got %d", c.Pits)
	}
	if c.Bats < 0 {
		return fmt.Errorf("bats must not be negative, got %d", c.Bats)
	}
	if c.Arrows < 1 {
		return fmt.Errorf("arrows must be at least 1, got %d", c.Arrows)
	}
	return nil
}
