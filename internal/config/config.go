package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds gallery presentation and interaction settings.
type UIConfig struct {
	FocusCycling    bool   `mapstructure:"focus_cycling"`
	SearchTimeoutMS int    `mapstructure:"search_timeout_ms"`
	StatusBar       bool   `mapstructure:"status_bar"`
	Theme           string `mapstructure:"theme"`
}

// Load reads configuration from file and env. Env var overrides use prefix ROSTER_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "roster", "roster.db"))
	v.SetDefault("ui.focus_cycling", false)
	v.SetDefault("ui.search_timeout_ms", 1500)
	v.SetDefault("ui.status_bar", true)
	v.SetDefault("ui.theme", "mocha")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ROSTER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "roster"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ROSTER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the gallery's settings screen.
func Save(cfg Config) error {
	path := os.Getenv("ROSTER_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "roster", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.focus_cycling", cfg.UI.FocusCycling)
	v.Set("ui.search_timeout_ms", cfg.UI.SearchTimeoutMS)
	v.Set("ui.status_bar", cfg.UI.StatusBar)
	v.Set("ui.theme", cfg.UI.Theme)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
