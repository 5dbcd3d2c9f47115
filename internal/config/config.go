package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jask/launchdeck/internal/spacex"
)

// Config holds application configuration.
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// APIConfig points at the launch data service.
type APIConfig struct {
	Endpoint  string        `mapstructure:"endpoint"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// DatabaseConfig holds the fetch archive settings.
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Enabled bool   `mapstructure:"enabled"`
}

// UIConfig holds presentation settings. An empty Timezone shows launch times
// in the launch site's own offset.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	Timezone   string `mapstructure:"timezone"`
}

// LogConfig controls the debug log. The TUI owns the terminal, so logs go to File.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DefaultPath is where Load looks for config.toml when neither an explicit
// path nor LAUNCHDECK_CONFIG is given.
func DefaultPath() string {
	if p := os.Getenv("LAUNCHDECK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "launchdeck", "config.toml")
}

func setDefaults(v *viper.Viper) {
	home := os.Getenv("HOME")

	v.SetDefault("api.endpoint", spacex.DefaultEndpoint)
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("api.user_agent", "launchdeck")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "launchdeck", "launchdeck.db"))
	v.SetDefault("database.enabled", true)
	v.SetDefault("ui.date_format", "2006-01-02 15:04 MST")
	v.SetDefault("ui.timezone", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(home, ".local", "state", "launchdeck", "debug.log"))
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	v.SetEnvPrefix("LAUNCHDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from .env, the config file and the environment.
// Env var overrides use prefix LAUNCHDECK_ (api.timeout -> LAUNCHDECK_API_TIMEOUT).
// A missing config file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := newViper()
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Default returns the built-in configuration without consulting files or env.
func Default() (Config, error) {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal defaults: %w", err)
	}
	return c, nil
}

// Location resolves UI.Timezone. A nil location means "keep the site offset".
func (c Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.UI.Timezone)
	if tz == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return loc, nil
}

// Save writes cfg as TOML to path, creating the config directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("api.endpoint", cfg.API.Endpoint)
	v.Set("api.timeout", cfg.API.Timeout.String())
	v.Set("api.user_agent", cfg.API.UserAgent)
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.enabled", cfg.Database.Enabled)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
