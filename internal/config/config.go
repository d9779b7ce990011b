package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Weather  WeatherConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// WeatherConfig selects and tunes the weather provider.
type WeatherConfig struct {
	Provider    string
	BaseURL     string `mapstructure:"base_url"`
	APIKeyEnv   string `mapstructure:"api_key_env"`
	APIKey      string `mapstructure:"api_key"`
	Timeout     time.Duration
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	DefaultCity string        `mapstructure:"default_city"`
	Gazetteer   string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DisplayMode string `mapstructure:"display_mode"`
	Roster      []string
	LogFile     string `mapstructure:"log_file"`
}

// DefaultRoster mirrors the original ten-slot list.
var DefaultRoster = []string{
	"weather", "tictactoe", "calculator", "guessnumber",
	"weather", "tictactoe", "calculator", "guessnumber",
	"weather", "tictactoe",
}

func configDir() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "miniapps")
}

// Load reads configuration from file and env. Env var overrides use prefix MINIAPPS_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "miniapps", "miniapps.db"))
	v.SetDefault("weather.provider", "open-meteo")
	v.SetDefault("weather.base_url", "")
	v.SetDefault("weather.api_key_env", "")
	v.SetDefault("weather.api_key", "")
	v.SetDefault("weather.timeout", "8s")
	v.SetDefault("weather.cache_ttl", "15m")
	v.SetDefault("weather.default_city", "Moscow")
	v.SetDefault("weather.gazetteer", "")
	v.SetDefault("ui.display_mode", "compact")
	v.SetDefault("ui.roster", DefaultRoster)
	v.SetDefault("ui.log_file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MINIAPPS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MINIAPPS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Roster = normalizeRoster(c.UI.Roster)
	return c, nil
}

// Path is the file Save writes: MINIAPPS_CONFIG when set, else the default
// location Load searches.
func Path() string {
	if p := os.Getenv("MINIAPPS_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(configDir(), "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("weather.provider", cfg.Weather.Provider)
	v.Set("weather.base_url", cfg.Weather.BaseURL)
	v.Set("weather.api_key_env", cfg.Weather.APIKeyEnv)
	v.Set("weather.api_key", cfg.Weather.APIKey)
	v.Set("weather.timeout", cfg.Weather.Timeout.String())
	v.Set("weather.cache_ttl", cfg.Weather.CacheTTL.String())
	v.Set("weather.default_city", cfg.Weather.DefaultCity)
	v.Set("weather.gazetteer", cfg.Weather.Gazetteer)
	v.Set("ui.display_mode", cfg.UI.DisplayMode)
	v.Set("ui.roster", cfg.UI.Roster)
	v.Set("ui.log_file", cfg.UI.LogFile)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// normalizeRoster lower-cases entries and splits comma lists coming from env.
func normalizeRoster(in []string) []string {
	var out []string
	for _, raw := range in {
		for _, part := range strings.Split(raw, ",") {
			if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
				out = append(out, p)
			}
		}
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultRoster...)
	}
	return out
}
