package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	appName   = "playlist-sorter"
	envPrefix = "PLAYLIST_SORTER"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
	UI      UIConfig      `mapstructure:"ui"`
}

// APIConfig points at the playlist sorter service
type APIConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	SessionPath string        `mapstructure:"session_path"`
	Timeout     time.Duration `mapstructure:"timeout"`
	RateLimit   float64       `mapstructure:"rate_limit"` // requests per second, 0 = unlimited
	// LongTimeout bounds login and playlist creation, negative = no deadline
	LongTimeout time.Duration `mapstructure:"long_timeout"`
}

// StorageConfig holds local persistence settings
type StorageConfig struct {
	Path string `mapstructure:"path"` // empty keeps preferences in memory
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Dir    string `mapstructure:"dir"`
	Prefix string `mapstructure:"prefix"`
	Level  string `mapstructure:"level"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	Locale          string        `mapstructure:"locale"` // BCP 47 tag used for title/channel ordering
	RefreshCooldown time.Duration `mapstructure:"refresh_cooldown"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     "http://localhost:5000",
			SessionPath: "/api/playlists",
			Timeout:     30 * time.Second,
			RateLimit:   5,
			LongTimeout: 10 * time.Minute,
		},
		Storage: StorageConfig{
			Path: filepath.Join(defaultDataPath(), "preferences.db"),
		},
		Logging: LoggingConfig{
			Dir:    filepath.Join(defaultDataPath(), "logs"),
			Prefix: "playlist_sorter_tui",
			Level:  "info",
		},
		UI: UIConfig{
			Locale:          "en",
			RefreshCooldown: 30 * time.Second,
		},
	}
}

func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", appName)
	}
}

// DefaultConfigDir returns the directory searched for config.yaml
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
}

// Load reads configuration from file and environment. With an empty path
// config.yaml is searched in DefaultConfigDir and the working directory; a
// missing file is fine, defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers every key so environment overrides work without a
// config file.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.session_path", d.API.SessionPath)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("api.rate_limit", d.API.RateLimit)
	v.SetDefault("api.long_timeout", d.API.LongTimeout)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("logging.dir", d.Logging.Dir)
	v.SetDefault("logging.prefix", d.Logging.Prefix)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("ui.locale", d.UI.Locale)
	v.SetDefault("ui.refresh_cooldown", d.UI.RefreshCooldown)
}

// Validate rejects values the client cannot work with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return fmt.Errorf("invalid configuration: api.base_url is required")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("invalid configuration: api.timeout must not be negative")
	}
	if c.API.RateLimit < 0 {
		return fmt.Errorf("invalid configuration: api.rate_limit must not be negative")
	}
	return nil
}
