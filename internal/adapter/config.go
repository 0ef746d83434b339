package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Ads     AdsConfig     `mapstructure:"ads"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SourceConfig holds the Baserow record store settings
type SourceConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	TableID string        `mapstructure:"table_id"`
	Token   string        `mapstructure:"token"` // usually from GORESAN_SOURCE_TOKEN or .env
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds the offline snapshot settings
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

// AdsConfig holds the banner slot settings
type AdsConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	Platform         string        `mapstructure:"platform"` // "", "android", "ios" or "web"
	UnitID           string        `mapstructure:"unit_id"`
	TestMode         bool          `mapstructure:"test_mode"`
	CreativesTableID string        `mapstructure:"creatives_table_id"`
	CellWidthPx      float64       `mapstructure:"cell_width_px"`
	PixelDensity     float64       `mapstructure:"pixel_density"`
	AcquireTimeout   time.Duration `mapstructure:"acquire_timeout"`
	InitTimeout      time.Duration `mapstructure:"init_timeout"`
	RefreshInterval  time.Duration `mapstructure:"refresh_interval"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			BaseURL: "https://api.baserow.io",
			Timeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     defaultCachePath(),
		},
		Ads: AdsConfig{
			Enabled:         true,
			TestMode:        true,
			CellWidthPx:     8,
			PixelDensity:    1,
			AcquireTimeout:  5 * time.Second,
			InitTimeout:     10 * time.Second,
			RefreshInterval: time.Minute,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "goresan", "goresan.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "goresan", "goresan.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "goresan")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "goresan")
	}
}

// defaultCachePath returns the default cache directory path for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "goresan", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "goresan", "cache")
	}
}

// newViper builds a viper instance with defaults registered for every key
// so environment overrides apply even when no config file exists.
func newViper(configDirs ...string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range configDirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("GORESAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("source.base_url", d.Source.BaseURL)
	v.SetDefault("source.table_id", d.Source.TableID)
	v.SetDefault("source.token", d.Source.Token)
	v.SetDefault("source.timeout", d.Source.Timeout)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("ads.enabled", d.Ads.Enabled)
	v.SetDefault("ads.platform", d.Ads.Platform)
	v.SetDefault("ads.unit_id", d.Ads.UnitID)
	v.SetDefault("ads.test_mode", d.Ads.TestMode)
	v.SetDefault("ads.creatives_table_id", d.Ads.CreativesTableID)
	v.SetDefault("ads.cell_width_px", d.Ads.CellWidthPx)
	v.SetDefault("ads.pixel_density", d.Ads.PixelDensity)
	v.SetDefault("ads.acquire_timeout", d.Ads.AcquireTimeout)
	v.SetDefault("ads.init_timeout", d.Ads.InitTimeout)
	v.SetDefault("ads.refresh_interval", d.Ads.RefreshInterval)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.level", d.Logging.Level)
	return v
}

// LoadConfig loads configuration from .env, the config file and environment.
// Precedence: environment (including .env) over file over defaults.
func LoadConfig() (*Config, error) {
	return loadConfig(".env", defaultConfigPath(), ".")
}

func loadConfig(envFile string, configDirs ...string) (*Config, error) {
	// .env never overrides variables already set in the environment
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading %s: %w", envFile, err)
	}

	v := newViper(configDirs...)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to the default config file
func SaveConfig(cfg *Config) error {
	return saveConfig(cfg, defaultConfigPath())
}

func saveConfig(cfg *Config, configPath string) error {
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("source.base_url", cfg.Source.BaseURL)
	v.Set("source.table_id", cfg.Source.TableID)
	v.Set("source.token", cfg.Source.Token)
	v.Set("source.timeout", cfg.Source.Timeout.String())

	v.Set("cache.enabled", cfg.Cache.Enabled)
	v.Set("cache.dir", cfg.Cache.Dir)

	v.Set("ads.enabled", cfg.Ads.Enabled)
	v.Set("ads.platform", cfg.Ads.Platform)
	v.Set("ads.unit_id", cfg.Ads.UnitID)
	v.Set("ads.test_mode", cfg.Ads.TestMode)
	v.Set("ads.creatives_table_id", cfg.Ads.CreativesTableID)
	v.Set("ads.cell_width_px", cfg.Ads.CellWidthPx)
	v.Set("ads.pixel_density", cfg.Ads.PixelDensity)
	v.Set("ads.acquire_timeout", cfg.Ads.AcquireTimeout.String())
	v.Set("ads.init_timeout", cfg.Ads.InitTimeout.String())
	v.Set("ads.refresh_interval", cfg.Ads.RefreshInterval.String())

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	// The file may hold the API token
	if err := os.Chmod(configFile, 0600); err != nil {
		return fmt.Errorf("failed to restrict config file: %w", err)
	}
	return nil
}

// IsConfigured returns true if the table id and token are set
func (c *Config) IsConfigured() bool {
	return c.Source.TableID != "" && c.Source.Token != ""
}

// ClearCache removes all cached data
func ClearCache(dir string) error {
	if dir == "" {
		dir = defaultCachePath()
	}
	if err := os.RemoveAll(dir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}
