package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"shade/internal/app/color"
	"shade/internal/app/errors"
	"shade/internal/app/palette"
)

// Config represents the application configuration
type Config struct {
	Theme   Theme  `yaml:"theme" mapstructure:"theme"`
	Server  Server `yaml:"server" mapstructure:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	}
	Watch   Watch `yaml:"watch" mapstructure:"watch"`
	Version int   `yaml:"version" mapstructure:"version"`

	// Path is the file the configuration was read from, empty when defaults are used
	Path string `yaml:"-" mapstructure:"-"`
}

// Theme holds the persisted theme colors
type Theme struct {
	Background string `yaml:"background" mapstructure:"background"`
	Accent     string `yaml:"accent" mapstructure:"accent"`
	Mode       string `yaml:"mode" mapstructure:"mode"`
}

// Server represents the http theme service configuration
type Server struct {
	Host            string        `yaml:"host" mapstructure:"host"`
	Port            int           `yaml:"port" mapstructure:"port"`
	EnableCORS      bool          `yaml:"enable_cors" mapstructure:"enable_cors"`
	CORSOrigins     []string      `yaml:"cors_origins" mapstructure:"cors_origins"`
	Metrics         bool          `yaml:"metrics" mapstructure:"metrics"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// Watch represents config hot-reload settings
type Watch struct {
	Enabled  bool          `yaml:"enabled" mapstructure:"enabled"`
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Version: 1,
	}

	cfg.Theme.Background = DefaultBackground
	cfg.Theme.Accent = DefaultAccent
	cfg.Theme.Mode = DefaultMode

	cfg.Server.Host = DefaultHost
	cfg.Server.Port = DefaultPort
	cfg.Server.EnableCORS = true
	cfg.Server.CORSOrigins = []string{DefaultCORSOrigin}
	cfg.Server.Metrics = true
	cfg.Server.ShutdownTimeout = DefaultShutdownTimeout

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Watch.Enabled = true
	cfg.Watch.Debounce = DefaultWatchDebounce

	return cfg
}

// Load reads path (shade.yaml when empty), applies .env and SHADE_* overrides and validates the result
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigFile
	}

	v := newViper()
	applyDotEnv(v, filepath.Join(filepath.Dir(path), EnvFile))

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
		}
	case os.IsNotExist(err):
		path = ""
	default:
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
	}

	cfg.Path = path
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper registers every key so SHADE_* environment variables are picked up
func newViper() *viper.Viper {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("theme.background", defaults.Theme.Background)
	v.SetDefault("theme.accent", defaults.Theme.Accent)
	v.SetDefault("theme.mode", defaults.Theme.Mode)
	v.SetDefault("server.host", defaults.Server.Host)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.enable_cors", defaults.Server.EnableCORS)
	v.SetDefault("server.cors_origins", defaults.Server.CORSOrigins)
	v.SetDefault("server.metrics", defaults.Server.Metrics)
	v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("watch.enabled", defaults.Watch.Enabled)
	v.SetDefault("watch.debounce", defaults.Watch.Debounce)
	v.SetDefault("version", defaults.Version)

	return v
}

// applyDotEnv layers SHADE_* entries from the .env file above the config file.
// The file is re-read on every call and never exported to the process, so a
// later edit takes effect while real environment variables keep precedence.
func applyDotEnv(v *viper.Viper, path string) {
	entries, err := godotenv.Read(path)
	if err != nil {
		return
	}

	for _, key := range v.AllKeys() {
		name := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))

		value, ok := entries[name]
		if !ok {
			continue
		}

		if _, set := os.LookupEnv(name); set {
			continue
		}

		v.Set(key, value)
	}
}

// ApplyDefaults fills blank values, an empty color means the stock color
func (c *Config) ApplyDefaults() {
	c.Theme.Background = strings.TrimSpace(c.Theme.Background)
	c.Theme.Accent = strings.TrimSpace(c.Theme.Accent)

	if c.Theme.Background == "" {
		c.Theme.Background = DefaultBackground
	}

	if c.Theme.Accent == "" {
		c.Theme.Accent = DefaultAccent
	}

	if c.Theme.Mode == "" {
		c.Theme.Mode = DefaultMode
	}

	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}

	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateTheme(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	return c.validateWatch()
}

// validateTheme validates colors and palette mode
func (c *Config) validateTheme() error {
	if _, err := color.Parse(c.Theme.Background); err != nil {
		return fmt.Errorf("theme.background: %w", err)
	}

	if _, err := color.Parse(c.Theme.Accent); err != nil {
		return fmt.Errorf("theme.accent: %w", err)
	}

	if _, err := palette.ParseMode(c.Theme.Mode); err != nil {
		return fmt.Errorf("theme.mode: %w", err)
	}

	return nil
}

// validateServer validates server settings
func (c *Config) validateServer() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.ErrInvalidPort
	}

	if c.Server.ShutdownTimeout <= 0 {
		return errors.ErrInvalidTimeout
	}

	return nil
}

// validateWatch validates watch settings
func (c *Config) validateWatch() error {
	if c.Watch.Debounce < 0 {
		return errors.ErrInvalidDebounce
	}

	return nil
}

// Addr returns host:port for the http listener
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// WriteDefault writes a default configuration file, refusing to overwrite unless force is set
func WriteDefault(path string, force bool) error {
	if path == "" {
		path = ConfigFile
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", errors.ErrConfigExists, path)
		}
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteConfig, err)
	}

	if err := WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteConfig, err)
	}

	return nil
}
