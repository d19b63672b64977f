// Package config loads lvmat CLI settings from YAML or TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmat/matrix"
)

// Config holds all lvmat configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Codec   CodecConfig   `yaml:"codec" toml:"codec"`
	Render  RenderConfig  `yaml:"render" toml:"render"`
	Watch   WatchConfig   `yaml:"watch" toml:"watch"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level" toml:"level"`             // debug, info, warn, error
	Development bool   `yaml:"development" toml:"development"` // console encoder instead of JSON
}

// CodecConfig maps onto matrix options for Import/Export.
type CodecConfig struct {
	Precision      int  `yaml:"precision" toml:"precision"`               // -1 = exact round-trip
	MemoryMap      bool `yaml:"memory_map" toml:"memory_map"`             // mmap on import
	ValidateNaNInf bool `yaml:"validate_nan_inf" toml:"validate_nan_inf"` // reject NaN/Inf
}

// RenderConfig configures terminal output.
type RenderConfig struct {
	Styled bool `yaml:"styled" toml:"styled"` // bordered lipgloss grid
}

// WatchConfig configures the file watcher.
type WatchConfig struct {
	Debounce string `yaml:"debounce" toml:"debounce"` // Go duration, e.g. "200ms"
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Codec:   CodecConfig{Precision: matrix.DefaultPrecision},
		Watch:   WatchConfig{Debounce: "200ms"},
	}
}

// Load reads path, picking the decoder from its extension (.yaml, .yml,
// .toml). Keys missing from the file keep their Default() values.
// An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	if c.Codec.Precision < -1 {
		return fmt.Errorf("invalid codec.precision %d: must be >= -1", c.Codec.Precision)
	}
	if _, err := c.DebounceDuration(); err != nil {
		return err
	}

	return nil
}

// DebounceDuration parses Watch.Debounce; empty means zero.
func (c *Config) DebounceDuration() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid watch.debounce %q", c.Watch.Debounce)
	}

	return d, nil
}

// MatrixOptions converts the codec section into matrix options.
func (c *Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithPrecision(c.Codec.Precision),
		matrix.WithMemoryMap(c.Codec.MemoryMap),
		matrix.WithValidateNaNInf(c.Codec.ValidateNaNInf),
	}
}
