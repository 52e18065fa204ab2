// Package config reads and writes the chartscale TOML configuration file.
//
// Example ~/.config/chartscale/config.toml:
//
//	log_threshold = 1000.0
//	padding = 0.1
//	location = "Europe/Oslo"
//	range = [0.0, 640.0]
//
//	[s3]
//	region = "eu-north-1"
//	endpoint = "http://localhost:9000"
//	path_style = true
//
// Missing keys keep their defaults; a missing file yields Default().
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata" // location names must resolve on hosts without a zoneinfo database

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/chartscale/dataset"
	"github.com/katalvlaran/chartscale/scale"
)

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// ErrInvalid marks a config whose values cannot be turned into scale options.
var ErrInvalid = errors.New("config: invalid value")

// Config mirrors the TOML document.
type Config struct {
	LogThreshold float64   `toml:"log_threshold"`
	Padding      float64   `toml:"padding"`
	Location     string    `toml:"location"`
	Range        []float64 `toml:"range,omitempty"`
	S3           S3        `toml:"s3"`
}

// S3 holds the parameters for s3:// sources. Credentials come from the
// standard AWS environment and shared config files.
type S3 struct {
	Region    string `toml:"region,omitempty"`
	Endpoint  string `toml:"endpoint,omitempty"`
	PathStyle bool   `toml:"path_style,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogThreshold: scale.DefaultLogThreshold,
		Padding:      scale.DefaultPadding,
		Location:     "UTC",
	}
}

// DefaultPath returns <user config dir>/chartscale/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "chartscale", FileName), nil
}

// Load reads path over Default(). A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Validate checks every value the scale options would otherwise panic on.
func (c Config) Validate() error {
	if !(c.LogThreshold > 1) || math.IsInf(c.LogThreshold, 0) {
		return fmt.Errorf("%w: log_threshold must be > 1, got %v", ErrInvalid, c.LogThreshold)
	}
	if !(c.Padding >= 0 && c.Padding < 1) {
		return fmt.Errorf("%w: padding must be in [0,1), got %v", ErrInvalid, c.Padding)
	}
	if _, err := c.location(); err != nil {
		return fmt.Errorf("%w: location %q: %v", ErrInvalid, c.Location, err)
	}
	if len(c.Range) != 0 && len(c.Range) != 2 {
		return fmt.Errorf("%w: range needs two values, got %d", ErrInvalid, len(c.Range))
	}
	return nil
}

func (c Config) location() (*time.Location, error) {
	if c.Location == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Location)
}

// Options converts the config into scale options.
func (c Config) Options() ([]scale.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	loc, _ := c.location()
	opts := []scale.Option{
		scale.WithLogThreshold(c.LogThreshold),
		scale.WithPadding(c.Padding),
		scale.WithLocation(loc),
	}
	if len(c.Range) == 2 {
		opts = append(opts, scale.WithRange(c.Range[0], c.Range[1]))
	}
	return opts, nil
}

// S3Config converts the [s3] table for dataset.Load.
func (c Config) S3Config() dataset.S3Config {
	return dataset.S3Config{
		Region:    c.S3.Region,
		Endpoint:  c.S3.Endpoint,
		PathStyle: c.S3.PathStyle,
	}
}
