// SPDX-License-Identifier: MIT
// Package config loads the service configuration: defaults, then an optional
// YAML file, then environment overrides, then Validate.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/zagreb/connectivity"
)

// Environment overrides.
const (
	EnvAddr      = "ZAGREB_ADDR"
	EnvLogLevel  = "ZAGREB_LOG_LEVEL"
	EnvLogFormat = "ZAGREB_LOG_FORMAT"
	EnvMode      = "ZAGREB_MODE"
	EnvRateQPS   = "ZAGREB_RATE_QPS"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Server holds HTTP listener settings.
type Server struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
	// RateQPS and RateBurst configure the per-client token bucket; 0 disables it.
	RateQPS   float64 `yaml:"rate_qps"`
	RateBurst int     `yaml:"rate_burst"`
	// RateIdleTTL drops the bucket of a client silent for this long.
	RateIdleTTL time.Duration `yaml:"rate_idle_ttl"`
}

// Log holds logger settings.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// Analysis holds engine defaults for the binding layer.
type Analysis struct {
	Mode connectivity.Mode `yaml:"mode"`
	// ExhaustiveVertexLimit refuses ModeExhaustive above this order.
	ExhaustiveVertexLimit int `yaml:"exhaustive_vertex_limit"`
	// MaxVertices refuses larger graphs in every mode.
	MaxVertices int `yaml:"max_vertices"`
}

// Config is the full service configuration.
type Config struct {
	Server   Server   `yaml:"server"`
	Log      Log      `yaml:"log"`
	Analysis Analysis `yaml:"analysis"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			MaxBodyBytes:    8 << 20,
			RateQPS:         0,
			RateBurst:       20,
			RateIdleTTL:     10 * time.Minute,
		},
		Log: Log{Level: "info", Format: "json"},
		Analysis: Analysis{
			Mode:                  connectivity.ModeApprox,
			ExhaustiveVertexLimit: 24,
			MaxVertices:           5000,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config.Load: %w", err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config.Load(%s): %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyEnv overlays environment variables read through lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAddr); ok {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvMode); ok {
		m, err := connectivity.ParseMode(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvMode, err)
		}
		c.Analysis.Mode = m
	}
	if v, ok := lookup(EnvRateQPS); ok {
		qps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvRateQPS, v, err)
		}
		c.Server.RateQPS = qps
	}

	return nil
}

// Validate checks every field for a usable value.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is empty"))
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server timeouts must be positive"))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("server.max_body_bytes must be positive"))
	}
	if c.Server.RateQPS < 0 || (c.Server.RateQPS > 0 && c.Server.RateBurst < 1) {
		errs = append(errs, errors.New("server.rate_qps must be ≥ 0 with rate_burst ≥ 1"))
	}
	if c.Server.RateQPS > 0 && c.Server.RateIdleTTL <= 0 {
		errs = append(errs, errors.New("server.rate_idle_ttl must be positive when limiting"))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not json or console", c.Log.Format))
	}
	if c.Analysis.ExhaustiveVertexLimit < 1 {
		errs = append(errs, errors.New("analysis.exhaustive_vertex_limit must be ≥ 1"))
	}
	if c.Analysis.MaxVertices < 1 {
		errs = append(errs, errors.New("analysis.max_vertices must be ≥ 1"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
