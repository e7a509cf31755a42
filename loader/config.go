// SPDX-License-Identifier: MIT
// Package: mmgraph/loader
//
// config.go — YAML load profile and logger construction.
//
// A Config is the file-backed counterpart of the functional options:
//
//	index_base: 1            # 0 or 1
//	isolated_vertices: true  # run the isolated-vertex pass
//	log_level: info          # debug|info|warn|error; empty keeps the caller's logger
//
// Unknown keys are rejected. Missing keys keep DefaultConfig values.

package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mmgraph/mmio"
)

// ErrBadConfig indicates a config file that is malformed or holds an invalid value.
var ErrBadConfig = errors.New("loader: bad config")

// Config is a load profile read from YAML.
type Config struct {
	IndexBase        int    `yaml:"index_base"`
	IsolatedVertices bool   `yaml:"isolated_vertices"`
	LogLevel         string `yaml:"log_level"`
}

// DefaultConfig mirrors the defaults of LoadGraph without options.
func DefaultConfig() Config {
	return Config{
		IndexBase:        mmio.OneBased,
		IsolatedVertices: true,
	}
}

// ReadConfig decodes a Config from r over DefaultConfig. Empty input yields
// the defaults.
func ReadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("ReadConfig: %w: %w", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadConfigFile reads a Config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("LoadConfigFile: %w", err)
	}
	defer f.Close()

	return ReadConfig(f)
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.IndexBase != mmio.ZeroBased && c.IndexBase != mmio.OneBased {
		return fmt.Errorf("index_base=%d: %w", c.IndexBase, ErrBadConfig)
	}
	if c.LogLevel != "" {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level=%q: %w: %w", c.LogLevel, ErrBadConfig, err)
		}
	}

	return nil
}

// Options converts c into load options. If logger is nil and LogLevel is
// set, a production logger at that level is built.
func (c Config) Options(logger *zap.Logger) ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	opts := []Option{WithIndexBase(c.IndexBase)}
	if !c.IsolatedVertices {
		opts = append(opts, WithoutIsolatedVertices())
	}
	if logger == nil && c.LogLevel != "" {
		var err error
		if logger, err = NewLogger(c.LogLevel); err != nil {
			return nil, err
		}
	}
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}

	return opts, nil
}

// NewLogger builds a JSON production logger at the named level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("NewLogger: %w: %w", ErrBadConfig, err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return config.Build()
}
