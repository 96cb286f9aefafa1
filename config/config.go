// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config loads SkillHub client settings from an XDG config file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/skillhub-club/skillhub-go/client"
	"github.com/skillhub-club/skillhub-go/env"
	"github.com/skillhub-club/skillhub-go/logging"
	httpval "github.com/skillhub-club/skillhub-go/validation/http"
)

// Environment variables read by Load.
const (
	EnvBaseURL   = "SKILLHUB_BASE_URL"
	EnvToken     = "SKILLHUB_TOKEN"
	EnvTimeout   = "SKILLHUB_TIMEOUT"
	EnvLogLevel  = "SKILLHUB_LOG_LEVEL"
	EnvLogFormat = "SKILLHUB_LOG_FORMAT"
)

// ErrInvalidConfig is returned when a resolved setting is malformed.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds resolved client settings.
type Config struct {
	BaseURL   string
	Token     string
	Timeout   time.Duration
	Headers   map[string]string
	LogLevel  string
	LogFormat string
}

// fileConfig is the on-disk shape of the config file.
type fileConfig struct {
	BaseURL   string            `yaml:"base_url,omitempty"`
	Token     string            `yaml:"token,omitempty"`
	Timeout   string            `yaml:"timeout,omitempty"`
	Headers   map[string]string `yaml:"headers,omitempty"`
	LogLevel  string            `yaml:"log_level,omitempty"`
	LogFormat string            `yaml:"log_format,omitempty"`
}

// Default returns the settings used when no file or variable overrides them.
func Default() *Config {
	return &Config{
		BaseURL:   client.DefaultBaseURL,
		Timeout:   client.DefaultTimeout,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// FilePath returns the config file location within the given config home.
// This is the injectable, testable form. For the standard XDG location, use DefaultFilePath.
func FilePath(configHome string) string {
	return filepath.Join(configHome, "skillhub", "config.yaml")
}

// DefaultFilePath returns the config file location using XDG base directory conventions.
func DefaultFilePath() string {
	return FilePath(xdg.ConfigHome)
}

// Load resolves settings from defaults, the file at path and the environment.
// A missing file is not an error; an empty path skips the file.
func Load(path string, r env.Reader) (*Config, error) {
	cfg := Default()

	if path != "" {
		fc, err := readFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// optional
		case err != nil:
			return nil, err
		default:
			if err := cfg.applyFile(fc); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(r); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(fc *fileConfig) error {
	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.Token != "" {
		c.Token = fc.Token
	}
	if fc.Timeout != "" {
		d, err := parseTimeout(fc.Timeout)
		if err != nil {
			return err
		}
		c.Timeout = d
	}
	if len(fc.Headers) > 0 {
		c.Headers = maps.Clone(fc.Headers)
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}
	return nil
}

func (c *Config) applyEnv(r env.Reader) error {
	if v, ok := env.Lookup(r, EnvBaseURL); ok {
		c.BaseURL = v
	}
	if v, ok := env.Lookup(r, EnvToken); ok {
		c.Token = v
	}
	if v, ok := env.Lookup(r, EnvTimeout); ok {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if v, ok := env.Lookup(r, EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := env.Lookup(r, EnvLogFormat); ok {
		c.LogFormat = v
	}
	return nil
}

func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q: %w", ErrInvalidConfig, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout %q must be positive", ErrInvalidConfig, s)
	}
	return d, nil
}

// Validate checks the resolved settings.
func (c *Config) Validate() error {
	if err := httpval.ValidateBaseURL(c.BaseURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := httpval.ValidateHeaders(c.Headers); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ClientOptions maps the settings to client options.
func (c *Config) ClientOptions() []client.Option {
	opts := []client.Option{
		client.WithBaseURL(c.BaseURL),
		client.WithTimeout(c.Timeout),
	}
	if c.Token != "" {
		opts = append(opts, client.WithToken(c.Token))
	}
	if len(c.Headers) > 0 {
		opts = append(opts, client.WithHeaders(c.Headers))
	}
	return opts
}

// NewLogger builds a logger writing to w at the configured level and format.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	return logging.New(
		logging.WithLevel(level),
		logging.WithFormat(format),
		logging.WithOutput(w),
	), nil
}

// SaveToken stores token in the config file at path, creating the file and
// its directory if needed. Other settings in the file are preserved. An empty
// token removes the stored one.
func SaveToken(path, token string) error {
	doc, err := readDocument(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if doc == nil {
		doc = make(map[string]any)
	}

	if token == "" {
		delete(doc, "token")
	} else {
		doc["token"] = token
	}

	return writeDocument(path, doc)
}
