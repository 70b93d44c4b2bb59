// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

// Package config loads application configuration with koanf, layering
// environment variables over an optional YAML file over built-in
// defaults.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar points at an explicit config file location.
const ConfigPathEnvVar = "SOUSCHEF_CONFIG"

// envPrefix namespaces every environment override.
const envPrefix = "SOUSCHEF_"

// DefaultConfigPaths are searched in order when no explicit path is set.
var DefaultConfigPaths = []string{
	"souschef.yaml",
	"config/souschef.yaml",
	"/etc/souschef/souschef.yaml",
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	RateLimit       int           `koanf:"rate_limit"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// AgentConfig configures the request pipeline.
type AgentConfig struct {
	// ProcessingBudget bounds one request end to end.
	ProcessingBudget time.Duration `koanf:"processing_budget"`

	// MaxCandidates caps how many scored candidates a response carries.
	MaxCandidates int `koanf:"max_candidates"`

	// Priority orders this agent among registered agents.
	Priority int `koanf:"priority"`
}

// ProfileConfig configures personalization profile building.
type ProfileConfig struct {
	CacheTTL          time.Duration `koanf:"cache_ttl"`
	HistoryWindow     int           `koanf:"history_window"`
	LearningThreshold int           `koanf:"learning_threshold"`
}

// StoreConfig configures the badger-backed interaction store.
type StoreConfig struct {
	// Path is the badger directory. Empty selects in-memory mode.
	Path string `koanf:"path"`

	// GCInterval is how often value-log garbage collection runs.
	GCInterval time.Duration `koanf:"gc_interval"`
}

// LearningConfig configures the asynchronous learning pipeline.
type LearningConfig struct {
	// BufferSize is the in-process event channel capacity.
	BufferSize int `koanf:"buffer_size"`
}

// CatalogConfig configures the recipe candidate supplier.
type CatalogConfig struct {
	// SeedPath optionally points at a JSON recipe seed file. Empty uses
	// the built-in seed set.
	SeedPath string `koanf:"seed_path"`

	// BreakerMaxFailures opens the supplier circuit after this many
	// consecutive failures.
	BreakerMaxFailures int `koanf:"breaker_max_failures"`

	// BreakerCooldown is how long the circuit stays open.
	BreakerCooldown time.Duration `koanf:"breaker_cooldown"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Agent    AgentConfig    `koanf:"agent"`
	Profile  ProfileConfig  `koanf:"profile"`
	Store    StoreConfig    `koanf:"store"`
	Learning LearningConfig `koanf:"learning"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// Default returns the built-in configuration, before any file or
// environment overrides.
func Default() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       100,
			CORSOrigins:     []string{"*"},
		},
		Agent: AgentConfig{
			ProcessingBudget: 10 * time.Second,
			MaxCandidates:    5,
			Priority:         10,
		},
		Profile: ProfileConfig{
			CacheTTL:          30 * time.Minute,
			HistoryWindow:     100,
			LearningThreshold: 5,
		},
		Store: StoreConfig{
			Path:       "data/souschef",
			GCInterval: 10 * time.Minute,
		},
		Learning: LearningConfig{
			BufferSize: 256,
		},
		Catalog: CatalogConfig{
			BreakerMaxFailures: 5,
			BreakerCooldown:    30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file,
// and SOUSCHEF_-prefixed environment variables, highest priority last.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// SOUSCHEF_SERVER_PORT -> server.port
	envProvider := env.Provider(envPrefix, ".", envTransform)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransform maps SOUSCHEF_SECTION_SOME_KEY to section.some_key. The
// first underscore separates the section; the rest stay joined.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 {
		return key
	}
	return parts[0] + "." + parts[1]
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Agent.ProcessingBudget <= 0 {
		return fmt.Errorf("agent.processing_budget must be positive, got %s", c.Agent.ProcessingBudget)
	}
	if c.Agent.MaxCandidates < 1 {
		return fmt.Errorf("agent.max_candidates must be at least 1, got %d", c.Agent.MaxCandidates)
	}
	if c.Profile.CacheTTL <= 0 {
		return fmt.Errorf("profile.cache_ttl must be positive, got %s", c.Profile.CacheTTL)
	}
	if c.Profile.LearningThreshold < 1 {
		return fmt.Errorf("profile.learning_threshold must be at least 1, got %d", c.Profile.LearningThreshold)
	}
	if c.Learning.BufferSize < 1 {
		return fmt.Errorf("learning.buffer_size must be at least 1, got %d", c.Learning.BufferSize)
	}
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	return nil
}
