// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

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

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/tendency/config.yaml",
	"/etc/tendency/config.yml",
}

// ConfigPathEnvVar names an explicit config file.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig is the lowest configuration layer.
func defaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Source:      SourceFile,
			TrainPath:   "data/train.dat",
			TestPath:    "data/test.dat",
			Delimiter:   "tab",
			DuckDBPath:  "data/ratings.duckdb",
			DuckDBTable: "ratings",
			Import:      false,
		},
		Model: ModelConfig{
			Beta: 0.5,
		},
		Recommend: RecommendConfig{
			DefaultMax: 20,
			MaxLimit:   1000,
		},
		Evaluate: EvaluateConfig{
			Enabled:            false,
			RelevanceThreshold: 3,
			ShowPairs:          false,
		},
		Server: ServerConfig{
			Enabled:           false,
			Host:              "0.0.0.0",
			Port:              8080,
			Timeout:           30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// layer is one configuration source. Later layers override earlier ones.
type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

// LoadWithKoanf merges defaults, the optional YAML file and environment
// variables, in that order, then validates the result.
func LoadWithKoanf() (*Config, error) {
	layers := []layer{{name: "defaults", provider: structs.Provider(defaultConfig(), "koanf")}}
	if path := findConfigFile(); path != "" {
		layers = append(layers, layer{name: "config file " + path, provider: file.Provider(path), parser: yaml.Parser()})
	}
	layers = append(layers, layer{name: "environment", provider: env.Provider("", ".", envTransformFunc)})

	k := koanf.New(".")
	for _, l := range layers {
		if err := k.Load(l.provider, l.parser); err != nil {
			return nil, fmt.Errorf("load %s: %w", l.name, err)
		}
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// findConfigFile returns the first existing file among $CONFIG_PATH and
// DefaultConfigPaths, or "" when there is none.
func findConfigFile() string {
	candidates := DefaultConfigPaths
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		candidates = append([]string{p}, DefaultConfigPaths...)
	}
	for _, p := range candidates {
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p
		}
	}
	return ""
}

// listKeys may arrive from the environment as comma-separated strings.
var listKeys = []string{"server.cors_origins"}

func processSliceFields(k *koanf.Koanf) error {
	for _, key := range listKeys {
		raw, ok := k.Get(key).(string)
		if !ok {
			continue
		}
		if items := splitList(raw); len(items) > 0 {
			if err := k.Set(key, items); err != nil {
				return fmt.Errorf("set %s: %w", key, err)
			}
		}
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// envKeys maps lower-cased environment variable names to config keys.
var envKeys = map[string]string{
	"dataset_source":  "dataset.source",
	"train_path":      "dataset.train_path",
	"test_path":       "dataset.test_path",
	"delimiter":       "dataset.delimiter",
	"duckdb_path":     "dataset.duckdb_path",
	"duckdb_table":    "dataset.duckdb_table",
	"duckdb_import":   "dataset.import",
	"beta":            "model.beta",
	"recommend_max":   "recommend.default_max",
	"recommend_limit": "recommend.max_limit",

	"evaluate_enabled":    "evaluate.enabled",
	"relevance_threshold": "evaluate.relevance_threshold",
	"evaluate_show_pairs": "evaluate.show_pairs",

	"server_enabled":        "server.enabled",
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"rate_limit_requests":   "server.rate_limit_reqs",
	"rate_limit_window":     "server.rate_limit_window",
	"disable_rate_limit":    "server.rate_limit_disabled",
	"cors_origins":          "server.cors_origins",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc returns the config key for an environment variable, or
// "" to skip it.
func envTransformFunc(key string) string {
	return envKeys[strings.ToLower(key)]
}
