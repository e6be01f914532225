// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package config

import (
	"fmt"
	"time"
)

// Dataset sources.
const (
	SourceFile   = "file"
	SourceDuckDB = "duckdb"
)

// Config holds all application configuration.
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Model     ModelConfig     `koanf:"model"`
	Recommend RecommendConfig `koanf:"recommend"`
	Evaluate  EvaluateConfig  `koanf:"evaluate"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig describes where training and test ratings come from.
type DatasetConfig struct {
	// Source is "file" for delimited text or "duckdb" for a DuckDB table.
	Source string `koanf:"source" validate:"required,oneof=file duckdb"`

	// TrainPath is the delimited training file. With the duckdb source it
	// is imported into DuckDBTable when Import is set.
	TrainPath string `koanf:"train_path"`

	// TestPath is the delimited test file used by evaluation.
	TestPath string `koanf:"test_path"`

	// Delimiter separates fields. "tab" and "\t" both mean a tab character.
	Delimiter string `koanf:"delimiter" validate:"required"`

	// DuckDBPath is the database file. ":memory:" is allowed with Import.
	DuckDBPath string `koanf:"duckdb_path"`

	// DuckDBTable holds user_id, item_id and rating columns.
	DuckDBTable string `koanf:"duckdb_table" validate:"omitempty,min=1,max=128"`

	// Import loads TrainPath into DuckDBTable before reading it.
	Import bool `koanf:"import"`
}

// Separator returns the delimiter with aliases resolved.
func (d DatasetConfig) Separator() string {
	switch d.Delimiter {
	case "tab", `\t`:
		return "\t"
	case "comma":
		return ","
	default:
		return d.Delimiter
	}
}

// ModelConfig holds predictor parameters.
type ModelConfig struct {
	// Beta weights the two estimates in the mixed-sign branches.
	// Default: 0.5
	Beta float64 `koanf:"beta" validate:"finite,gte=0,lte=1"`
}

// RecommendConfig bounds recommendation list sizes.
type RecommendConfig struct {
	DefaultMax int `koanf:"default_max" validate:"min=1"`
	MaxLimit   int `koanf:"max_limit" validate:"min=1"`
}

// EvaluateConfig controls the offline evaluation run.
type EvaluateConfig struct {
	Enabled bool `koanf:"enabled"`

	// RelevanceThreshold is the rating at or above which an item is good.
	// Default: 3
	RelevanceThreshold float64 `koanf:"relevance_threshold" validate:"finite,gt=0"`

	// ShowPairs prints every predicted test pair.
	ShowPairs bool `koanf:"show_pairs"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Enabled         bool          `koanf:"enabled"`
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, config file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
