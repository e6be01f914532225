// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package config

import (
	"strings"
	"testing"
)

func TestDatasetConfig_Separator(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"tab", "\t"},
		{`\t`, "\t"},
		{"\t", "\t"},
		{"comma", ","},
		{";", ";"},
	}

	for _, tt := range tests {
		d := DatasetConfig{Delimiter: tt.in}
		if got := d.Separator(); got != tt.want {
			t.Errorf("Separator(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestServerConfig_Addr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := s.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"duckdb source", func(c *Config) { c.Dataset.Source = SourceDuckDB }, ""},
		{"duckdb without path", func(c *Config) {
			c.Dataset.Source = SourceDuckDB
			c.Dataset.DuckDBPath = ""
		}, "dataset.duckdb_path"},
		{"duckdb without table", func(c *Config) {
			c.Dataset.Source = SourceDuckDB
			c.Dataset.DuckDBTable = ""
		}, "dataset.duckdb_table"},
		{"duckdb import without train path", func(c *Config) {
			c.Dataset.Source = SourceDuckDB
			c.Dataset.Import = true
			c.Dataset.TrainPath = ""
		}, "dataset.import"},
		{"negative beta", func(c *Config) { c.Model.Beta = -1 }, "model.beta"},
		{"max limit below default", func(c *Config) { c.Recommend.MaxLimit = 5 }, "recommend.max_limit"},
		{"zero threshold", func(c *Config) { c.Evaluate.RelevanceThreshold = 0 }, "evaluate.relevance_threshold"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "server.timeout"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error mentioning %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want mention of %q", err.Error(), tt.wantErr)
			}
		})
	}
}
