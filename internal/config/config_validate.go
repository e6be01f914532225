// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package config

import (
	"fmt"

	"github.com/tomtom215/tendency/internal/validation"
)

// Validate checks struct constraints and cross-field rules.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateEvaluate()
}

func (c *Config) validateDataset() error {
	d := c.Dataset
	switch d.Source {
	case SourceFile:
		if d.TrainPath == "" {
			return fmt.Errorf("dataset.train_path is required when dataset.source is %q", SourceFile)
		}
	case SourceDuckDB:
		if d.DuckDBPath == "" {
			return fmt.Errorf("dataset.duckdb_path is required when dataset.source is %q", SourceDuckDB)
		}
		if d.DuckDBTable == "" {
			return fmt.Errorf("dataset.duckdb_table is required when dataset.source is %q", SourceDuckDB)
		}
		if d.Import && d.TrainPath == "" {
			return fmt.Errorf("dataset.train_path is required when dataset.import is set")
		}
	}
	if len(d.Separator()) != 1 {
		return fmt.Errorf("dataset.delimiter must be a single character, got %q", d.Delimiter)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.MaxLimit < c.Recommend.DefaultMax {
		return fmt.Errorf("recommend.max_limit must be >= recommend.default_max, got %d < %d",
			c.Recommend.MaxLimit, c.Recommend.DefaultMax)
	}
	return nil
}

func (c *Config) validateEvaluate() error {
	if c.Evaluate.Enabled && c.Dataset.TestPath == "" {
		return fmt.Errorf("dataset.test_path is required when evaluate.enabled is set")
	}
	return nil
}
