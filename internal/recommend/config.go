// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package recommend

import (
	"fmt"
	"math"

	"github.com/tomtom215/tendency/internal/recommend/tendency"
)

// Config contains the engine configuration.
type Config struct {
	// Beta is the initial blend weight, in [0, 1].
	Beta float64 `json:"beta"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`
}

// LimitsConfig bounds recommendation list sizes.
type LimitsConfig struct {
	// DefaultMax is used when a caller does not ask for a specific size.
	DefaultMax int `json:"default_max"`

	// MaxLimit is the largest list size served over the API.
	MaxLimit int `json:"max_limit"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Beta: tendency.DefaultBeta,
		Limits: LimitsConfig{
			DefaultMax: 20,
			MaxLimit:   1000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := validateBeta(c.Beta); err != nil {
		return err
	}
	if c.Limits.DefaultMax < 1 {
		return fmt.Errorf("limits.default_max must be positive, got %d", c.Limits.DefaultMax)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultMax {
		return fmt.Errorf("limits.max_limit must be >= limits.default_max, got %d < %d",
			c.Limits.MaxLimit, c.Limits.DefaultMax)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

func validateBeta(beta float64) error {
	if math.IsNaN(beta) || beta < 0 || beta > 1 {
		return fmt.Errorf("%w: beta must be in [0, 1], got %v", ErrInvalidBeta, beta)
	}
	return nil
}
