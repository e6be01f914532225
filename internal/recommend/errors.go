// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package recommend

import "errors"

var (
	// ErrInvalidBeta is returned for a blend weight outside [0, 1].
	ErrInvalidBeta = errors.New("invalid blend parameter")

	// ErrEmptyStore is returned when an engine is built without ratings.
	ErrEmptyStore = errors.New("no ratings to train on")
)
