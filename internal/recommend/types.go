// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package recommend

import (
	"time"
)

// RecommendedItem is one entry of a recommendation list.
type RecommendedItem struct {
	// ItemID identifies the recommended item.
	ItemID int64 `json:"item_id"`

	// Score is the predicted rating of the item for the user.
	Score float64 `json:"score"`
}

// EntityStats describes the mean rating and tendency of a user or item.
type EntityStats struct {
	// ID is the user or item identifier.
	ID int64 `json:"id"`

	// Ratings is how many ratings the entity has in the training set.
	Ratings int `json:"ratings"`

	// Average is the arithmetic mean of the entity's ratings.
	Average float64 `json:"average"`

	// Tendency is the mean deviation from the counterpart averages.
	Tendency float64 `json:"tendency"`
}

// Status describes the model currently served by the engine.
type Status struct {
	// Beta is the blend weight of the current snapshot.
	Beta float64 `json:"beta"`

	// Users is the number of training users.
	Users int `json:"users"`

	// Items is the number of training items.
	Items int `json:"items"`

	// Ratings is the number of distinct training ratings.
	Ratings int `json:"ratings"`

	// Predictions is the number of cached predictions.
	Predictions int `json:"predictions"`

	// BuiltAt is when the current snapshot was built.
	BuiltAt time.Time `json:"built_at"`

	// Version increments on every rebuild.
	Version int64 `json:"version"`
}

// Metrics contains engine operational counters.
type Metrics struct {
	PredictRequests   int64         `json:"predict_requests"`
	PredictMisses     int64         `json:"predict_misses"`
	RecommendRequests int64         `json:"recommend_requests"`
	Rebuilds          int64         `json:"rebuilds"`
	LastBuildDuration time.Duration `json:"last_build_duration"`
}
