// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package api

import "github.com/tomtom215/tendency/internal/recommend"

// BetaRequest is the body of PUT /api/v1/model/beta.
type BetaRequest struct {
	Beta *float64 `json:"beta" validate:"required,finite,gte=0,lte=1"`
}

// RecommendationsRequest holds the query parameters of a recommendation list.
type RecommendationsRequest struct {
	Max int `json:"max" validate:"gte=0"`
}

// PredictionResponse is a single predicted rating.
type PredictionResponse struct {
	UserID int64   `json:"user_id"`
	ItemID int64   `json:"item_id"`
	Rating float64 `json:"rating"`
}

// RecommendationsResponse is a ranked list for one user.
type RecommendationsResponse struct {
	UserID int64                       `json:"user_id"`
	Items  []recommend.RecommendedItem `json:"items"`
}
