// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/tendency/internal/recommend"
)

// Model is the engine surface served over HTTP.
type Model interface {
	PredictRating(user, item int64) (float64, bool)
	Recommend(user int64, limit int) []recommend.RecommendedItem
	ChangeBlendParameter(beta float64) error
	UserStats() []recommend.EntityStats
	ItemStats() []recommend.EntityStats
	GetStatus() recommend.Status
}

// Handler serves the API endpoints.
type Handler struct {
	model     Model
	limits    recommend.LimitsConfig
	startTime time.Time
}

// NewHandler creates a handler for model. Zero limits fall back to the
// engine defaults.
func NewHandler(model Model, limits recommend.LimitsConfig) *Handler {
	defaults := recommend.DefaultConfig().Limits
	if limits.DefaultMax <= 0 {
		limits.DefaultMax = defaults.DefaultMax
	}
	if limits.MaxLimit < limits.DefaultMax {
		limits.MaxLimit = max(defaults.MaxLimit, limits.DefaultMax)
	}

	return &Handler{
		model:     model,
		limits:    limits,
		startTime: time.Now(),
	}
}

// parseIDParam reads a numeric chi URL parameter.
func parseIDParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
