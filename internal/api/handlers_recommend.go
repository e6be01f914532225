// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tendency/internal/logging"
	"github.com/tomtom215/tendency/internal/recommend"
	"github.com/tomtom215/tendency/internal/validation"
)

const maxBetaBodyBytes = 1 << 10

// GetPrediction returns the predicted rating of one item for one user.
func (h *Handler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := parseIDParam(r, "userID")
	if !ok {
		rw.Error(http.StatusBadRequest, ErrCodeInvalidUserID, "Invalid user ID")
		return
	}
	itemID, ok := parseIDParam(r, "itemID")
	if !ok {
		rw.Error(http.StatusBadRequest, ErrCodeInvalidItemID, "Invalid item ID")
		return
	}

	rating, found := h.model.PredictRating(userID, itemID)
	if !found {
		rw.Error(http.StatusNotFound, ErrCodeNoPrediction,
			fmt.Sprintf("No prediction for user %d and item %d", userID, itemID))
		return
	}

	rw.Success(PredictionResponse{UserID: userID, ItemID: itemID, Rating: rating})
}

// GetRecommendations returns the best unrated items for a user. The list
// size comes from ?max=N, capped at the configured limit.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, ok := parseIDParam(r, "userID")
	if !ok {
		rw.Error(http.StatusBadRequest, ErrCodeInvalidUserID, "Invalid user ID")
		return
	}

	req := RecommendationsRequest{Max: h.limits.DefaultMax}
	if raw := r.URL.Query().Get("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			rw.BadRequest("max must be an integer")
			return
		}
		req.Max = n
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr.Error(), verr.Details())
		return
	}

	items := h.model.Recommend(userID, min(req.Max, h.limits.MaxLimit))
	rw.SuccessList(RecommendationsResponse{UserID: userID, Items: items}, len(items))
}

// GetUsers lists training users with their averages and tendencies.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users := h.model.UserStats()
	NewResponseWriter(w, r).SuccessList(users, len(users))
}

// GetItems lists training items with their averages and tendencies.
func (h *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	items := h.model.ItemStats()
	NewResponseWriter(w, r).SuccessList(items, len(items))
}

// GetModel describes the model being served.
func (h *Handler) GetModel(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.model.GetStatus())
}

// SetBeta rebuilds the model with a new blend parameter.
func (h *Handler) SetBeta(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req BetaRequest
	body := http.MaxBytesReader(w, r.Body, maxBetaBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			rw.BadRequest("Request body is empty")
			return
		}
		rw.BadRequest("Invalid JSON body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr.Error(), verr.Details())
		return
	}

	if err := h.model.ChangeBlendParameter(*req.Beta); err != nil {
		if errors.Is(err, recommend.ErrInvalidBeta) {
			rw.ValidationError(err.Error(), nil)
			return
		}
		rw.InternalError("Failed to rebuild model", err)
		return
	}

	logging.Ctx(r.Context()).Info().Float64("beta", *req.Beta).Msg("Blend parameter updated over API")
	rw.Success(h.model.GetStatus())
}
