// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package api

import (
	"net/http"
	"time"
)

// HealthLive reports that the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady reports whether a model is loaded and serving.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.model == nil {
		rw.ServiceUnavailable("Model not loaded")
		return
	}

	status := h.model.GetStatus()
	if status.Predictions == 0 {
		rw.ServiceUnavailable("Model has no predictions")
		return
	}

	rw.Success(map[string]interface{}{
		"ready":   true,
		"version": status.Version,
		"beta":    status.Beta,
	})
}
