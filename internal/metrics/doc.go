// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

// Package metrics defines the Prometheus metrics exported on /metrics.
//
// Metrics are registered with the default registry through promauto when the
// package is loaded. Callers use the Record* helpers rather than touching the
// collectors directly:
//
//	metrics.RecordModelBuild(duration, users, items, ratings, predictions, beta)
//	metrics.RecordPrediction(ok)
//	metrics.RecordAPIRequest("GET", "/api/v1/recommendations/{userID}", "200", elapsed)
//
// # Families
//
//   - tendency_model_*: snapshot builds, model size, current beta
//   - tendency_predictions_total, tendency_recommend_*: serving
//   - tendency_duckdb_*: dataset queries
//   - tendency_api_*: HTTP requests
//   - tendency_evaluation_score: last offline evaluation
package metrics
