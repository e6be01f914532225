// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Model Metrics
	ModelBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tendency_model_build_duration_seconds",
			Help:    "Time to build a prediction snapshot",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms .. ~260s
		},
	)

	ModelBuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tendency_model_builds_total",
			Help: "Total number of prediction snapshots built",
		},
	)

	ModelSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tendency_model_size",
			Help: "Size of the served model by dimension",
		},
		[]string{"dimension"}, // "users", "items", "ratings", "predictions"
	)

	ModelBeta = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tendency_model_beta",
			Help: "Blend parameter of the served snapshot",
		},
	)

	// Serving Metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tendency_predictions_total",
			Help: "Prediction lookups by outcome",
		},
		[]string{"outcome"}, // "hit", "miss"
	)

	RecommendRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tendency_recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
	)

	RecommendItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tendency_recommend_items",
			Help:    "Number of items returned per recommendation request",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 500, 1000},
		},
	)

	// Dataset Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tendency_duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB dataset queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tendency_duckdb_query_errors_total",
			Help: "Total number of failed DuckDB dataset queries",
		},
		[]string{"operation", "table"},
	)

	DatasetRowsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tendency_dataset_rows_loaded_total",
			Help: "Rating rows read from datasets",
		},
		[]string{"source"}, // "file", "duckdb"
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tendency_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tendency_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tendency_api_active_requests",
			Help: "Number of API requests in flight",
		},
	)

	// Evaluation Metrics
	EvaluationScore = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tendency_evaluation_score",
			Help: "Result of the last offline evaluation",
		},
		[]string{"metric"}, // "mae", "rmse", "precision", "recall"
	)
)

// RecordModelBuild records a finished snapshot build and the model size.
func RecordModelBuild(duration time.Duration, users, items, ratings, predictions int, beta float64) {
	ModelBuildDuration.Observe(duration.Seconds())
	ModelBuilds.Inc()
	ModelSize.WithLabelValues("users").Set(float64(users))
	ModelSize.WithLabelValues("items").Set(float64(items))
	ModelSize.WithLabelValues("ratings").Set(float64(ratings))
	ModelSize.WithLabelValues("predictions").Set(float64(predictions))
	ModelBeta.Set(beta)
}

// RecordPrediction counts a prediction lookup.
func RecordPrediction(hit bool) {
	if hit {
		PredictionsTotal.WithLabelValues("hit").Inc()
		return
	}
	PredictionsTotal.WithLabelValues("miss").Inc()
}

// RecordRecommendation counts a recommendation request returning n items.
func RecordRecommendation(n int) {
	RecommendRequests.Inc()
	RecommendItems.Observe(float64(n))
}

// RecordDBQuery records a dataset query.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordRowsLoaded counts rating rows read from source.
func RecordRowsLoaded(source string, n int) {
	DatasetRowsLoaded.WithLabelValues(source).Add(float64(n))
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordEvaluation publishes the headline numbers of an evaluation run.
func RecordEvaluation(mae, rmse, precision, recall float64) {
	EvaluationScore.WithLabelValues("mae").Set(mae)
	EvaluationScore.WithLabelValues("rmse").Set(rmse)
	EvaluationScore.WithLabelValues("precision").Set(precision)
	EvaluationScore.WithLabelValues("recall").Set(recall)
}
