// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tendency/internal/recommend"
)

// ModelReporter exposes the engine state the reporter logs.
type ModelReporter interface {
	GetStatus() recommend.Status
	GetMetrics() recommend.Metrics
}

// ModelReporterService periodically logs the served model and its traffic.
type ModelReporterService struct {
	model    ModelReporter
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewModelReporterService creates the reporter. A non-positive interval
// defaults to one minute.
func NewModelReporterService(model ModelReporter, interval time.Duration, logger zerolog.Logger) *ModelReporterService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ModelReporterService{
		model:    model,
		interval: interval,
		logger:   logger.With().Str("service", "model-reporter").Logger(),
		name:     "model-reporter",
	}
}

// Serve implements suture.Service.
func (s *ModelReporterService) Serve(ctx context.Context) error {
	s.report()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.report()
		}
	}
}

func (s *ModelReporterService) report() {
	status := s.model.GetStatus()
	m := s.model.GetMetrics()

	s.logger.Info().
		Float64("beta", status.Beta).
		Int64("version", status.Version).
		Int("predictions", status.Predictions).
		Int64("predict_requests", m.PredictRequests).
		Int64("predict_misses", m.PredictMisses).
		Int64("recommend_requests", m.RecommendRequests).
		Dur("last_build", m.LastBuildDuration).
		Msg("Model status")
}

func (s *ModelReporterService) String() string {
	return s.name
}
