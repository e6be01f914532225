// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/tendency/internal/api"
	"github.com/tomtom215/tendency/internal/config"
	"github.com/tomtom215/tendency/internal/logging"
	"github.com/tomtom215/tendency/internal/recommend"
	"github.com/tomtom215/tendency/internal/supervisor"
	"github.com/tomtom215/tendency/internal/supervisor/services"
)

const modelReportInterval = 5 * time.Minute

// serve runs the HTTP API under the supervisor tree until ctx is done.
func serve(ctx context.Context, cfg *config.Config, engine *recommend.Engine) error {
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	handler := api.NewHandler(engine, recommend.LimitsConfig{
		DefaultMax: cfg.Recommend.DefaultMax,
		MaxLimit:   cfg.Recommend.MaxLimit,
	})
	mw := api.NewMiddleware(&api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.Server.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "PUT", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Server.RateLimitReqs,
		RateLimitWindow:    cfg.Server.RateLimitWindow,
		RateLimitDisabled:  cfg.Server.RateLimitDisabled,
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler, mw).SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree.AddModelService(services.NewModelReporterService(engine, modelReportInterval, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))

	logging.Info().Str("addr", server.Addr).Msg("Starting HTTP API")

	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("HTTP API stopped")
	return nil
}
