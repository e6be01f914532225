// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

// Package logging wraps zerolog as the process-wide structured logger.
//
// Call Init once at startup with the configured level and format. Until
// then a JSON logger at info level writes to stderr.
//
//	logging.Init(logging.Config{Level: "debug", Format: "console"})
//	logging.Info().Int("users", n).Msg("Ratings loaded")
//
// Components that want their own field set take a zerolog.Logger and derive
// from it with With().Str("component", ...).
//
// # Request Context
//
// HTTP handlers carry a request ID in the context. Ctx(ctx) returns a logger
// that already includes it:
//
//	logging.Ctx(r.Context()).Info().Msg("Recommendations served")
//
// # slog Bridge
//
// SlogHandler forwards log/slog records to zerolog. The supervisor tree
// uses it so that suture events share the same output and format.
package logging
