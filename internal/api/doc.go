// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

/*
Package api exposes the recommendation engine over HTTP.

The router is built on chi and serves a small JSON API under /api/v1:

	GET /api/v1/health/live                       liveness probe
	GET /api/v1/health/ready                      readiness probe with model status
	GET /api/v1/predictions/{userID}/{itemID}     single predicted rating
	GET /api/v1/recommendations/{userID}?max=N    top-N unrated items
	GET /api/v1/users                             per-user averages and tendencies
	GET /api/v1/items                             per-item averages and tendencies
	GET /api/v1/model                             model status
	PUT /api/v1/model/beta                        change the blend parameter

Prometheus metrics are served on /metrics.

# Responses

Every JSON endpoint answers with the same envelope:

	{"success": true, "data": ..., "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "NOT_FOUND", "message": "..."}, "meta": {...}}

# Middleware

Requests pass through request ID propagation, real IP extraction, panic
recovery, CORS and per-IP rate limiting (go-chi/httprate). API routes also
get security headers and Prometheus instrumentation keyed by route pattern.
*/
package api
