// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

/*
Package supervisor runs the long-lived parts of serve mode under a suture v4
supervisor tree.

	root ("tendency")
	├── model-layer
	│   └── ModelReporterService
	└── api-layer
	    └── HTTPServerService

Crashed services are restarted with backoff. Each layer counts failures on
its own, so a failing reporter never takes the HTTP server down. Supervisor
events are logged through sutureslog using the zerolog-backed slog handler
from the logging package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second, logging.Logger()))
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		...
	}
*/
package supervisor
