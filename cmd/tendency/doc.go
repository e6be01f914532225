// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

/*
Tendency predicts ratings and recommends items from a file of past ratings.

It loads a training set, computes per-user and per-item tendencies, builds
every prediction once, and then serves them from memory.

Usage:

	tendency [flags]

Flags:

	-config path   YAML config file (also CONFIG_PATH)
	-user id       user to recommend for (default 1)
	-n count       list size (default recommend.default_max)
	-beta x        blend parameter in [0, 1], overrides model.beta
	-dump          print per-user and per-item averages and tendencies
	-evaluate      score predictions against the test set
	-json          print JSON instead of styled text
	-serve         start the HTTP API after the batch output

Ratings come from a delimited file (dataset.source=file) or a DuckDB table
(dataset.source=duckdb). With dataset.import=true an empty DuckDB table is
filled from dataset.train_path on startup. The test set for -evaluate is
always read from dataset.test_path.

All other settings come from the config file and environment variables; see
package config.
*/
package main
