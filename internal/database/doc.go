// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

// Package database reads rating datasets from DuckDB.
//
// A ratings table has three columns:
//
//	user_id BIGINT, item_id BIGINT, rating DOUBLE
//
// Rows are returned in insertion order (DuckDB rowid), which becomes the
// first-seen order of the resulting ratings.Store. ImportFile parses a
// delimited file with the same rules as ratings.ReadDelimited and appends
// it to the table, so a text dataset can be loaded once and then queried
// with SQL.
package database
