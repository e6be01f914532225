// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

// Package evaluate measures prediction accuracy against a held-out test set.
//
// Every (user, item) pair of the test store is predicted. Pairs the model
// cannot predict are counted as skipped and excluded from all metrics.
// An item is relevant when its actual rating reaches the threshold, and
// retrieved when the prediction reaches it too:
//
//	Precision = relevant retrieved / predicted pairs
//	Recall    = relevant retrieved / relevant pairs
//
// Ratios with an empty denominator are reported as 0.
package evaluate
