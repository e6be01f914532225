// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

// Package tendency implements the tendency-based rating predictor.
//
// # Tendencies
//
// A user's tendency is the mean amount by which the user rates items above
// or below those items' averages. An item's tendency is the mean amount by
// which it is rated above or below each rater's average:
//
//	userTendency(u) = mean over i rated by u of (r(u,i) - itemAverage(i))
//	itemTendency(i) = mean over u who rated i of (r(u,i) - userAverage(u))
//
// # Prediction Rule
//
// A known rating is returned unchanged. Otherwise, with uT/iT the user and
// item tendencies and uA/iA their averages:
//
//	uT >= 0, iT >= 0:  max(uA+iT, iA+uT)
//	uT <  0, iT <  0:  min(uA+iT, iA+uT)
//	uT <  0, iT >= 0:  min(max(uA, beta*(iA+uT) + (1-beta)*(uA+iT)), iA)
//	uT >= 0, iT <  0:  beta*iA + (1-beta)*uA
//
// Computed values are rounded to two decimal places.
//
// # Snapshots
//
// BuildSnapshot predicts every (user, item) pair of the training set and
// indexes the results by user in descending score order. A Snapshot is
// immutable; changing beta means building a new one.
package tendency
