// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package tendency

import (
	"math"

	"github.com/tomtom215/tendency/internal/ratings"
)

// DefaultBeta is the blend weight used until it is changed.
const DefaultBeta = 0.5

// Blend applies the four-branch tendency rule. The result is not rounded.
// A zero tendency is treated as non-negative.
func Blend(uT, iT, uA, iA, beta float64) float64 {
	switch {
	case uT >= 0 && iT >= 0:
		return math.Max(uA+iT, iA+uT)
	case uT < 0 && iT < 0:
		return math.Min(uA+iT, iA+uT)
	case uT < 0:
		// iT >= 0: pulled towards the user mean, capped at the item mean.
		return math.Min(math.Max(uA, beta*(iA+uT)+(1-beta)*(uA+iT)), iA)
	default:
		return beta*iA + (1-beta)*uA
	}
}

// Round2 rounds x to two decimal places, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Predict returns the predicted rating of item for user. Known ratings are
// returned as stored. The second result is false when either side has no
// tendency.
func Predict(store *ratings.Store, t *Tendencies, user, item int64, beta float64) (float64, bool) {
	if r, ok := store.Rating(user, item); ok {
		return r, true
	}

	uT, ok := t.User(user)
	if !ok {
		return 0, false
	}
	iT, ok := t.Item(item)
	if !ok {
		return 0, false
	}
	uA, _ := store.UserAverage(user)
	iA, _ := store.ItemAverage(item)

	return Round2(Blend(uT, iT, uA, iA, beta)), true
}
