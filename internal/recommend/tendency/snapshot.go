// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package tendency

import (
	"sort"
	"time"

	"github.com/tomtom215/tendency/internal/ratings"
)

// ScoreGroup is a set of items sharing the same predicted score for a user.
// Items are in processing order (the store's item order).
type ScoreGroup struct {
	Score float64
	Items []int64
}

// Snapshot is the full prediction cache for one beta value.
type Snapshot struct {
	beta    float64
	builtAt time.Time

	userIndex map[int64]int
	itemIndex map[int64]int
	numItems  int

	// values and present are row-major [user][item].
	values  []float64
	present []bool
	count   int

	// ranked[userIdx] is ordered by Score descending.
	ranked [][]ScoreGroup
}

// BuildSnapshot predicts every training (user, item) pair with the given beta.
func BuildSnapshot(store *ratings.Store, t *Tendencies, beta float64) *Snapshot {
	users := store.UserIDs()
	items := store.ItemIDs()

	s := &Snapshot{
		beta:      beta,
		builtAt:   time.Now(),
		userIndex: make(map[int64]int, len(users)),
		itemIndex: make(map[int64]int, len(items)),
		numItems:  len(items),
		values:    make([]float64, len(users)*len(items)),
		present:   make([]bool, len(users)*len(items)),
		ranked:    make([][]ScoreGroup, len(users)),
	}
	for idx, i := range items {
		s.itemIndex[i] = idx
	}

	for uIdx, u := range users {
		s.userIndex[u] = uIdx

		groups := make([]ScoreGroup, 0)
		groupOf := make(map[float64]int)
		for iIdx, i := range items {
			score, ok := Predict(store, t, u, i, beta)
			if !ok {
				continue
			}
			cell := uIdx*s.numItems + iIdx
			s.values[cell] = score
			s.present[cell] = true
			s.count++

			g, seen := groupOf[score]
			if !seen {
				g = len(groups)
				groupOf[score] = g
				groups = append(groups, ScoreGroup{Score: score})
			}
			groups[g].Items = append(groups[g].Items, i)
		}

		sort.Slice(groups, func(a, b int) bool {
			return groups[a].Score > groups[b].Score
		})
		s.ranked[uIdx] = groups
	}

	return s
}

// Prediction returns the cached prediction for (user, item).
func (s *Snapshot) Prediction(user, item int64) (float64, bool) {
	uIdx, ok := s.userIndex[user]
	if !ok {
		return 0, false
	}
	iIdx, ok := s.itemIndex[item]
	if !ok {
		return 0, false
	}
	cell := uIdx*s.numItems + iIdx
	return s.values[cell], s.present[cell]
}

// Ranked returns the score groups for user, best first. The returned slice
// must not be modified.
func (s *Snapshot) Ranked(user int64) ([]ScoreGroup, bool) {
	uIdx, ok := s.userIndex[user]
	if !ok {
		return nil, false
	}
	return s.ranked[uIdx], true
}

// Beta returns the blend weight the snapshot was built with.
func (s *Snapshot) Beta() float64 { return s.beta }

// BuiltAt returns when the snapshot was built.
func (s *Snapshot) BuiltAt() time.Time { return s.builtAt }

// Len returns the number of cached predictions.
func (s *Snapshot) Len() int { return s.count }
