// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package tendency

import (
	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/tendency/internal/ratings"
)

// Tendencies holds the per-user and per-item bias signals of a store.
type Tendencies struct {
	users map[int64]float64
	items map[int64]float64
}

// Compute derives tendencies for every user and item in store.
func Compute(store *ratings.Store) *Tendencies {
	t := &Tendencies{
		users: make(map[int64]float64, store.NumUsers()),
		items: make(map[int64]float64, store.NumItems()),
	}

	for _, u := range store.UserIDs() {
		items := store.ItemsRatedBy(u)
		deviations := make([]float64, 0, len(items))
		for _, i := range items {
			r, _ := store.Rating(u, i)
			iA, _ := store.ItemAverage(i)
			deviations = append(deviations, r-iA)
		}
		t.users[u] = stat.Mean(deviations, nil)
	}

	for _, i := range store.ItemIDs() {
		users := store.UsersWhoRated(i)
		deviations := make([]float64, 0, len(users))
		for _, u := range users {
			r, _ := store.Rating(u, i)
			uA, _ := store.UserAverage(u)
			deviations = append(deviations, r-uA)
		}
		t.items[i] = stat.Mean(deviations, nil)
	}

	return t
}

// User returns the tendency of user.
func (t *Tendencies) User(user int64) (float64, bool) {
	v, ok := t.users[user]
	return v, ok
}

// Item returns the tendency of item.
func (t *Tendencies) Item(item int64) (float64, bool) {
	v, ok := t.items[item]
	return v, ok
}
