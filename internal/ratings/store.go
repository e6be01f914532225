// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package ratings

import (
	"gonum.org/v1/gonum/stat"
)

// Rating is a single observed (user, item, score) triple.
type Rating struct {
	// UserID identifies the user who gave the rating.
	UserID int64 `json:"user_id"`

	// ItemID identifies the rated item.
	ItemID int64 `json:"item_id"`

	// Score is the rating value.
	Score float64 `json:"rating"`
}

// entity is one side of the matrix: a user with its rated items, or an
// item with the users who rated it.
type entity struct {
	// order lists counterpart IDs in first-seen order.
	order  []int64
	scores map[int64]float64
	avg    float64
}

func newEntity() *entity {
	return &entity{scores: make(map[int64]float64)}
}

func (e *entity) set(other int64, score float64) {
	if _, seen := e.scores[other]; !seen {
		e.order = append(e.order, other)
	}
	e.scores[other] = score
}

func (e *entity) mean() float64 {
	values := make([]float64, len(e.order))
	for i, id := range e.order {
		values[i] = e.scores[id]
	}
	return stat.Mean(values, nil)
}

// Store is an immutable sparse rating matrix with per-user and per-item
// means. It is safe for concurrent reads.
type Store struct {
	users     map[int64]*entity
	items     map[int64]*entity
	userOrder []int64
	itemOrder []int64
	pairs     int
}

// NewStore builds a Store from rows in the given order. Duplicate
// (user, item) pairs keep the last score.
func NewStore(rows []Rating) *Store {
	s := &Store{
		users: make(map[int64]*entity),
		items: make(map[int64]*entity),
	}

	for _, r := range rows {
		u, ok := s.users[r.UserID]
		if !ok {
			u = newEntity()
			s.users[r.UserID] = u
			s.userOrder = append(s.userOrder, r.UserID)
		}
		it, ok := s.items[r.ItemID]
		if !ok {
			it = newEntity()
			s.items[r.ItemID] = it
			s.itemOrder = append(s.itemOrder, r.ItemID)
		}
		if _, dup := u.scores[r.ItemID]; !dup {
			s.pairs++
		}
		u.set(r.ItemID, r.Score)
		it.set(r.UserID, r.Score)
	}

	for _, u := range s.users {
		u.avg = u.mean()
	}
	for _, it := range s.items {
		it.avg = it.mean()
	}

	return s
}

// Rating returns the score user gave item, if any.
func (s *Store) Rating(user, item int64) (float64, bool) {
	u, ok := s.users[user]
	if !ok {
		return 0, false
	}
	score, ok := u.scores[item]
	return score, ok
}

// UserIDs returns all users in first-seen order.
func (s *Store) UserIDs() []int64 {
	return append([]int64(nil), s.userOrder...)
}

// ItemIDs returns all items in first-seen order.
func (s *Store) ItemIDs() []int64 {
	return append([]int64(nil), s.itemOrder...)
}

// ItemsRatedBy returns the items user rated. Unknown users yield an empty slice.
func (s *Store) ItemsRatedBy(user int64) []int64 {
	u, ok := s.users[user]
	if !ok {
		return []int64{}
	}
	return append([]int64(nil), u.order...)
}

// UsersWhoRated returns the users who rated item. Unknown items yield an empty slice.
func (s *Store) UsersWhoRated(item int64) []int64 {
	it, ok := s.items[item]
	if !ok {
		return []int64{}
	}
	return append([]int64(nil), it.order...)
}

// UserAverage returns the mean score given by user.
func (s *Store) UserAverage(user int64) (float64, bool) {
	u, ok := s.users[user]
	if !ok {
		return 0, false
	}
	return u.avg, true
}

// ItemAverage returns the mean score received by item.
func (s *Store) ItemAverage(item int64) (float64, bool) {
	it, ok := s.items[item]
	if !ok {
		return 0, false
	}
	return it.avg, true
}

// HasUser reports whether user has at least one rating.
func (s *Store) HasUser(user int64) bool {
	_, ok := s.users[user]
	return ok
}

// HasItem reports whether item has at least one rating.
func (s *Store) HasItem(item int64) bool {
	_, ok := s.items[item]
	return ok
}

// NumUsers returns the number of distinct users.
func (s *Store) NumUsers() int { return len(s.userOrder) }

// NumItems returns the number of distinct items.
func (s *Store) NumItems() int { return len(s.itemOrder) }

// Len returns the number of distinct (user, item) pairs.
func (s *Store) Len() int { return s.pairs }

// Each calls fn for every stored rating, grouped by user in first-seen order.
func (s *Store) Each(fn func(Rating)) {
	for _, uid := range s.userOrder {
		u := s.users[uid]
		for _, iid := range u.order {
			fn(Rating{UserID: uid, ItemID: iid, Score: u.scores[iid]})
		}
	}
}
