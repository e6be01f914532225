// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

// Package ratings holds the sparse user-item rating matrix that every other
// component reads from.
//
// A Store is built once from an ordered sequence of (user, item, score)
// triples and never changes afterwards. Two views are kept in sync: the
// items each user rated and the users who rated each item. Per-user and
// per-item arithmetic means are computed at construction time.
//
// # Ordering
//
// UserIDs, ItemIDs, ItemsRatedBy and UsersWhoRated return IDs in the order
// they were first seen in the input. When the same (user, item) pair occurs
// more than once the last score wins, but the pair keeps its original
// position. Callers that iterate these slices therefore get the same order
// on every run with the same input.
//
// # Missing data
//
// Lookups for an absent rating, or for the average of an unknown user or
// item, return ok=false. A score of 0 is a real rating and is never used to
// signal absence.
//
// # Input format
//
// ReadDelimited parses text with one rating per line:
//
//	user<delim>item<delim>score[<delim>ignored...]
//
// The default delimiter is a tab. Any malformed line aborts the whole read
// with a *FormatError.
package ratings
