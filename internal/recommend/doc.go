// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

// Package recommend exposes the tendency predictor as a recommendation engine.
//
// # Architecture
//
// An Engine is built from an immutable ratings.Store. Construction computes
// user and item tendencies once, then predicts every (user, item) pair of the
// training set into a snapshot:
//
//	ratings.Store -> tendency.Compute -> tendency.BuildSnapshot -> Engine
//
// PredictRating and Recommend are lookups against the current snapshot.
//
// # Blend Parameter
//
// The blend weight beta only affects the two mixed-sign branches of the
// prediction rule. ChangeBlendParameter rebuilds the whole snapshot with the
// new value and swaps it in. Tendencies and the store are reused.
//
// # Usage
//
//	store, err := ratings.LoadFile("train.tsv", "\t")
//	engine, err := recommend.NewEngine(store, recommend.DefaultConfig(), logger)
//
//	score, ok := engine.PredictRating(1, 42)
//	items := engine.Recommend(1, 20)
//
// # Thread Safety
//
// The engine is safe for concurrent use. Readers load the current snapshot
// through an atomic pointer and never observe a partially rebuilt cache.
// Rebuilds are serialized with a mutex.
package recommend
