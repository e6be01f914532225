// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package recommend

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tendency/internal/metrics"
	"github.com/tomtom215/tendency/internal/ratings"
	"github.com/tomtom215/tendency/internal/recommend/tendency"
)

// Engine serves predictions and recommendations from a precomputed snapshot.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	store      *ratings.Store
	tendencies *tendency.Tendencies

	// Current snapshot, replaced wholesale on rebuild
	snapshot  atomic.Pointer[tendency.Snapshot]
	rebuildMu sync.Mutex
	version   atomic.Int64

	// Metrics
	predictRequests   atomic.Int64
	predictMisses     atomic.Int64
	recommendRequests atomic.Int64
	lastBuildNanos    atomic.Int64
}

// NewEngine computes tendencies for store and builds the initial snapshot.
func NewEngine(store *ratings.Store, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if store == nil || store.Len() == 0 {
		return nil, ErrEmptyStore
	}

	e := &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
		store:  store,
	}

	start := time.Now()
	e.tendencies = tendency.Compute(store)
	e.logger.Debug().
		Int("users", store.NumUsers()).
		Int("items", store.NumItems()).
		Dur("duration", time.Since(start)).
		Msg("Computed tendencies")

	e.rebuild(cfg.Beta)

	return e, nil
}

// ChangeBlendParameter rebuilds every prediction with a new beta. On error
// the current snapshot stays in place.
func (e *Engine) ChangeBlendParameter(beta float64) error {
	if err := validateBeta(beta); err != nil {
		return err
	}

	e.rebuildMu.Lock()
	defer e.rebuildMu.Unlock()

	previous := e.Beta()
	e.rebuild(beta)
	e.logger.Info().
		Float64("previous_beta", previous).
		Float64("beta", beta).
		Msg("Blend parameter changed")

	return nil
}

// rebuild builds and publishes a snapshot. Callers other than NewEngine
// must hold rebuildMu.
func (e *Engine) rebuild(beta float64) {
	start := time.Now()
	snap := tendency.BuildSnapshot(e.store, e.tendencies, beta)
	elapsed := time.Since(start)

	e.snapshot.Store(snap)
	e.version.Add(1)
	e.lastBuildNanos.Store(int64(elapsed))
	metrics.RecordModelBuild(elapsed, e.store.NumUsers(), e.store.NumItems(), e.store.Len(), snap.Len(), beta)

	e.logger.Info().
		Float64("beta", beta).
		Int("predictions", snap.Len()).
		Dur("duration", elapsed).
		Msg("Prediction snapshot built")
}

// PredictRating returns the predicted rating of item for user. Ratings
// present in the training data are returned unchanged.
func (e *Engine) PredictRating(user, item int64) (float64, bool) {
	e.predictRequests.Add(1)

	score, ok := e.snapshot.Load().Prediction(user, item)
	if !ok {
		e.predictMisses.Add(1)
	}
	metrics.RecordPrediction(ok)
	return score, ok
}

// Recommend returns at most limit items the user has not rated, best first.
// Items with equal scores keep the store's item order. Unknown users and
// limit <= 0 yield an empty list.
func (e *Engine) Recommend(user int64, limit int) []RecommendedItem {
	e.recommendRequests.Add(1)
	out := e.recommend(user, limit)
	metrics.RecordRecommendation(len(out))
	return out
}

func (e *Engine) recommend(user int64, limit int) []RecommendedItem {
	if limit <= 0 {
		return []RecommendedItem{}
	}
	groups, ok := e.snapshot.Load().Ranked(user)
	if !ok {
		return []RecommendedItem{}
	}

	out := make([]RecommendedItem, 0, min(limit, e.store.NumItems()))
	for _, g := range groups {
		for _, item := range g.Items {
			if _, rated := e.store.Rating(user, item); rated {
				continue
			}
			out = append(out, RecommendedItem{ItemID: item, Score: g.Score})
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}

// Beta returns the blend weight of the current snapshot.
func (e *Engine) Beta() float64 {
	return e.snapshot.Load().Beta()
}

// UserStats returns mean and tendency for every training user in store order.
func (e *Engine) UserStats() []EntityStats {
	users := e.store.UserIDs()
	out := make([]EntityStats, 0, len(users))
	for _, u := range users {
		avg, _ := e.store.UserAverage(u)
		t, _ := e.tendencies.User(u)
		out = append(out, EntityStats{
			ID:       u,
			Ratings:  len(e.store.ItemsRatedBy(u)),
			Average:  avg,
			Tendency: t,
		})
	}
	return out
}

// ItemStats returns mean and tendency for every training item in store order.
func (e *Engine) ItemStats() []EntityStats {
	items := e.store.ItemIDs()
	out := make([]EntityStats, 0, len(items))
	for _, i := range items {
		avg, _ := e.store.ItemAverage(i)
		t, _ := e.tendencies.Item(i)
		out = append(out, EntityStats{
			ID:       i,
			Ratings:  len(e.store.UsersWhoRated(i)),
			Average:  avg,
			Tendency: t,
		})
	}
	return out
}

// GetStatus describes the model currently being served.
func (e *Engine) GetStatus() Status {
	snap := e.snapshot.Load()
	return Status{
		Beta:        snap.Beta(),
		Users:       e.store.NumUsers(),
		Items:       e.store.NumItems(),
		Ratings:     e.store.Len(),
		Predictions: snap.Len(),
		BuiltAt:     snap.BuiltAt(),
		Version:     e.version.Load(),
	}
}

// GetMetrics returns the current engine metrics.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		PredictRequests:   e.predictRequests.Load(),
		PredictMisses:     e.predictMisses.Load(),
		RecommendRequests: e.recommendRequests.Load(),
		Rebuilds:          e.version.Load(),
		LastBuildDuration: time.Duration(e.lastBuildNanos.Load()),
	}
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}
