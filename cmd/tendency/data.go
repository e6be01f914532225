// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/tendency/internal/config"
	"github.com/tomtom215/tendency/internal/database"
	"github.com/tomtom215/tendency/internal/evaluate"
	"github.com/tomtom215/tendency/internal/logging"
	"github.com/tomtom215/tendency/internal/metrics"
	"github.com/tomtom215/tendency/internal/ratings"
	"github.com/tomtom215/tendency/internal/recommend"
)

// loadTrainingStore reads the training ratings from the configured source.
func loadTrainingStore(ctx context.Context, cfg *config.Config) (*ratings.Store, error) {
	start := time.Now()

	var (
		store *ratings.Store
		err   error
	)
	switch cfg.Dataset.Source {
	case config.SourceDuckDB:
		store, err = loadFromDuckDB(ctx, cfg.Dataset)
	default:
		store, err = loadFromFile(cfg.Dataset.TrainPath, cfg.Dataset.Separator())
	}
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("source", cfg.Dataset.Source).
		Int("users", store.NumUsers()).
		Int("items", store.NumItems()).
		Int("ratings", store.Len()).
		Dur("duration", time.Since(start)).
		Msg("Training data loaded")
	return store, nil
}

func loadFromFile(path, delim string) (*ratings.Store, error) {
	store, err := ratings.LoadFile(path, delim)
	if err != nil {
		return nil, fmt.Errorf("load training data: %w", err)
	}
	metrics.RecordRowsLoaded(config.SourceFile, store.Len())
	return store, nil
}

func loadFromDuckDB(ctx context.Context, ds config.DatasetConfig) (*ratings.Store, error) {
	db, err := database.New(ctx, ds.DuckDBPath, ds.DuckDBTable)
	if err != nil {
		return nil, fmt.Errorf("open ratings database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Warn().Err(err).Msg("Error closing ratings database")
		}
	}()

	if ds.Import {
		count, err := db.Count(ctx)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			if _, err := db.ImportFile(ctx, ds.TrainPath, ds.Separator()); err != nil {
				return nil, fmt.Errorf("import training data: %w", err)
			}
		} else {
			logging.Debug().Int64("rows", count).Msg("Ratings table not empty, skipping import")
		}
	}

	store, err := db.LoadStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("load training data: %w", err)
	}
	return store, nil
}

// runEvaluation scores the engine against the test file.
func runEvaluation(engine *recommend.Engine, cfg *config.Config) (*evaluate.Report, error) {
	test, err := ratings.LoadFile(cfg.Dataset.TestPath, cfg.Dataset.Separator())
	if err != nil {
		return nil, fmt.Errorf("load test data: %w", err)
	}

	rep := evaluate.Run(engine, test, evaluate.Options{
		Threshold: cfg.Evaluate.RelevanceThreshold,
		KeepPairs: cfg.Evaluate.ShowPairs,
	})
	metrics.RecordEvaluation(rep.MAE, rep.RMSE, rep.Precision, rep.Recall)

	logging.Info().
		Int("predicted", rep.Predicted).
		Int("skipped", rep.Skipped).
		Float64("mae", rep.MAE).
		Float64("rmse", rep.RMSE).
		Msg("Evaluation complete")
	return rep, nil
}
