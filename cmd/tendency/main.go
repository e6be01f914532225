// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/tendency/internal/config"
	"github.com/tomtom215/tendency/internal/logging"
	"github.com/tomtom215/tendency/internal/recommend"
)

type options struct {
	configPath string
	user       int64
	n          int
	beta       float64
	betaSet    bool
	dump       bool
	evaluate   bool
	json       bool
	serve      bool
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("tendency", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.Int64Var(&opts.user, "user", 1, "user to recommend for")
	fs.IntVar(&opts.n, "n", 0, "recommendation list size (default recommend.default_max)")
	fs.Float64Var(&opts.beta, "beta", recommend.DefaultConfig().Beta, "blend parameter in [0, 1]")
	fs.BoolVar(&opts.dump, "dump", false, "print user and item statistics")
	fs.BoolVar(&opts.evaluate, "evaluate", false, "evaluate against the test set")
	fs.BoolVar(&opts.json, "json", false, "print JSON output")
	fs.BoolVar(&opts.serve, "serve", false, "start the HTTP API")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "beta" {
			opts.betaSet = true
		}
	})
	if opts.n < 0 {
		return options{}, fmt.Errorf("-n must not be negative, got %d", opts.n)
	}
	return opts, nil
}

// applyFlags overlays command line choices on the loaded configuration.
func applyFlags(cfg *config.Config, opts options) error {
	if opts.betaSet {
		cfg.Model.Beta = opts.beta
	}
	if opts.evaluate {
		cfg.Evaluate.Enabled = true
	}
	if opts.serve {
		cfg.Server.Enabled = true
	}
	return cfg.Validate()
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if opts.configPath != "" {
		if err := os.Setenv(config.ConfigPathEnvVar, opts.configPath); err != nil {
			logging.Fatal().Err(err).Msg("Failed to set config path")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := applyFlags(cfg, opts); err != nil {
		logging.Fatal().Err(err).Msg("Invalid command line options")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts, os.Stdout); err != nil {
		logging.Fatal().Err(err).Msg("Tendency failed")
	}
}

// run loads the training data, builds the engine and performs the batch
// actions, then serves the API when enabled.
func run(ctx context.Context, cfg *config.Config, opts options, out io.Writer) error {
	store, err := loadTrainingStore(ctx, cfg)
	if err != nil {
		return err
	}

	engine, err := recommend.NewEngine(store, &recommend.Config{
		Beta: cfg.Model.Beta,
		Limits: recommend.LimitsConfig{
			DefaultMax: cfg.Recommend.DefaultMax,
			MaxLimit:   cfg.Recommend.MaxLimit,
		},
	}, logging.Logger())
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	n := opts.n
	if n == 0 {
		n = cfg.Recommend.DefaultMax
	}

	res := batchResult{
		Model: engine.GetStatus(),
		Recommendations: &userRecommendations{
			UserID: opts.user,
			Items:  engine.Recommend(opts.user, n),
		},
	}
	if opts.dump {
		res.Users = engine.UserStats()
		res.Items = engine.ItemStats()
	}
	if cfg.Evaluate.Enabled {
		rep, err := runEvaluation(engine, cfg)
		if err != nil {
			return err
		}
		res.Evaluation = rep
	}

	if err := writeResult(out, res, opts.json); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if cfg.Server.Enabled {
		return serve(ctx, cfg, engine)
	}
	return nil
}
