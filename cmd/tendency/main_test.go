// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tendency/internal/config"
	"github.com/tomtom215/tendency/internal/database"
)

const trainData = "1\t10\t5\n1\t20\t3\n2\t10\t4\n2\t30\t2\n3\t20\t1\n"

// testData has two predictable pairs and one unknown user.
const testData = "1\t30\t3\n3\t10\t4\n9\t10\t5\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// loadTestConfig loads configuration from env in an empty working directory.
func loadTestConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()

	t.Chdir(t.TempDir())
	t.Setenv(config.ConfigPathEnvVar, "")
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return cfg
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{
			name: "defaults",
			args: nil,
			want: options{user: 1, beta: 0.5},
		},
		{
			name: "all flags",
			args: []string{"-user", "7", "-n", "5", "-beta", "0.25", "-dump", "-evaluate", "-json", "-serve", "-config", "c.yaml"},
			want: options{configPath: "c.yaml", user: 7, n: 5, beta: 0.25, betaSet: true, dump: true, evaluate: true, json: true, serve: true},
		},
		{
			name: "explicit default beta counts as set",
			args: []string{"-beta", "0.5"},
			want: options{user: 1, beta: 0.5, betaSet: true},
		},
		{name: "negative n", args: []string{"-n", "-1"}, wantErr: true},
		{name: "unknown flag", args: []string{"-bogus"}, wantErr: true},
		{name: "positional argument", args: []string{"extra"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args, io.Discard)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestApplyFlags(t *testing.T) {
	dir := t.TempDir()
	cfg := loadTestConfig(t, map[string]string{
		"TRAIN_PATH": writeFile(t, dir, "train.dat", trainData),
		"TEST_PATH":  writeFile(t, dir, "test.dat", testData),
	})

	if err := applyFlags(cfg, options{beta: 0.8, betaSet: true, evaluate: true, serve: true}); err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if cfg.Model.Beta != 0.8 {
		t.Errorf("expected beta 0.8, got %v", cfg.Model.Beta)
	}
	if !cfg.Evaluate.Enabled || !cfg.Server.Enabled {
		t.Errorf("expected evaluate and server enabled, got %+v %+v", cfg.Evaluate, cfg.Server)
	}

	if err := applyFlags(cfg, options{beta: 1.5, betaSet: true}); err == nil {
		t.Error("expected error for beta out of range")
	}
}

func TestRun_FileSourceJSON(t *testing.T) {
	dir := t.TempDir()
	cfg := loadTestConfig(t, map[string]string{
		"TRAIN_PATH": writeFile(t, dir, "train.dat", trainData),
		"TEST_PATH":  writeFile(t, dir, "test.dat", testData),
	})
	cfg.Evaluate.Enabled = true

	var out bytes.Buffer
	if err := run(context.Background(), cfg, options{user: 1, dump: true, json: true}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	var res batchResult
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal output: %v\n%s", err, out.String())
	}

	if res.Model.Ratings != 5 || res.Model.Beta != 0.5 {
		t.Errorf("unexpected model status: %+v", res.Model)
	}
	if res.Recommendations == nil || len(res.Recommendations.Items) != 1 {
		t.Fatalf("expected one recommendation, got %+v", res.Recommendations)
	}
	if got := res.Recommendations.Items[0]; got.ItemID != 30 || got.Score != 3 {
		t.Errorf("expected item 30 with score 3, got %+v", got)
	}
	if len(res.Users) != 3 || len(res.Items) != 3 {
		t.Errorf("expected 3 users and 3 items, got %d and %d", len(res.Users), len(res.Items))
	}
	if res.Evaluation == nil {
		t.Fatal("expected evaluation report")
	}
	if res.Evaluation.Predicted != 2 || res.Evaluation.Skipped != 1 {
		t.Errorf("expected 2 predicted and 1 skipped, got %d and %d", res.Evaluation.Predicted, res.Evaluation.Skipped)
	}
}

func TestRun_TextOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := loadTestConfig(t, map[string]string{
		"TRAIN_PATH":          writeFile(t, dir, "train.dat", trainData),
		"TEST_PATH":           writeFile(t, dir, "test.dat", testData),
		"EVALUATE_ENABLED":    "true",
		"EVALUATE_SHOW_PAIRS": "true",
	})

	var out bytes.Buffer
	if err := run(context.Background(), cfg, options{user: 3, n: 1}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	text := out.String()
	for _, want := range []string{"Recommendations for user 3", "2.75", "Evaluation", "MAE", "Recall"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected output to contain %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Users") {
		t.Error("statistics should only be printed with -dump")
	}
}

func TestRun_UnknownUserPrintsEmptyList(t *testing.T) {
	dir := t.TempDir()
	cfg := loadTestConfig(t, map[string]string{
		"TRAIN_PATH": writeFile(t, dir, "train.dat", trainData),
	})

	var out bytes.Buffer
	if err := run(context.Background(), cfg, options{user: 42}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "no recommendations") {
		t.Errorf("expected empty list message, got:\n%s", out.String())
	}
}

func TestRun_MissingTrainingFile(t *testing.T) {
	cfg := loadTestConfig(t, map[string]string{
		"TRAIN_PATH": filepath.Join(t.TempDir(), "missing.dat"),
	})

	if err := run(context.Background(), cfg, options{user: 1}, io.Discard); err == nil {
		t.Fatal("expected error for missing training file")
	}
}

func TestRun_MalformedTrainingFile(t *testing.T) {
	dir := t.TempDir()
	cfg := loadTestConfig(t, map[string]string{
		"TRAIN_PATH": writeFile(t, dir, "train.dat", "1\t10\n"),
	})

	err := run(context.Background(), cfg, options{user: 1}, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "data format not correct") {
		t.Fatalf("expected data format error, got %v", err)
	}
}

func TestLoadTrainingStore_DuckDBImport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "ratings.duckdb")
	cfg := loadTestConfig(t, map[string]string{
		"DATASET_SOURCE": config.SourceDuckDB,
		"DUCKDB_PATH":    dbPath,
		"DUCKDB_IMPORT":  "true",
		"TRAIN_PATH":     writeFile(t, dir, "train.dat", trainData),
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		store, err := loadTrainingStore(ctx, cfg)
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if store.Len() != 5 || store.NumUsers() != 3 {
			t.Errorf("load %d: expected 5 ratings from 3 users, got %d from %d", i, store.Len(), store.NumUsers())
		}
	}

	// The second load must not import the file again.
	db, err := database.New(ctx, dbPath, cfg.Dataset.DuckDBTable)
	if err != nil {
		t.Fatalf("reopen database: %v", err)
	}
	defer db.Close()

	count, err := db.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("expected 5 rows after two loads, got %d", count)
	}
}
