// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

// Package config loads application configuration with Koanf v2.
//
// # Loading Order
//
// Configuration is layered, later sources overriding earlier ones:
//
//  1. Built-in defaults (defaultConfig)
//  2. A YAML file: $CONFIG_PATH, else the first of DefaultConfigPaths
//  3. Environment variables listed in envKeys
//
// # Example config.yaml
//
//	dataset:
//	  source: file
//	  train_path: data/train.dat
//	  test_path: data/test.dat
//	  delimiter: tab
//	model:
//	  beta: 0.5
//	evaluate:
//	  enabled: true
//	  relevance_threshold: 3
//	server:
//	  enabled: true
//	  port: 8080
//	logging:
//	  level: debug
//	  format: console
//
// # Environment Variables
//
// Only mapped names are read, e.g. TRAIN_PATH, TEST_PATH, BETA, HTTP_PORT,
// LOG_LEVEL. Unrelated environment variables are ignored.
//
// # Validation
//
// Struct tags are checked with go-playground/validator through the
// validation package, then cross-field rules are applied (a file source
// needs a training path, evaluation needs a test path, and so on).
package config
