// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package validation

import (
	"math"
	"strings"
	"testing"
)

func TestValidator_Shared(t *testing.T) {
	v := Validator()
	if v == nil {
		t.Fatal("Validator() returned nil")
	}
	if Validator() != v {
		t.Error("Validator() should return the same instance")
	}
}

type modelSection struct {
	Beta float64 `koanf:"beta" validate:"finite,gte=0,lte=1"`
}

type testConfig struct {
	Source string       `koanf:"source" validate:"required,oneof=file duckdb"`
	Limit  int          `json:"limit" validate:"min=1,max=1000"`
	Name   string       `validate:"omitempty,min=2"`
	Model  modelSection `koanf:"model"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     testConfig
		wantField string
		wantMsg   string
	}{
		{
			name:  "valid",
			input: testConfig{Source: "file", Limit: 10, Model: modelSection{Beta: 0.5}},
		},
		{
			name:      "missing source",
			input:     testConfig{Limit: 10},
			wantField: "source",
			wantMsg:   "source is required",
		},
		{
			name:      "bad source",
			input:     testConfig{Source: "csv", Limit: 10},
			wantField: "source",
			wantMsg:   "source must be one of: file duckdb",
		},
		{
			name:      "limit uses json tag",
			input:     testConfig{Source: "file", Limit: 0},
			wantField: "limit",
			wantMsg:   "limit must be at least 1",
		},
		{
			name:      "string min",
			input:     testConfig{Source: "file", Limit: 1, Name: "x"},
			wantField: "Name",
			wantMsg:   "Name must be at least 2 characters",
		},
		{
			name:      "nested beta",
			input:     testConfig{Source: "file", Limit: 1, Model: modelSection{Beta: 1.5}},
			wantField: "model.beta",
			wantMsg:   "model.beta must be less than or equal to 1",
		},
		{
			name:      "nan beta",
			input:     testConfig{Source: "file", Limit: 1, Model: modelSection{Beta: math.NaN()}},
			wantField: "model.beta",
			wantMsg:   "model.beta must be a finite number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			first := err[0]
			if first.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", first.Field, tt.wantField)
			}
			if first.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", first.Message, tt.wantMsg)
			}
		})
	}
}

func TestFieldErrors_Details(t *testing.T) {
	single := ValidateStruct(&testConfig{Source: "file", Limit: 0})
	if len(single) != 1 {
		t.Fatalf("expected 1 error, got %d", len(single))
	}
	if got := single.Details()["field"]; got != "limit" {
		t.Errorf("Details()[field] = %v, want limit", got)
	}

	multi := ValidateStruct(&testConfig{Limit: 0})
	msg := multi.Error()
	if !strings.Contains(msg, "source is required") || !strings.Contains(msg, "limit must be at least 1") {
		t.Errorf("Error() = %q", msg)
	}
	if _, ok := multi.Details()["fields"]; !ok {
		t.Error("Details should list fields for multiple errors")
	}

	var empty FieldErrors
	if empty.Error() != "validation failed" {
		t.Errorf("empty Error() = %q", empty.Error())
	}
	if empty.Details() != nil {
		t.Errorf("empty Details() = %v, want nil", empty.Details())
	}
}
