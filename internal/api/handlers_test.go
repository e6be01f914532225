// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tendency/internal/ratings"
	"github.com/tomtom215/tendency/internal/recommend"
)

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func newTestEngine(t *testing.T) *recommend.Engine {
	t.Helper()

	store := ratings.NewStore([]ratings.Rating{
		{UserID: 1, ItemID: 10, Score: 5},
		{UserID: 1, ItemID: 20, Score: 3},
		{UserID: 2, ItemID: 10, Score: 4},
		{UserID: 2, ItemID: 30, Score: 2},
		{UserID: 3, ItemID: 20, Score: 1},
	})
	engine, err := recommend.NewEngine(store, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func newTestServer(t *testing.T, limits recommend.LimitsConfig) (http.Handler, *recommend.Engine) {
	t.Helper()

	engine := newTestEngine(t)
	mw := NewMiddleware(&MiddlewareConfig{RateLimitDisabled: true})
	return NewRouter(NewHandler(engine, limits), mw).SetupChi(), engine
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	var env testEnvelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("Failed to unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w, env
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t, recommend.LimitsConfig{})

	for _, path := range []string{"/api/v1/health/live", "/api/v1/health/ready"} {
		w, env := doRequest(t, h, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, w.Code)
		}
		if !env.Success {
			t.Errorf("%s: expected success", path)
		}
	}
}

func TestHealthReady_NoModel(t *testing.T) {
	t.Parallel()

	h := NewRouter(NewHandler(nil, recommend.LimitsConfig{}), nil).SetupChi()
	w, env := doRequest(t, h, http.MethodGet, "/api/v1/health/ready", "")

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected status 503, got %d", w.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("Expected %s error, got %+v", ErrCodeServiceUnavailable, env.Error)
	}
}

func TestGetPrediction(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t, recommend.LimitsConfig{})

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
		wantRating float64
	}{
		{"predicted pair", "/api/v1/predictions/1/30", http.StatusOK, "", 3},
		{"rated pair returns rating", "/api/v1/predictions/1/10", http.StatusOK, "", 5},
		{"clamped prediction", "/api/v1/predictions/3/30", http.StatusOK, "", 0},
		{"unknown user", "/api/v1/predictions/9/10", http.StatusNotFound, ErrCodeNoPrediction, 0},
		{"unknown item", "/api/v1/predictions/1/99", http.StatusNotFound, ErrCodeNoPrediction, 0},
		{"invalid user", "/api/v1/predictions/abc/10", http.StatusBadRequest, ErrCodeInvalidUserID, 0},
		{"invalid item", "/api/v1/predictions/1/x", http.StatusBadRequest, ErrCodeInvalidItemID, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doRequest(t, h, http.MethodGet, tt.path, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d (%s)", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantCode != "" {
				if env.Error == nil || env.Error.Code != tt.wantCode {
					t.Errorf("Expected error code %s, got %+v", tt.wantCode, env.Error)
				}
				return
			}

			var pred PredictionResponse
			if err := json.Unmarshal(env.Data, &pred); err != nil {
				t.Fatalf("Failed to unmarshal prediction: %v", err)
			}
			if pred.Rating != tt.wantRating {
				t.Errorf("Expected rating %v, got %v", tt.wantRating, pred.Rating)
			}
		})
	}
}

func TestGetRecommendations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		limits     recommend.LimitsConfig
		path       string
		wantStatus int
		wantCode   string
		wantItems  []int64
	}{
		{"default size", recommend.LimitsConfig{}, "/api/v1/recommendations/3", http.StatusOK, "", []int64{10, 30}},
		{"explicit max", recommend.LimitsConfig{}, "/api/v1/recommendations/3?max=1", http.StatusOK, "", []int64{10}},
		{"zero max", recommend.LimitsConfig{}, "/api/v1/recommendations/3?max=0", http.StatusOK, "", []int64{}},
		{"unknown user", recommend.LimitsConfig{}, "/api/v1/recommendations/99", http.StatusOK, "", []int64{}},
		{"fully rated user", recommend.LimitsConfig{}, "/api/v1/recommendations/1", http.StatusOK, "", []int64{30}},
		{"capped by max limit", recommend.LimitsConfig{DefaultMax: 1, MaxLimit: 1}, "/api/v1/recommendations/3?max=5", http.StatusOK, "", []int64{10}},
		{"non-numeric max", recommend.LimitsConfig{}, "/api/v1/recommendations/3?max=abc", http.StatusBadRequest, ErrCodeBadRequest, nil},
		{"negative max", recommend.LimitsConfig{}, "/api/v1/recommendations/3?max=-1", http.StatusBadRequest, ErrCodeValidationFailed, nil},
		{"invalid user", recommend.LimitsConfig{}, "/api/v1/recommendations/u1", http.StatusBadRequest, ErrCodeInvalidUserID, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := newTestServer(t, tt.limits)
			w, env := doRequest(t, h, http.MethodGet, tt.path, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d (%s)", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantCode != "" {
				if env.Error == nil || env.Error.Code != tt.wantCode {
					t.Errorf("Expected error code %s, got %+v", tt.wantCode, env.Error)
				}
				return
			}

			var resp RecommendationsResponse
			if err := json.Unmarshal(env.Data, &resp); err != nil {
				t.Fatalf("Failed to unmarshal recommendations: %v", err)
			}
			if resp.Items == nil {
				t.Fatal("Expected items to be an array, got null")
			}
			if len(resp.Items) != len(tt.wantItems) {
				t.Fatalf("Expected %d items, got %d: %+v", len(tt.wantItems), len(resp.Items), resp.Items)
			}
			for i, want := range tt.wantItems {
				if resp.Items[i].ItemID != want {
					t.Errorf("Item %d: expected %d, got %d", i, want, resp.Items[i].ItemID)
				}
			}
			if env.Meta == nil || env.Meta.Count == nil || *env.Meta.Count != len(tt.wantItems) {
				t.Errorf("Expected meta count %d, got %+v", len(tt.wantItems), env.Meta)
			}
		})
	}
}

func TestGetUsersAndItems(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t, recommend.LimitsConfig{})

	tests := []struct {
		path    string
		wantIDs []int64
	}{
		{"/api/v1/users", []int64{1, 2, 3}},
		{"/api/v1/items", []int64{10, 20, 30}},
	}

	for _, tt := range tests {
		w, env := doRequest(t, h, http.MethodGet, tt.path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", tt.path, w.Code)
		}

		var stats []recommend.EntityStats
		if err := json.Unmarshal(env.Data, &stats); err != nil {
			t.Fatalf("%s: failed to unmarshal: %v", tt.path, err)
		}
		if len(stats) != len(tt.wantIDs) {
			t.Fatalf("%s: expected %d entries, got %d", tt.path, len(tt.wantIDs), len(stats))
		}
		for i, id := range tt.wantIDs {
			if stats[i].ID != id {
				t.Errorf("%s: entry %d expected ID %d, got %d", tt.path, i, id, stats[i].ID)
			}
		}
	}
}

func TestGetModel(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t, recommend.LimitsConfig{})
	w, env := doRequest(t, h, http.MethodGet, "/api/v1/model", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var status recommend.Status
	if err := json.Unmarshal(env.Data, &status); err != nil {
		t.Fatalf("Failed to unmarshal status: %v", err)
	}
	if status.Beta != 0.5 {
		t.Errorf("Expected beta 0.5, got %v", status.Beta)
	}
	if status.Users != 3 || status.Items != 3 || status.Ratings != 5 {
		t.Errorf("Unexpected model size: %+v", status)
	}
	if status.Predictions != 9 {
		t.Errorf("Expected 9 predictions, got %d", status.Predictions)
	}
}

func TestSetBeta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"valid", `{"beta": 1}`, http.StatusOK, ""},
		{"zero is valid", `{"beta": 0}`, http.StatusOK, ""},
		{"above range", `{"beta": 1.5}`, http.StatusBadRequest, ErrCodeValidationFailed},
		{"below range", `{"beta": -0.1}`, http.StatusBadRequest, ErrCodeValidationFailed},
		{"missing beta", `{}`, http.StatusBadRequest, ErrCodeValidationFailed},
		{"malformed json", `{"beta":`, http.StatusBadRequest, ErrCodeBadRequest},
		{"wrong type", `{"beta": "high"}`, http.StatusBadRequest, ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, engine := newTestServer(t, recommend.LimitsConfig{})
			w, env := doRequest(t, h, http.MethodPut, "/api/v1/model/beta", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d (%s)", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantCode != "" {
				if env.Error == nil || env.Error.Code != tt.wantCode {
					t.Errorf("Expected error code %s, got %+v", tt.wantCode, env.Error)
				}
				if engine.Beta() != 0.5 {
					t.Errorf("Beta changed on rejected request: %v", engine.Beta())
				}
			}
		})
	}
}

func TestSetBeta_RebuildsPredictions(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t, recommend.LimitsConfig{})

	w, _ := doRequest(t, h, http.MethodPut, "/api/v1/model/beta", `{"beta": 1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	_, env := doRequest(t, h, http.MethodGet, "/api/v1/predictions/1/30", "")
	var pred PredictionResponse
	if err := json.Unmarshal(env.Data, &pred); err != nil {
		t.Fatalf("Failed to unmarshal prediction: %v", err)
	}
	if pred.Rating != 2 {
		t.Errorf("Expected rating 2 after beta change, got %v", pred.Rating)
	}
}

func TestSetBeta_EmptyBody(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t, recommend.LimitsConfig{})
	w, env := doRequest(t, h, http.MethodPut, "/api/v1/model/beta", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeBadRequest {
		t.Errorf("Expected %s, got %+v", ErrCodeBadRequest, env.Error)
	}
}
