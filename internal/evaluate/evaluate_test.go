// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package evaluate

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/tomtom215/tendency/internal/ratings"
)

// mockPredictor returns fixed predictions keyed by (user, item).
type mockPredictor map[[2]int64]float64

func (m mockPredictor) PredictRating(user, item int64) (float64, bool) {
	v, ok := m[[2]int64{user, item}]
	return v, ok
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRun(t *testing.T) {
	t.Parallel()

	test := ratings.NewStore([]ratings.Rating{
		{UserID: 1, ItemID: 10, Score: 4},
		{UserID: 1, ItemID: 20, Score: 2},
		{UserID: 2, ItemID: 10, Score: 5},
		{UserID: 2, ItemID: 30, Score: 3},
		{UserID: 3, ItemID: 10, Score: 1},
	})
	pred := mockPredictor{
		{1, 10}: 3,   // err 1, relevant, retrieved
		{1, 20}: 3,   // err 1, not relevant
		{2, 10}: 2.5, // err 2.5, relevant, not retrieved
		{2, 30}: 3,   // err 0, relevant, retrieved
		// (3, 10) cannot be predicted
	}

	rep := Run(pred, test, Options{KeepPairs: true})

	if rep.Predicted != 4 || rep.Skipped != 1 {
		t.Errorf("Predicted=%d Skipped=%d, want 4 and 1", rep.Predicted, rep.Skipped)
	}
	if rep.Relevant != 3 || rep.RelevantRetrieved != 2 {
		t.Errorf("Relevant=%d RelevantRetrieved=%d, want 3 and 2", rep.Relevant, rep.RelevantRetrieved)
	}

	checks := []struct {
		name      string
		got, want float64
	}{
		{"MAE", rep.MAE, 4.5 / 4},
		{"RMSE", rep.RMSE, math.Sqrt(8.25 / 4)},
		{"GoodItemsMAE", rep.GoodItemsMAE, 3.5 / 3},
		{"GoodPredictedItemsMAE", rep.GoodPredictedItemsMAE, 0.5},
		{"Precision", rep.Precision, 0.5},
		{"Recall", rep.Recall, 2.0 / 3},
	}
	for _, c := range checks {
		if !approx(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if len(rep.Pairs) != 4 {
		t.Fatalf("len(Pairs) = %d, want 4", len(rep.Pairs))
	}
	if rep.Pairs[0] != (Pair{UserID: 1, ItemID: 10, Actual: 4, Predicted: 3}) {
		t.Errorf("Pairs[0] = %+v", rep.Pairs[0])
	}
}

func TestRun_NoPredictions(t *testing.T) {
	t.Parallel()

	test := ratings.NewStore([]ratings.Rating{{UserID: 1, ItemID: 1, Score: 5}})
	rep := Run(mockPredictor{}, test, Options{})

	if rep.Predicted != 0 || rep.Skipped != 1 {
		t.Errorf("Predicted=%d Skipped=%d", rep.Predicted, rep.Skipped)
	}
	if rep.MAE != 0 || rep.RMSE != 0 || rep.Precision != 0 || rep.Recall != 0 {
		t.Errorf("expected zero metrics, got %+v", rep)
	}
	if rep.Threshold != DefaultThreshold {
		t.Errorf("Threshold = %v, want %v", rep.Threshold, DefaultThreshold)
	}
	if rep.Pairs != nil {
		t.Errorf("Pairs = %v, want nil without KeepPairs", rep.Pairs)
	}
}

func TestRun_CustomThreshold(t *testing.T) {
	t.Parallel()

	test := ratings.NewStore([]ratings.Rating{
		{UserID: 1, ItemID: 1, Score: 4},
		{UserID: 1, ItemID: 2, Score: 5},
	})
	pred := mockPredictor{{1, 1}: 4, {1, 2}: 4.5}

	rep := Run(pred, test, Options{Threshold: 4.5})

	if rep.Relevant != 1 || rep.RelevantRetrieved != 1 {
		t.Errorf("Relevant=%d RelevantRetrieved=%d, want 1 and 1", rep.Relevant, rep.RelevantRetrieved)
	}
	if !approx(rep.Recall, 1) || !approx(rep.Precision, 0.5) {
		t.Errorf("Precision=%v Recall=%v", rep.Precision, rep.Recall)
	}
}

func TestReport_Render(t *testing.T) {
	t.Parallel()

	rep := &Report{
		Predicted: 2,
		MAE:       0.25,
		Precision: 1,
		Pairs:     []Pair{{UserID: 7, ItemID: 42, Actual: 4, Predicted: 3.75}},
	}

	var buf bytes.Buffer
	if err := rep.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Total Ratings Predicted", "MAE", "0.2500", "Recall", "42", "3.75"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output missing %q:\n%s", want, out)
		}
	}
}
