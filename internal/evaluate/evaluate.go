// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package evaluate

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/tendency/internal/ratings"
)

// DefaultThreshold is the rating at or above which an item counts as good.
const DefaultThreshold = 3.0

// Predictor predicts a rating for a (user, item) pair.
type Predictor interface {
	PredictRating(user, item int64) (float64, bool)
}

// Options controls an evaluation run.
type Options struct {
	// Threshold is the relevance cutoff.
	Threshold float64

	// KeepPairs records every predicted pair in the report.
	KeepPairs bool
}

// Pair is one predicted test rating.
type Pair struct {
	UserID    int64   `json:"user_id"`
	ItemID    int64   `json:"item_id"`
	Actual    float64 `json:"actual"`
	Predicted float64 `json:"predicted"`
}

// Report summarizes an evaluation run.
type Report struct {
	Threshold         float64 `json:"threshold"`
	Predicted         int     `json:"predicted"`
	Skipped           int     `json:"skipped"`
	Relevant          int     `json:"relevant"`
	RelevantRetrieved int     `json:"relevant_retrieved"`

	MAE                   float64 `json:"mae"`
	RMSE                  float64 `json:"rmse"`
	GoodItemsMAE          float64 `json:"good_items_mae"`
	GoodPredictedItemsMAE float64 `json:"good_predicted_items_mae"`
	Precision             float64 `json:"precision"`
	Recall                float64 `json:"recall"`

	Pairs []Pair `json:"pairs,omitempty"`
}

// Run predicts every rating in test and aggregates the errors.
func Run(p Predictor, test *ratings.Store, opts Options) *Report {
	if opts.Threshold == 0 {
		opts.Threshold = DefaultThreshold
	}

	var actual, predicted []float64
	var pairs []Pair
	skipped := 0

	test.Each(func(r ratings.Rating) {
		score, ok := p.PredictRating(r.UserID, r.ItemID)
		if !ok {
			skipped++
			return
		}
		actual = append(actual, r.Score)
		predicted = append(predicted, score)
		if opts.KeepPairs {
			pairs = append(pairs, Pair{UserID: r.UserID, ItemID: r.ItemID, Actual: r.Score, Predicted: score})
		}
	})

	rep := summarize(actual, predicted, opts.Threshold)
	rep.Skipped = skipped
	rep.Pairs = pairs
	return rep
}

func summarize(actual, predicted []float64, threshold float64) *Report {
	rep := &Report{Threshold: threshold, Predicted: len(actual)}
	if len(actual) == 0 {
		return rep
	}

	errs := make([]float64, len(actual))
	floats.SubTo(errs, predicted, actual)

	abs := make([]float64, len(errs))
	sq := make([]float64, len(errs))
	var good, goodPredicted []float64
	for i, e := range errs {
		abs[i] = math.Abs(e)
		sq[i] = e * e
		if actual[i] >= threshold {
			good = append(good, abs[i])
			if predicted[i] >= threshold {
				goodPredicted = append(goodPredicted, abs[i])
			}
		}
	}

	rep.Relevant = len(good)
	rep.RelevantRetrieved = len(goodPredicted)
	rep.MAE = stat.Mean(abs, nil)
	rep.RMSE = math.Sqrt(stat.Mean(sq, nil))
	rep.GoodItemsMAE = meanOrZero(good)
	rep.GoodPredictedItemsMAE = meanOrZero(goodPredicted)
	rep.Precision = ratio(rep.RelevantRetrieved, rep.Predicted)
	rep.Recall = ratio(rep.RelevantRetrieved, rep.Relevant)

	return rep
}

func meanOrZero(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
