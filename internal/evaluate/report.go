// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package evaluate

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6EC4F4"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
	headStyle  = lipgloss.NewStyle().Bold(true)
)

// Render writes a human-readable report to w.
func (r *Report) Render(w io.Writer) error {
	if len(r.Pairs) > 0 {
		if _, err := fmt.Fprintln(w, headStyle.Render(fmt.Sprintf("%-10s %-10s %-8s %-8s", "user", "item", "actual", "predicted"))); err != nil {
			return err
		}
		for _, p := range r.Pairs {
			if _, err := fmt.Fprintf(w, "%-10d %-10d %-8.2f %-8.2f\n", p.UserID, p.ItemID, p.Actual, p.Predicted); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	lines := []struct {
		label string
		value string
	}{
		{"Total Ratings Predicted", fmt.Sprint(r.Predicted)},
		{"Ratings Skipped", fmt.Sprint(r.Skipped)},
		{"Total Good/Relevant Items", fmt.Sprint(r.Relevant)},
		{"Total Good/Relevant Items Retrieved", fmt.Sprint(r.RelevantRetrieved)},
		{"MAE", fmt.Sprintf("%.4f", r.MAE)},
		{"RMSE", fmt.Sprintf("%.4f", r.RMSE)},
		{"Good Items MAE", fmt.Sprintf("%.4f", r.GoodItemsMAE)},
		{"Good Predicted Items MAE", fmt.Sprintf("%.4f", r.GoodPredictedItemsMAE)},
		{"Precision", fmt.Sprintf("%.4f", r.Precision)},
		{"Recall", fmt.Sprintf("%.4f", r.Recall)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s %s\n", labelStyle.Render(l.label+":"), valueStyle.Render(l.value)); err != nil {
			return err
		}
	}
	return nil
}
