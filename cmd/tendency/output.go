// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"

	"github.com/tomtom215/tendency/internal/evaluate"
	"github.com/tomtom215/tendency/internal/recommend"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6EC4F4"))
	headStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

type userRecommendations struct {
	UserID int64                       `json:"user_id"`
	Items  []recommend.RecommendedItem `json:"items"`
}

// batchResult is everything the batch run prints.
type batchResult struct {
	Model           recommend.Status        `json:"model"`
	Recommendations *userRecommendations    `json:"recommendations,omitempty"`
	Users           []recommend.EntityStats `json:"users,omitempty"`
	Items           []recommend.EntityStats `json:"items,omitempty"`
	Evaluation      *evaluate.Report        `json:"evaluation,omitempty"`
}

func writeResult(w io.Writer, res batchResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if res.Users != nil {
		if err := writeStats(w, "Users", res.Users); err != nil {
			return err
		}
		if err := writeStats(w, "Items", res.Items); err != nil {
			return err
		}
	}
	if res.Recommendations != nil {
		if err := writeRecommendations(w, res.Recommendations); err != nil {
			return err
		}
	}
	if res.Evaluation != nil {
		if _, err := fmt.Fprintln(w, titleStyle.Render("Evaluation")); err != nil {
			return err
		}
		return res.Evaluation.Render(w)
	}
	return nil
}

func writeRecommendations(w io.Writer, recs *userRecommendations) error {
	title := fmt.Sprintf("Recommendations for user %d", recs.UserID)
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}
	if len(recs.Items) == 0 {
		_, err := fmt.Fprintln(w, dimStyle.Render("no recommendations"))
		return err
	}

	if _, err := fmt.Fprintln(w, headStyle.Render(fmt.Sprintf("%-5s %-12s %s", "rank", "item", "score"))); err != nil {
		return err
	}
	for i, it := range recs.Items {
		if _, err := fmt.Fprintf(w, "%-5d %-12d %.2f\n", i+1, it.ItemID, it.Score); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeStats(w io.Writer, title string, stats []recommend.EntityStats) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, headStyle.Render(fmt.Sprintf("%-12s %-8s %-10s %s", "id", "ratings", "average", "tendency"))); err != nil {
		return err
	}
	for _, s := range stats {
		if _, err := fmt.Fprintf(w, "%-12d %-8d %-10.4f %.4f\n", s.ID, s.Ratings, s.Average, s.Tendency); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
