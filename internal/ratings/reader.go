// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package ratings

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultDelimiter separates fields when no delimiter is configured.
const DefaultDelimiter = "\t"

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// FormatError reports a malformed line in a ratings file.
type FormatError struct {
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("data format not correct at line %d (%q): %s", e.Line, e.Text, e.Reason)
}

// ReadDelimited parses ratings from r. Blank lines are skipped and fields
// after the third are ignored. The first malformed line stops the read.
func ReadDelimited(r io.Reader, delim string) ([]Rating, error) {
	if delim == "" {
		delim = DefaultDelimiter
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows []Rating
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		row, err := parseLine(line, delim)
		if err != nil {
			return nil, &FormatError{Line: lineNo, Text: line, Reason: err.Error()}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ratings: %w", err)
	}

	return rows, nil
}

func parseLine(line, delim string) (Rating, error) {
	fields := strings.Split(line, delim)
	if len(fields) < 3 {
		return Rating{}, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}

	user, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return Rating{}, fmt.Errorf("invalid user id %q", fields[0])
	}
	item, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		return Rating{}, fmt.Errorf("invalid item id %q", fields[1])
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		return Rating{}, fmt.Errorf("invalid rating %q", fields[2])
	}

	return Rating{UserID: user, ItemID: item, Score: score}, nil
}

// LoadFile reads a delimited ratings file into a Store.
func LoadFile(path, delim string) (*Store, error) {
	rows, err := ReadFile(path, delim)
	if err != nil {
		return nil, err
	}
	return NewStore(rows), nil
}

// ReadFile parses the ratings in the file at path without building a Store.
func ReadFile(path, delim string) ([]Rating, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open ratings file: %w", err)
	}
	defer f.Close()

	rows, err := ReadDelimited(f, delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
