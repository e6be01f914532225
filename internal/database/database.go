// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/tendency/internal/logging"
	"github.com/tomtom215/tendency/internal/metrics"
	"github.com/tomtom215/tendency/internal/ratings"
)

// queryTimeout bounds every dataset query.
const queryTimeout = 5 * time.Minute

// ErrInvalidTable is returned for table names that are not plain identifiers.
var ErrInvalidTable = errors.New("invalid table name")

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DB wraps a DuckDB connection holding one ratings table.
type DB struct {
	conn  *sql.DB
	path  string
	table string
}

// New opens the DuckDB database at path and ensures table exists.
// Use ":memory:" for a throwaway database.
func New(ctx context.Context, path, table string) (*DB, error) {
	if !identifier.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}

	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	// Extensions are not needed; disabling auto-install avoids network access.
	connStr := fmt.Sprintf("%s?access_mode=read_write&autoinstall_known_extensions=false&autoload_known_extensions=false", path)
	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, path: path, table: table}
	if err := db.createTable(ctx); err != nil {
		closeQuietly(conn)
		return nil, err
	}

	logging.Debug().Str("path", path).Str("table", table).Msg("DuckDB ratings source opened")
	return db, nil
}

func (db *DB) createTable(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		user_id BIGINT NOT NULL,
		item_id BIGINT NOT NULL,
		rating  DOUBLE NOT NULL
	)`, db.table)

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, query)
	metrics.RecordDBQuery("create", db.table, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("create table %s: %w", db.table, err)
	}
	return nil
}

// Close closes the connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// Table returns the ratings table name.
func (db *DB) Table() string {
	return db.table
}

// Count returns the number of rows in the ratings table.
func (db *DB) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	start := time.Now()
	err := db.conn.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", db.table)).Scan(&n)
	metrics.RecordDBQuery("count", db.table, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return n, nil
}

// InsertRatings appends rows in a single transaction.
func (db *DB) InsertRatings(ctx context.Context, rows []ratings.Rating) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	err := db.insert(ctx, rows)
	metrics.RecordDBQuery("insert", db.table, time.Since(start), err)
	return err
}

func (db *DB) insert(ctx context.Context, rows []ratings.Rating) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (user_id, item_id, rating) VALUES (?, ?, ?)", db.table))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer closeQuietly(stmt)

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.UserID, r.ItemID, r.Score); err != nil {
			return fmt.Errorf("insert rating (%d, %d): %w", r.UserID, r.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ratings: %w", err)
	}
	return nil
}

// ImportFile parses a delimited ratings file and appends it to the table.
// A malformed file imports nothing.
func (db *DB) ImportFile(ctx context.Context, path, delim string) (int, error) {
	rows, err := ratings.ReadFile(path, delim)
	if err != nil {
		return 0, err
	}
	if err := db.InsertRatings(ctx, rows); err != nil {
		return 0, err
	}

	logging.Info().
		Str("file", path).
		Str("table", db.table).
		Int("rows", len(rows)).
		Msg("Ratings imported into DuckDB")
	return len(rows), nil
}

// LoadRatings reads every row in insertion order.
func (db *DB) LoadRatings(ctx context.Context) ([]ratings.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	out, err := db.selectRatings(ctx)
	metrics.RecordDBQuery("select", db.table, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	metrics.RecordRowsLoaded("duckdb", len(out))
	return out, nil
}

func (db *DB) selectRatings(ctx context.Context) ([]ratings.Rating, error) {
	query := fmt.Sprintf("SELECT user_id, item_id, rating FROM %s ORDER BY rowid", db.table)

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query ratings: %w", err)
	}
	defer closeQuietly(rows)

	var out []ratings.Rating
	for rows.Next() {
		var r ratings.Rating
		if err := rows.Scan(&r.UserID, &r.ItemID, &r.Score); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}
	return out, nil
}

// LoadStore reads the table into a ratings.Store.
func (db *DB) LoadStore(ctx context.Context) (*ratings.Store, error) {
	rows, err := db.LoadRatings(ctx)
	if err != nil {
		return nil, err
	}
	return ratings.NewStore(rows), nil
}

func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
