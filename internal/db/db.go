// Package db manages the database connection
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"
)

// DB wraps the SQL database connection with application-specific methods.
type DB struct {
	*sql.DB
	path string
}

// New creates a new database connection and initializes the schema.
func New(path string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.PingContext(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{
		DB:   sqlDB,
		path: path,
	}

	if err := db.configure(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	if err := db.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// configure sets up database pragmas for optimal performance.
func (db *DB) configure() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA temp_store=MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	return nil
}

func (db *DB) createSchema() error {
	if err := db.createSnapshotsTable(); err != nil {
		return err
	}
	return db.createDailyRevenueTable()
}

func (db *DB) createSnapshotsTable() error {
	// Monetary totals are stored as decimal text, never as REAL.
	query := `
	CREATE TABLE IF NOT EXISTS fetch_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		total_revenue TEXT NOT NULL,
		order_count INTEGER NOT NULL DEFAULT 0,
		skipped_count INTEGER NOT NULL DEFAULT 0,
		source TEXT NOT NULL DEFAULT 'api'
	);
	CREATE INDEX IF NOT EXISTS idx_fetch_snapshots_fetched_at ON fetch_snapshots(fetched_at);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}

func (db *DB) createDailyRevenueTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS daily_revenue (
		snapshot_id INTEGER NOT NULL REFERENCES fetch_snapshots(id) ON DELETE CASCADE,
		day TEXT NOT NULL,
		total TEXT NOT NULL,
		PRIMARY KEY (snapshot_id, day)
	);
	CREATE INDEX IF NOT EXISTS idx_daily_revenue_day ON daily_revenue(day);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}

// Close closes the database connection gracefully.
func (db *DB) Close() error {
	// Checkpoint WAL before closing
	_, _ = db.ExecContext(context.Background(), "PRAGMA wal_checkpoint(TRUNCATE)")
	return db.DB.Close()
}

// Vacuum performs database maintenance to reclaim space.
func (db *DB) Vacuum() error {
	_, err := db.ExecContext(context.Background(), "VACUUM")
	return err
}
