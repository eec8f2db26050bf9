package db

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mzerara/storedash/internal/models"
)

const timeFormat = "2006-01-02 15:04:05"

// InsertSnapshot journals one fetch result along with its daily revenue rows.
func (db *DB) InsertSnapshot(report *models.SalesReport, source string) (int64, error) {
	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	fetchedAt := report.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}

	result, err := tx.ExecContext(context.Background(),
		`INSERT INTO fetch_snapshots (fetched_at, total_revenue, order_count, skipped_count, source)
		 VALUES (?, ?, ?, ?, ?)`,
		fetchedAt.Format(timeFormat),
		report.TotalRevenue.String(),
		report.OrderCount,
		report.SkippedCount(),
		source,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read snapshot id: %w", err)
	}

	for _, point := range report.DailySeries {
		_, err := tx.ExecContext(context.Background(),
			`INSERT INTO daily_revenue (snapshot_id, day, total) VALUES (?, ?, ?)`,
			id, point.Date, point.Total.String(),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert daily revenue for %s: %w", point.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return id, nil
}

// RecentSnapshots returns the most recent snapshots, newest first.
func (db *DB) RecentSnapshots(limit int) ([]models.Snapshot, error) {
	rows, err := db.QueryContext(context.Background(),
		`SELECT id, fetched_at, total_revenue, order_count, skipped_count, source
		 FROM fetch_snapshots
		 ORDER BY fetched_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snapshots []models.Snapshot
	for rows.Next() {
		var s models.Snapshot
		var fetchedAt, revenue string

		if err := rows.Scan(&s.ID, &fetchedAt, &revenue, &s.OrderCount, &s.SkippedCount, &s.Source); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}

		s.FetchedAt, err = time.Parse(timeFormat, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse snapshot time %q: %w", fetchedAt, err)
		}
		s.TotalRevenue, err = decimal.NewFromString(revenue)
		if err != nil {
			return nil, fmt.Errorf("failed to parse snapshot revenue %q: %w", revenue, err)
		}
		snapshots = append(snapshots, s)
	}

	return snapshots, rows.Err()
}

// SnapshotDailyRevenue returns the daily revenue rows of one snapshot in
// chronological order.
func (db *DB) SnapshotDailyRevenue(snapshotID int64) ([]models.DailyRevenue, error) {
	rows, err := db.QueryContext(context.Background(),
		`SELECT day, total FROM daily_revenue WHERE snapshot_id = ? ORDER BY day ASC`,
		snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily revenue: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var series []models.DailyRevenue
	for rows.Next() {
		var point models.DailyRevenue
		var total string

		if err := rows.Scan(&point.Date, &total); err != nil {
			return nil, fmt.Errorf("failed to scan daily revenue: %w", err)
		}
		point.Total, err = decimal.NewFromString(total)
		if err != nil {
			return nil, fmt.Errorf("failed to parse daily revenue %q: %w", total, err)
		}
		series = append(series, point)
	}

	return series, rows.Err()
}

// PruneSnapshots deletes all but the most recent keep snapshots.
func (db *DB) PruneSnapshots(keep int) (int64, error) {
	result, err := db.ExecContext(context.Background(),
		`DELETE FROM fetch_snapshots
		 WHERE id NOT IN (
			SELECT id FROM fetch_snapshots ORDER BY fetched_at DESC, id DESC LIMIT ?
		 )`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}
	return result.RowsAffected()
}
