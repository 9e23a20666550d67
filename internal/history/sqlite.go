package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore keeps the history in a SQLite database.
type SQLiteStore struct {
	db         *sql.DB
	dbPath     string
	maxRecords int
}

// NewSQLiteStore opens (creating if needed) the database at dbPath.
// ":memory:" gives a throwaway store.
func NewSQLiteStore(dbPath string, maxRecords int) (*SQLiteStore, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		// Each pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

	// busy_timeout goes first so the remaining pragmas wait on locks.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if err := execWithRetry(db, pragma, 5, 10*time.Millisecond); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := execWithRetry(db, schemaSQL, 5, 10*time.Millisecond); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	if maxRecords <= 0 {
		maxRecords = models.MaxStoredResults
	}
	return &SQLiteStore{db: db, dbPath: dbPath, maxRecords: maxRecords}, nil
}

// execWithRetry retries "database is locked" failures with exponential backoff.
func execWithRetry(db *sql.DB, stmt string, maxRetries int, baseDelay time.Duration) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err := db.Exec(stmt)
		if err == nil {
			return nil
		}
		if !strings.Contains(err.Error(), "database is locked") {
			return err
		}
		lastErr = err
		time.Sleep(baseDelay * time.Duration(1<<attempt))
	}
	return lastErr
}

// Append inserts one record and trims the table to the newest maxRecords.
func (s *SQLiteStore) Append(ctx context.Context, scores models.DimensionScores, ts time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO stored_results
		(id, income_stability, reserve_capacity, debt_protection, money_management, support_network, psychological_outlook, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		scores.Income,
		scores.Reserve,
		scores.Debt,
		scores.Money,
		scores.Support,
		scores.Psychological,
		ts.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert stored result: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM stored_results
		WHERE seq NOT IN (SELECT seq FROM stored_results ORDER BY seq DESC LIMIT ?)`, s.maxRecords)
	if err != nil {
		return fmt.Errorf("trim stored results: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Records returns every stored record, oldest first.
func (s *SQLiteStore) Records(ctx context.Context) ([]models.StoredResult, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, income_stability, reserve_capacity, debt_protection,
		money_management, support_network, psychological_outlook, recorded_at
		FROM stored_results
		ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("query stored results: %w", err)
	}
	defer rows.Close()

	var records []models.StoredResult
	for rows.Next() {
		var r models.StoredResult
		var recordedAt int64
		err := rows.Scan(
			&r.ID,
			&r.DimensionScores.Income,
			&r.DimensionScores.Reserve,
			&r.DimensionScores.Debt,
			&r.DimensionScores.Money,
			&r.DimensionScores.Support,
			&r.DimensionScores.Psychological,
			&recordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan stored result: %w", err)
		}
		r.Timestamp = time.UnixMilli(recordedAt).UTC()
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return records, nil
}

// Count returns the number of stored records without loading them.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stored_results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stored results: %w", err)
	}
	return n, nil
}

// Clear deletes every record.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM stored_results`); err != nil {
		return fmt.Errorf("clear stored results: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
