package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"tomato/internal/core/timekeeper"

	_ "github.com/mattn/go-sqlite3"
)

// HistoryRecord is one completed session.
type HistoryRecord struct {
	ID         int64
	RunID      string
	Repetition int
	Session    timekeeper.SessionType
	Duration   time.Duration
	StartedAt  time.Time
	EndedAt    time.Time
}

// History stores completed sessions in SQLite.
type History struct {
	db *sql.DB
}

// OpenHistory opens or creates the history database at path.
func OpenHistory(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history: %w", err)
	}

	history := &History{db: db}
	if err := history.initTables(); err != nil {
		db.Close()
		return nil, err
	}
	return history, nil
}

func (history *History) initTables() error {
	_, err := history.db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			repetition INTEGER NOT NULL,
			session TEXT NOT NULL,
			duration_seconds INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}

	_, err = history.db.Exec(`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at)`)
	if err != nil {
		return fmt.Errorf("create sessions index: %w", err)
	}
	return nil
}

// Close releases the database.
func (history *History) Close() error {
	return history.db.Close()
}

// Record stores a completed session.
func (history *History) Record(ctx context.Context, record HistoryRecord) (int64, error) {
	result, err := history.db.ExecContext(ctx, `
		INSERT INTO sessions (run_id, repetition, session, duration_seconds, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		record.RunID,
		record.Repetition,
		string(record.Session),
		int64(record.Duration/time.Second),
		record.StartedAt.UnixMilli(),
		record.EndedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}
	return result.LastInsertId()
}

// Recent returns the latest completed sessions, newest first.
func (history *History) Recent(ctx context.Context, limit int) ([]HistoryRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := history.db.QueryContext(ctx, `
		SELECT id, run_id, repetition, session, duration_seconds, started_at, ended_at
		FROM sessions
		ORDER BY ended_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var records []HistoryRecord
	for rows.Next() {
		var (
			record          HistoryRecord
			session         string
			durationSeconds int64
			startedAt       int64
			endedAt         int64
		)
		if err := rows.Scan(&record.ID, &record.RunID, &record.Repetition, &session, &durationSeconds, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		record.Session = timekeeper.SessionType(session)
		record.Duration = time.Duration(durationSeconds) * time.Second
		record.StartedAt = time.UnixMilli(startedAt)
		record.EndedAt = time.UnixMilli(endedAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return records, nil
}

// CountSince counts sessions of one type that ended at or after since.
func (history *History) CountSince(ctx context.Context, session timekeeper.SessionType, since time.Time) (int, error) {
	var count int
	err := history.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sessions WHERE session = ? AND ended_at >= ?
	`, string(session), since.UnixMilli()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}

// RecordEvents stores every session_complete event until events is closed.
func (history *History) RecordEvents(ctx context.Context, runID string, events <-chan timekeeper.Event) {
	for event := range events {
		if event.Type != timekeeper.EventSessionComplete {
			continue
		}
		_, err := history.Record(ctx, HistoryRecord{
			RunID:      runID,
			Repetition: event.Repetition,
			Session:    event.Session,
			Duration:   event.Duration,
			StartedAt:  event.StartedAt,
			EndedAt:    event.At,
		})
		if err != nil {
			log.Printf("history: %v", err)
		}
	}
}
