package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"parcelnorm/internal"
)

const (
	StatusWritten = "written"
	StatusAborted = "aborted"
)

// DB is the run ledger. It records every run and the labels no rule mapped;
// the normalized entities themselves only ever go to the output directory.
type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL UNIQUE,
  county TEXT NOT NULL,
  parcelId TEXT,
  status TEXT NOT NULL,
  abortReason TEXT,
  countsJson TEXT NOT NULL,
  timingsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_parcel ON runs(parcelId);

CREATE TABLE IF NOT EXISTS unmapped (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  domain TEXT NOT NULL,
  raw TEXT NOT NULL,
  suggestion TEXT,
  score REAL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(traceId, domain, raw),
  FOREIGN KEY(traceId) REFERENCES runs(traceId)
);
CREATE INDEX IF NOT EXISTS idx_unmapped_domain ON unmapped(domain, raw);
`

	_, err := d.conn.Exec(schema)
	return err
}

// InsertRun appends one run together with its unmapped labels.
func (d *DB) InsertRun(run internal.RunRow, review []internal.ReviewRow) error {
	countsJSON, _ := json.Marshal(run.Counts)
	timingsJSON, _ := json.Marshal(run.Timings)

	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
INSERT INTO runs (traceId, county, parcelId, status, abortReason, countsJson, timingsJson)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, run.TraceID, run.County, run.ParcelID, run.Status, run.AbortReason, string(countsJSON), string(timingsJSON)); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
INSERT INTO unmapped (traceId, domain, raw, suggestion, score)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(traceId, domain, raw) DO NOTHING
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range review {
		if _, err := stmt.Exec(run.TraceID, r.Domain, r.Raw, r.Suggestion, r.Score); err != nil {
			return fmt.Errorf("insert unmapped: %w", err)
		}
	}

	return tx.Commit()
}

func (d *DB) ListRuns(limit int) ([]internal.RunRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.conn.Query(`
SELECT id, traceId, county, COALESCE(parcelId, ''), status, abortReason, countsJson, timingsJson, createdAt
FROM runs ORDER BY id DESC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.RunRow
	for rows.Next() {
		var row internal.RunRow
		var countsJSON, timingsJSON string
		if err := rows.Scan(&row.ID, &row.TraceID, &row.County, &row.ParcelID, &row.Status, &row.AbortReason,
			&countsJSON, &timingsJSON, &row.CreatedAt); err != nil {
			return nil, err
		}
		if err := decodeRunJSON(&row, countsJSON, timingsJSON); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) GetRun(traceID string) (*internal.RunRow, error) {
	var row internal.RunRow
	var countsJSON, timingsJSON string
	err := d.conn.QueryRow(`
SELECT id, traceId, county, COALESCE(parcelId, ''), status, abortReason, countsJson, timingsJson, createdAt
FROM runs WHERE traceId = ?
`, traceID).Scan(&row.ID, &row.TraceID, &row.County, &row.ParcelID, &row.Status, &row.AbortReason,
		&countsJSON, &timingsJSON, &row.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := decodeRunJSON(&row, countsJSON, timingsJSON); err != nil {
		return nil, err
	}
	return &row, nil
}

func decodeRunJSON(row *internal.RunRow, countsJSON, timingsJSON string) error {
	if err := json.Unmarshal([]byte(countsJSON), &row.Counts); err != nil {
		return fmt.Errorf("run %s counts: %w", row.TraceID, err)
	}
	if err := json.Unmarshal([]byte(timingsJSON), &row.Timings); err != nil {
		return fmt.Errorf("run %s timings: %w", row.TraceID, err)
	}
	return nil
}

// ReviewQueue groups unmapped labels across runs, most frequent first. A
// non-empty traceID narrows the queue to one run.
func (d *DB) ReviewQueue(traceID string) ([]internal.ReviewRow, error) {
	rows, err := d.conn.Query(`
SELECT domain, raw, MAX(suggestion), MAX(score), COUNT(*), MAX(traceId)
FROM unmapped
WHERE ? = '' OR traceId = ?
GROUP BY domain, raw
ORDER BY COUNT(*) DESC, domain ASC, raw ASC
`, traceID, traceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.ReviewRow
	for rows.Next() {
		var row internal.ReviewRow
		if err := rows.Scan(&row.Domain, &row.Raw, &row.Suggestion, &row.Score, &row.Seen, &row.LastTrace); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) MustRun(traceID string) (internal.RunRow, error) {
	row, err := d.GetRun(traceID)
	if err != nil {
		return internal.RunRow{}, err
	}
	if row == nil {
		return internal.RunRow{}, fmt.Errorf("run not found: traceId=%s", traceID)
	}
	return *row, nil
}
