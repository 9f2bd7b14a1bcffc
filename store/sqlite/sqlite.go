/*
Package sqlite provides the SQLite-backed workday.Store.

PURPOSE:
  Persists logged work days in a single-file database. The engine itself
  performs no I/O; this package is the durable store the host application
  wires in.

KEY TABLE:
  work_days: one row per logged shift, one per calendar day

DAY UNIQUENESS:
  The operator logs at most one shift per calendar day. Enforced with a
  unique index on DATE(start_date); a violation surfaces as
  workday.ErrDuplicateDay.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. With a server database the
  database-level concurrency control would handle this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/shifts.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - workday/store.go: Interface definition
  - workday/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/railops/shift-engine/workday"
)

// Store implements workday.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ workday.Store = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS work_days (
		id TEXT PRIMARY KEY,
		shift_name TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		saturation REAL,
		extra_time INTEGER NOT NULL DEFAULT 0,
		is_allowance BOOLEAN NOT NULL DEFAULT FALSE,
		is_free_license BOOLEAN NOT NULL DEFAULT FALSE,
		is_worked_holiday BOOLEAN NOT NULL DEFAULT FALSE,
		is_special_worked_holiday BOOLEAN NOT NULL DEFAULT FALSE,
		is_mentoring BOOLEAN NOT NULL DEFAULT FALSE,
		is_paid_license BOOLEAN NOT NULL DEFAULT FALSE,
		is_sick_leave BOOLEAN NOT NULL DEFAULT FALSE,
		is_work_accident BOOLEAN NOT NULL DEFAULT FALSE,
		is_spp BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	-- Aggregation filters records by start date (hot path)
	CREATE INDEX IF NOT EXISTS idx_work_days_start_date
		ON work_days(start_date);

	-- One logged shift per calendar day
	CREATE UNIQUE INDEX IF NOT EXISTS idx_work_days_unique_day
		ON work_days(DATE(start_date));
	`

	_, err := s.db.Exec(schema)
	return err
}

const workDayColumns = `id, shift_name, start_date, end_date, saturation, extra_time,
	is_allowance, is_free_license, is_worked_holiday, is_special_worked_holiday,
	is_mentoring, is_paid_license, is_sick_leave, is_work_accident, is_spp`

// Save inserts the record, assigning an ID when it carries none. Saving an
// existing ID replaces the stored row.
func (s *Store) Save(ctx context.Context, record *workday.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	now := time.Now().UTC().Format(time.RFC3339)
	query := `
		INSERT INTO work_days
		(` + workDayColumns + `, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			shift_name = excluded.shift_name,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			saturation = excluded.saturation,
			extra_time = excluded.extra_time,
			is_allowance = excluded.is_allowance,
			is_free_license = excluded.is_free_license,
			is_worked_holiday = excluded.is_worked_holiday,
			is_special_worked_holiday = excluded.is_special_worked_holiday,
			is_mentoring = excluded.is_mentoring,
			is_paid_license = excluded.is_paid_license,
			is_sick_leave = excluded.is_sick_leave,
			is_work_accident = excluded.is_work_accident,
			is_spp = excluded.is_spp,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.ShiftName,
		record.StartDate.UTC().Format(time.RFC3339),
		record.EndDate.UTC().Format(time.RFC3339),
		nullFloat(record.Saturation),
		record.ExtraTime,
		record.IsAllowance,
		record.IsFreeLicense,
		record.IsWorkedHoliday,
		record.IsSpecialWorkedHoliday,
		record.IsMentoring,
		record.IsPaidLicense,
		record.IsSickLeave,
		record.IsWorkAccident,
		record.IsSPP,
		now,
		now,
	)
	if err != nil && strings.Contains(err.Error(), "idx_work_days_unique_day") {
		return workday.ErrDuplicateDay
	}
	return err
}

// Get returns the record with the given ID.
func (s *Store) Get(ctx context.Context, id string) (workday.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT `+workDayColumns+` FROM work_days WHERE id = ?`, id)

	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return workday.Record{}, workday.ErrRecordNotFound
	}
	return record, err
}

// Delete removes the record with the given ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM work_days WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return workday.ErrRecordNotFound
	}
	return nil
}

// ListRange returns records starting within [from, to], ascending.
func (s *Store) ListRange(ctx context.Context, from, to time.Time) ([]workday.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+workDayColumns+` FROM work_days
		 WHERE start_date >= ? AND start_date <= ?
		 ORDER BY start_date ASC`,
		from.UTC().Format(time.RFC3339),
		to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListAll returns every record, most recent first.
func (s *Store) ListAll(ctx context.Context) ([]workday.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+workDayColumns+` FROM work_days ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// =============================================================================
// SCANNING HELPERS
// =============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (workday.Record, error) {
	var (
		r          workday.Record
		start, end string
		saturation sql.NullFloat64
	)
	err := row.Scan(
		&r.ID,
		&r.ShiftName,
		&start,
		&end,
		&saturation,
		&r.ExtraTime,
		&r.IsAllowance,
		&r.IsFreeLicense,
		&r.IsWorkedHoliday,
		&r.IsSpecialWorkedHoliday,
		&r.IsMentoring,
		&r.IsPaidLicense,
		&r.IsSickLeave,
		&r.IsWorkAccident,
		&r.IsSPP,
	)
	if err != nil {
		return workday.Record{}, err
	}

	if r.StartDate, err = time.Parse(time.RFC3339, start); err != nil {
		return workday.Record{}, fmt.Errorf("corrupt start_date for record %s: %w", r.ID, err)
	}
	if r.EndDate, err = time.Parse(time.RFC3339, end); err != nil {
		return workday.Record{}, fmt.Errorf("corrupt end_date for record %s: %w", r.ID, err)
	}
	if saturation.Valid {
		r.Saturation = &saturation.Float64
	}
	return r, nil
}

func collectRecords(rows *sql.Rows) ([]workday.Record, error) {
	var records []workday.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
