package workday

import (
	"context"
	"errors"
	"time"
)

// =============================================================================
// STORE - Record persistence interface
// =============================================================================

var (
	// ErrRecordNotFound is returned when no record exists for an ID.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateDay is returned when saving a record whose start falls on
	// a calendar day another record already covers. One logged shift per day.
	ErrDuplicateDay = errors.New("a record already exists for that day")
)

// Store persists records. Implementations assign an ID on save when the
// record carries none and must be safe for concurrent use.
type Store interface {
	// Save inserts or, when the ID matches an existing record, replaces.
	Save(ctx context.Context, record *Record) error

	// Get returns the record with the given ID.
	Get(ctx context.Context, id string) (Record, error)

	// Delete removes the record with the given ID.
	Delete(ctx context.Context, id string) error

	// ListRange returns records whose start falls in [from, to], ordered
	// by start date ascending.
	ListRange(ctx context.Context, from, to time.Time) ([]Record, error)

	// ListAll returns every record ordered by start date descending.
	ListAll(ctx context.Context) ([]Record, error)

	Close() error
}
