// Package store provides the in-memory Store implementation.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/railops/shift-engine/temporal"
	"github.com/railops/shift-engine/workday"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory keeps records ordered by start date ascending.
type Memory struct {
	mu      sync.RWMutex
	records []workday.Record
}

func NewMemory() *Memory {
	return &Memory{}
}

var _ workday.Store = (*Memory)(nil)

// Save inserts the record, assigning an ID when it carries none. Saving an
// existing ID replaces the stored record. One record per calendar day.
func (m *Memory) Save(_ context.Context, record *workday.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.records {
		if r.ID != record.ID && temporal.SameDay(r.StartDate, record.StartDate) {
			return workday.ErrDuplicateDay
		}
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	} else {
		m.deleteLocked(record.ID)
	}

	// Binary search for insertion point keeps the slice sorted without a
	// full re-sort on every save.
	i := sort.Search(len(m.records), func(i int) bool {
		return m.records[i].StartDate.After(record.StartDate)
	})
	m.records = append(m.records, workday.Record{})
	copy(m.records[i+1:], m.records[i:])
	m.records[i] = *record
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (workday.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return workday.Record{}, workday.ErrRecordNotFound
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.deleteLocked(id) {
		return workday.ErrRecordNotFound
	}
	return nil
}

func (m *Memory) deleteLocked(id string) bool {
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return true
		}
	}
	return false
}

// ListRange returns records starting within [from, to], ascending.
func (m *Memory) ListRange(_ context.Context, from, to time.Time) ([]workday.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	period := temporal.Period{Start: from, End: to}
	var result []workday.Record
	for _, r := range m.records {
		if period.Contains(r.StartDate) {
			result = append(result, r)
		}
	}
	return result, nil
}

// ListAll returns every record, most recent first.
func (m *Memory) ListAll(_ context.Context) ([]workday.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]workday.Record, len(m.records))
	for i, r := range m.records {
		result[len(m.records)-1-i] = r
	}
	return result, nil
}

func (m *Memory) Close() error { return nil }
