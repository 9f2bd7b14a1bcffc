package temporal

import "time"

// =============================================================================
// PERIOD - Closed calendar range for aggregation filters
// =============================================================================

// Period is a closed [Start, End] range. Payroll aggregation always filters
// records against a period, never against a single instant.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t is within the period, inclusive on both ends.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// String returns a readable representation for logs and errors.
func (p Period) String() string {
	return "[" + p.Start.Format("2006-01-02") + ", " + p.End.Format("2006-01-02") + "]"
}

// MonthOf returns the period covering date's calendar month, from the first
// day at 00:00:00 to the last day at 23:59:59.
func MonthOf(date time.Time) Period {
	y, m, _ := date.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return Period{Start: start, End: end}
}

// YearOf returns the period covering date's calendar year.
func YearOf(date time.Time) Period {
	start := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), time.December, 31, 23, 59, 59, 0, date.Location())
	return Period{Start: start, End: end}
}
