/*
Package temporal provides the time arithmetic the shift engine is built on.

PURPOSE:
  Every payroll figure in this system is ultimately a question about clock
  times and intervals: how much of a shift overlaps the nightly window, which
  calendar month a record belongs to, how many hours a count of minutes is
  worth on a payslip. This package answers those questions with pure
  functions so the higher layers (catalogue, workday, payroll) never touch
  raw time arithmetic directly.

KEY CONCEPTS IN THIS FILE (temporal.go):
  - ClockOffset: a time-of-day as an offset from midnight
  - DayBoundary: anchor a clock time onto a specific calendar day
  - Overlap: standard interval intersection
  - MinutesToHours: payroll rounding (2 decimals, half away from zero)
  - Period: closed [Start, End] range used by the aggregation filters

DESIGN PRINCIPLES:
  1. Purity: no I/O, no globals, no clock reads
  2. Precision: decimal arithmetic for anything that lands on a payslip
  3. Totality: out-of-range inputs degrade to out-of-range values, never panic

SEE ALSO:
  - night.go: the 22:00-06:00 nightly window calculator
*/
package temporal

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CLOCK OFFSETS - Time-of-day as a duration from midnight
// =============================================================================

// ClockOffset converts a clock time to an offset from midnight.
// Values outside 0-23/0-59 produce out-of-range offsets rather than failing.
func ClockOffset(hour, minute int) time.Duration {
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute
}

// DayBoundary returns the instant at the given clock time on date's calendar
// day, in date's location.
func DayBoundary(date time.Time, hour, minute, second int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, second, 0, date.Location())
}

// StartOfDay returns midnight of date's calendar day.
func StartOfDay(date time.Time) time.Time {
	return DayBoundary(date, 0, 0, 0)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// =============================================================================
// INTERVAL INTERSECTION
// =============================================================================

// Overlap returns the duration shared by [aStart, aEnd) and [bStart, bEnd).
// Disjoint intervals yield 0; the result is never negative.
func Overlap(aStart, aEnd, bStart, bEnd time.Time) time.Duration {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

// =============================================================================
// FORMATTING & CONVERSION
// =============================================================================

// DurationString formats a duration as an abbreviated day/hour/minute
// breakdown, e.g. "1d 2h 5m", "7h 49m", "45m". Non-positive durations
// format to the empty string.
func DurationString(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	d = d.Round(time.Minute)
	days := d / (24 * time.Hour)
	hours := (d % (24 * time.Hour)) / time.Hour
	minutes := (d % time.Hour) / time.Minute

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	return strings.Join(parts, " ")
}

// MinutesToHours converts minutes to hours rounded to 2 decimal places,
// half away from zero. This is the payslip rounding rule; decimal arithmetic
// keeps 468 minutes at exactly 7.8 rather than a float artifact.
func MinutesToHours(minutes int) float64 {
	hours := decimal.NewFromInt(int64(minutes)).
		Div(decimal.NewFromInt(60)).
		Round(2)
	f, _ := hours.Float64()
	return f
}
