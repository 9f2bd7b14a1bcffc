/*
Package workday defines the operator's recorded shifts and the facts payroll
derives from them.

PURPOSE:
  A Record is what the operator actually logged for one day: which roster
  shift it was, the real start and end instants, and the payroll flags
  (holiday, sick leave, allowance, and so on). Everything payroll needs is
  derived from the record on demand; nothing derived is stored.

KEY CONCEPTS:
  - Record: one logged shift with its flags
  - Derived facts: worked hours, night time, reserve (SPP) minutes, shift
    bucket, all computed against the roster catalogue
  - Store: persistence interface, with in-memory and SQLite implementations

DERIVATION RULES:
  Worked hours: reserve days count 0, sick days count the standard shift
  length, everything else counts the recorded span minus extra time.
  Night time: computed over the span extended by extra time.
  Extra time widens the night-time span but never the worked hours.

SEE ALSO:
  - catalogue: roster resolution and shift classification
  - payroll: monthly and yearly aggregation over records
*/
package workday

import (
	"errors"
	"fmt"
	"time"

	"github.com/railops/shift-engine/catalogue"
	"github.com/railops/shift-engine/temporal"
)

// =============================================================================
// RECORD
// =============================================================================

// Record is one logged work day. ShiftName is a soft reference into the
// roster catalogue: deleting a roster entry never invalidates a record,
// lookups just come back empty.
type Record struct {
	ID        string
	ShiftName string
	StartDate time.Time
	EndDate   time.Time

	// Saturation as logged for the day; nil when the operator kept the
	// roster's published value or none exists.
	Saturation *float64

	// ExtraTime is overtime in whole minutes appended after EndDate.
	ExtraTime int

	IsAllowance            bool
	IsFreeLicense          bool
	IsWorkedHoliday        bool
	IsSpecialWorkedHoliday bool
	IsMentoring            bool
	IsPaidLicense          bool
	IsSickLeave            bool
	IsWorkAccident         bool
	IsSPP                  bool
}

// ErrInvalidRecord is returned by Validate for records that cannot be
// reasoned about.
var ErrInvalidRecord = errors.New("invalid record")

// Validate checks the record's structural invariants.
func (r Record) Validate() error {
	if r.ShiftName == "" {
		return fmt.Errorf("%w: shift name is required", ErrInvalidRecord)
	}
	if !r.StartDate.Before(r.EndDate) {
		return fmt.Errorf("%w: start %s is not before end %s",
			ErrInvalidRecord, r.StartDate.Format(time.RFC3339), r.EndDate.Format(time.RFC3339))
	}
	return nil
}

// =============================================================================
// DERIVED FACTS
// =============================================================================

// elapsedMinutes is the recorded span in whole minutes, extra time excluded.
func (r Record) elapsedMinutes() int {
	return int(r.EndDate.Sub(r.StartDate) / time.Minute)
}

// extraTimeDuration converts the overtime minutes to a duration.
func (r Record) extraTimeDuration() time.Duration {
	return time.Duration(r.ExtraTime) * time.Minute
}

// WorkedHours returns the day's contribution to the worked-hours totals.
// Reserve (SPP) days contribute nothing. Sick days are credited the standard
// shift length in force on the day. All other days count the recorded span;
// extra time is excluded, it is paid separately and never counts as worked
// time.
func (r Record) WorkedHours(cat *catalogue.Catalogue, role catalogue.Role) float64 {
	switch {
	case r.IsSPP:
		return 0
	case r.IsSickLeave:
		return temporal.MinutesToHours(cat.StandardShiftMinutes(role, r.StartDate))
	default:
		return temporal.MinutesToHours(r.elapsedMinutes() - r.ExtraTime)
	}
}

// SPPMinutes returns the recorded span in minutes for reserve days, 0
// otherwise.
func (r Record) SPPMinutes() int {
	if !r.IsSPP {
		return 0
	}
	return r.elapsedMinutes()
}

// NightTime returns the portion of the day inside the nightly window,
// measured over the span extended by extra time. A record whose extended
// span is degenerate contributes zero.
func (r Record) NightTime() time.Duration {
	end := r.EndDate.Add(r.extraTimeDuration())
	night, err := temporal.NightTime(r.StartDate, end)
	if err != nil {
		return 0
	}
	return night
}

// IsStandardShift reports whether the record logs the standard shift.
func (r Record) IsStandardShift() bool {
	return r.ShiftName == catalogue.StandardShiftName
}

// Record-level classification boundaries, anchored on the record's own day.
const morningEarliestHour = 4

// TypeOfShift buckets the record by its real clock times. Unlike the roster
// classification, a morning record must also start after 04:00 on its own
// day; anything logged earlier falls through to afternoon. All boundaries
// are taken on the start date's calendar day, including the one the end is
// compared against.
func (r Record) TypeOfShift() catalogue.ShiftType {
	earliest := temporal.DayBoundary(r.StartDate, morningEarliestHour, 0, 0)
	startCutoff := temporal.DayBoundary(r.StartDate, 12, 30, 0)
	endCutoff := temporal.DayBoundary(r.StartDate, 15, 45, 0)

	switch {
	case r.StartDate.After(earliest) && r.StartDate.Before(startCutoff) && r.EndDate.Before(endCutoff):
		return catalogue.Morning
	case r.StartDate.Before(startCutoff) && r.EndDate.After(endCutoff):
		return catalogue.Noon
	default:
		return catalogue.Afternoon
	}
}

// ColorTag returns the UI color of the record's bucket.
func (r Record) ColorTag() string {
	return r.TypeOfShift().ColorTag()
}

// =============================================================================
// DISPLAY HELPERS
// =============================================================================

// Span renders the recorded clock span, e.g. "De 05:27 a 13:36".
func (r Record) Span() string {
	return fmt.Sprintf("De %s a %s", r.StartDate.Format("15:04"), r.EndDate.Format("15:04"))
}

// WorkingHours renders the extended span length, e.g. "8h 9m".
func (r Record) WorkingHours() string {
	return temporal.DurationString(r.EndDate.Add(r.extraTimeDuration()).Sub(r.StartDate))
}

// NightTimeString renders the night-time portion, "" when there is none.
func (r Record) NightTimeString() string {
	return temporal.DurationString(r.NightTime())
}
