/*
Package payroll folds work-day records into the figures a payslip is built
from.

PURPOSE:
  Pure read-side computation: given a list of records and a reference date,
  produce the month and year totals. Nothing here mutates or caches; every
  call recomputes from its inputs, so results can never go stale against an
  edited record or a revised roster.

EXCLUSION RULES:
  - Reserve (SPP) records are excluded from ordinary worked-hours totals and
    accounted separately as SPP hours.
  - Sick-leave and work-accident records are further excluded from every
    indemnity figure (night time, saturation, snack breaks, weekend and
    holiday counts, allowances, extra time).

MONEY:
  The allowance compensation is money; it is computed with decimal
  arithmetic and only converted to float at the presentation edge.

SEE ALSO:
  - workday: per-record derived facts the sums are built from
  - catalogue: roster lookups for sick-day crediting
*/
package payroll

import (
	"time"

	"github.com/railops/shift-engine/catalogue"
	"github.com/railops/shift-engine/temporal"
	"github.com/railops/shift-engine/workday"
	"github.com/shopspring/decimal"
)

// AllowanceDayValue is the fixed compensation per allowance day.
var AllowanceDayValue = decimal.RequireFromString("0.95")

// Aggregator computes payroll summaries for one operator. The role is an
// explicit dependency: sick-day crediting resolves the standard shift for
// the operator's role.
type Aggregator struct {
	Catalogue *catalogue.Catalogue
	Role      catalogue.Role
}

func New(cat *catalogue.Catalogue, role catalogue.Role) *Aggregator {
	return &Aggregator{Catalogue: cat, Role: role}
}

// =============================================================================
// SUMMARIES
// =============================================================================

// TypeBreakdown is the worked-hours total and day count for one shift bucket.
type TypeBreakdown struct {
	Hours float64
	Days  int
}

// Summary is the aggregate view of one period. All figures total over an
// empty record list.
type Summary struct {
	Period temporal.Period

	// Worked time over ordinary (non-reserve) records.
	WorkedHours float64
	WorkedDays  int

	// Indemnity figures, sick and accident records excluded.
	NightTimeHours        float64
	Saturation            float64
	SnackBreakCount       int
	SundaysOrHolidays     int
	Saturdays             int
	ExtraTimeHours        float64
	AllowanceDays         int
	AllowanceCompensation decimal.Decimal
	SpecialHolidayCount   int

	// Reserve time, accounted apart from worked hours.
	SPPHours float64

	// Worked hours and day counts per shift bucket, over every record in
	// the period.
	ByType map[catalogue.ShiftType]TypeBreakdown
}

// MonthSummary aggregates the records of ref's calendar month.
func (a *Aggregator) MonthSummary(records []workday.Record, ref time.Time) Summary {
	return a.summarize(records, temporal.MonthOf(ref))
}

// YearSummary aggregates the records of ref's calendar year.
func (a *Aggregator) YearSummary(records []workday.Record, ref time.Time) Summary {
	return a.summarize(records, temporal.YearOf(ref))
}

func (a *Aggregator) summarize(records []workday.Record, period temporal.Period) Summary {
	inPeriod := filter(records, func(r workday.Record) bool {
		return period.Contains(r.StartDate)
	})
	ordinary := filter(inPeriod, func(r workday.Record) bool { return !r.IsSPP })
	notSick := filter(ordinary, func(r workday.Record) bool {
		return !r.IsSickLeave && !r.IsWorkAccident
	})

	s := Summary{
		Period:     period,
		WorkedDays: len(inPeriod),
		ByType:     make(map[catalogue.ShiftType]TypeBreakdown, len(catalogue.AllShiftTypes)),
	}

	for _, r := range ordinary {
		s.WorkedHours += r.WorkedHours(a.Catalogue, a.Role)
	}

	var nightSeconds float64
	var extraMinutes int
	for _, r := range notSick {
		nightSeconds += r.NightTime().Seconds()
		if r.Saturation != nil {
			s.Saturation += *r.Saturation
		}
		if !r.IsStandardShift() {
			s.SnackBreakCount++
		}
		if r.IsWorkedHoliday || r.StartDate.Weekday() == time.Sunday {
			s.SundaysOrHolidays++
		}
		if r.StartDate.Weekday() == time.Saturday {
			s.Saturdays++
		}
		if r.IsAllowance {
			s.AllowanceDays++
		}
		if r.IsSpecialWorkedHoliday {
			s.SpecialHolidayCount++
		}
		extraMinutes += r.ExtraTime
	}
	s.NightTimeHours = nightSeconds / 3600
	s.ExtraTimeHours = temporal.MinutesToHours(extraMinutes)
	s.AllowanceCompensation = AllowanceDayValue.Mul(decimal.NewFromInt(int64(s.AllowanceDays)))

	var sppMinutes int
	for _, r := range inPeriod {
		sppMinutes += r.SPPMinutes()
	}
	s.SPPHours = temporal.MinutesToHours(sppMinutes)

	for _, t := range catalogue.AllShiftTypes {
		hours, days := a.RecordsByType(inPeriod, t)
		s.ByType[t] = TypeBreakdown{Hours: hours, Days: days}
	}

	return s
}

// RecordsByType returns the worked-hours total and count of the records
// classified into the given bucket.
func (a *Aggregator) RecordsByType(records []workday.Record, t catalogue.ShiftType) (float64, int) {
	var hours float64
	var days int
	for _, r := range records {
		if r.TypeOfShift() != t {
			continue
		}
		hours += r.WorkedHours(a.Catalogue, a.Role)
		days++
	}
	return hours, days
}

func filter(records []workday.Record, keep func(workday.Record) bool) []workday.Record {
	var out []workday.Record
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
