package payroll

import (
	"time"

	"github.com/railops/shift-engine/catalogue"
	"github.com/railops/shift-engine/temporal"
	"github.com/railops/shift-engine/workday"
)

// =============================================================================
// CHART DATA - Yearly breakdowns for the host's charts
// =============================================================================

// MonthHours is one bar of the worked-hours-by-month chart.
type MonthHours struct {
	Month time.Month
	Hours float64
}

// MonthlyWorkedHours returns the worked-hours total of each month of the
// year that has at least one record, in month order.
func (a *Aggregator) MonthlyWorkedHours(records []workday.Record, year int) []MonthHours {
	totals := make(map[time.Month]float64)
	for _, r := range records {
		if r.StartDate.Year() != year {
			continue
		}
		totals[r.StartDate.Month()] += r.WorkedHours(a.Catalogue, a.Role)
	}

	var out []MonthHours
	for m := time.January; m <= time.December; m++ {
		if hours, ok := totals[m]; ok {
			out = append(out, MonthHours{Month: m, Hours: hours})
		}
	}
	return out
}

// TypeHours is one slice of the hours-by-shift-bucket chart.
type TypeHours struct {
	Type  catalogue.ShiftType
	Hours float64
}

// HoursByType returns the worked-hours total per shift bucket over the
// year's records, one entry per bucket in day order.
func (a *Aggregator) HoursByType(records []workday.Record, year int) []TypeHours {
	period := temporal.YearOf(time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC))
	inYear := filter(records, func(r workday.Record) bool {
		return period.Contains(r.StartDate)
	})

	out := make([]TypeHours, 0, len(catalogue.AllShiftTypes))
	for _, t := range catalogue.AllShiftTypes {
		hours, _ := a.RecordsByType(inYear, t)
		out = append(out, TypeHours{Type: t, Hours: hours})
	}
	return out
}

// =============================================================================
// YEAR-OVER-YEAR COMPARISON
// =============================================================================

// AnnualComparison sets a year's worked hours against the previous year's
// total. The previous year's figure is supplied by the caller; records that
// old are usually not in the store.
type AnnualComparison struct {
	Year          int
	Hours         float64
	PreviousYear  int
	PreviousHours float64
	Difference    float64
}

// CompareYears builds the year-over-year comparison for the given year.
func (a *Aggregator) CompareYears(records []workday.Record, year int, previousYearHours float64) AnnualComparison {
	ref := time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	current := a.YearSummary(records, ref)

	return AnnualComparison{
		Year:          year,
		Hours:         current.WorkedHours,
		PreviousYear:  year - 1,
		PreviousHours: previousYearHours,
		Difference:    current.WorkedHours - previousYearHours,
	}
}
