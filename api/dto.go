/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/railops/shift-engine/catalogue"
	"github.com/railops/shift-engine/payroll"
	"github.com/railops/shift-engine/workday"
)

// =============================================================================
// CATALOGUE TYPES
// =============================================================================

// ShiftDTO represents one roster entry in API responses.
type ShiftDTO struct {
	Name       string   `json:"name"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	Minutes    int      `json:"minutes"`
	Saturation *float64 `json:"saturation,omitempty"`
	Type       string   `json:"type"`
	Color      string   `json:"color"`
}

// VersionDTO represents a roster version in API responses.
type VersionDTO struct {
	ValidFrom string     `json:"valid_from"`
	Role      string     `json:"role"`
	Location  string     `json:"location"`
	Shifts    []ShiftDTO `json:"shifts"`
}

func toShiftDTO(s catalogue.Shift) ShiftDTO {
	base := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	return ShiftDTO{
		Name:       s.Name,
		StartTime:  base.Add(s.Start).Format("15:04"),
		EndTime:    base.Add(s.End()).Format("15:04"),
		Minutes:    int(s.Duration / time.Minute),
		Saturation: s.Saturation,
		Type:       string(s.Type()),
		Color:      s.Type().ColorTag(),
	}
}

func toVersionDTO(v catalogue.Version) VersionDTO {
	shifts := make([]ShiftDTO, len(v.Shifts))
	for i, s := range v.Shifts {
		shifts[i] = toShiftDTO(s)
	}
	return VersionDTO{
		ValidFrom: v.ValidFrom.Format("2006-01-02"),
		Role:      string(v.Role),
		Location:  string(v.Location),
		Shifts:    shifts,
	}
}

// =============================================================================
// RECORD TYPES
// =============================================================================

// RecordDTO represents a logged work day, including its derived facts.
type RecordDTO struct {
	ID         string   `json:"id"`
	ShiftName  string   `json:"shift_name"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Saturation *float64 `json:"saturation,omitempty"`
	ExtraTime  int      `json:"extra_time"`

	IsAllowance            bool `json:"is_allowance"`
	IsFreeLicense          bool `json:"is_free_license"`
	IsWorkedHoliday        bool `json:"is_worked_holiday"`
	IsSpecialWorkedHoliday bool `json:"is_special_worked_holiday"`
	IsMentoring            bool `json:"is_mentoring"`
	IsPaidLicense          bool `json:"is_paid_license"`
	IsSickLeave            bool `json:"is_sick_leave"`
	IsWorkAccident         bool `json:"is_work_accident"`
	IsSPP                  bool `json:"is_spp"`

	// Derived facts
	Type         string  `json:"type"`
	Color        string  `json:"color"`
	Span         string  `json:"span"`
	WorkingHours string  `json:"working_hours"`
	NightTime    string  `json:"night_time,omitempty"`
	WorkedHours  float64 `json:"worked_hours"`
	IsStandard   bool    `json:"is_standard_shift"`
}

// SaveRecordRequest is the request to create or update a record. Boolean
// flags are pointers so "not sent" is distinguishable from "false";
// IsAllowance in particular is defaulted from the shift's depot when absent.
type SaveRecordRequest struct {
	ShiftName  string   `json:"shift_name"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Saturation *float64 `json:"saturation,omitempty"`
	ExtraTime  int      `json:"extra_time"`

	IsAllowance            *bool `json:"is_allowance,omitempty"`
	IsFreeLicense          bool  `json:"is_free_license"`
	IsWorkedHoliday        bool  `json:"is_worked_holiday"`
	IsSpecialWorkedHoliday bool  `json:"is_special_worked_holiday"`
	IsMentoring            bool  `json:"is_mentoring"`
	IsPaidLicense          bool  `json:"is_paid_license"`
	IsSickLeave            bool  `json:"is_sick_leave"`
	IsWorkAccident         bool  `json:"is_work_accident"`
	IsSPP                  bool  `json:"is_spp"`
}

// =============================================================================
// SUMMARY TYPES
// =============================================================================

// TypeBreakdownDTO is one shift bucket's worked hours and day count.
type TypeBreakdownDTO struct {
	Type  string  `json:"type"`
	Hours float64 `json:"hours"`
	Days  int     `json:"days"`
}

// SummaryDTO represents a month or year aggregate in API responses.
type SummaryDTO struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	WorkedHours           float64            `json:"worked_hours"`
	WorkedDays            int                `json:"worked_days"`
	NightTimeHours        float64            `json:"night_time_hours"`
	Saturation            float64            `json:"saturation"`
	SnackBreakCount       int                `json:"snack_break_count"`
	SundaysOrHolidays     int                `json:"sundays_or_holidays"`
	Saturdays             int                `json:"saturdays"`
	ExtraTimeHours        float64            `json:"extra_time_hours"`
	SPPHours              float64            `json:"spp_hours"`
	AllowanceDays         int                `json:"allowance_days"`
	AllowanceCompensation string             `json:"allowance_compensation"`
	SpecialHolidayCount   int                `json:"special_holiday_count"`
	ByType                []TypeBreakdownDTO `json:"by_type"`
}

func toSummaryDTO(s payroll.Summary) SummaryDTO {
	byType := make([]TypeBreakdownDTO, 0, len(catalogue.AllShiftTypes))
	for _, t := range catalogue.AllShiftTypes {
		b := s.ByType[t]
		byType = append(byType, TypeBreakdownDTO{Type: string(t), Hours: b.Hours, Days: b.Days})
	}
	return SummaryDTO{
		PeriodStart:           s.Period.Start.Format("2006-01-02"),
		PeriodEnd:             s.Period.End.Format("2006-01-02"),
		WorkedHours:           s.WorkedHours,
		WorkedDays:            s.WorkedDays,
		NightTimeHours:        s.NightTimeHours,
		Saturation:            s.Saturation,
		SnackBreakCount:       s.SnackBreakCount,
		SundaysOrHolidays:     s.SundaysOrHolidays,
		Saturdays:             s.Saturdays,
		ExtraTimeHours:        s.ExtraTimeHours,
		SPPHours:              s.SPPHours,
		AllowanceDays:         s.AllowanceDays,
		AllowanceCompensation: s.AllowanceCompensation.StringFixed(2),
		SpecialHolidayCount:   s.SpecialHolidayCount,
		ByType:                byType,
	}
}

// =============================================================================
// CHART TYPES
// =============================================================================

// MonthHoursDTO is one bar of the worked-hours-by-month chart.
type MonthHoursDTO struct {
	Month int     `json:"month"`
	Hours float64 `json:"hours"`
}

// TypeHoursDTO is one slice of the hours-by-type chart.
type TypeHoursDTO struct {
	Type  string  `json:"type"`
	Hours float64 `json:"hours"`
}

// ComparisonDTO is the year-over-year worked-hours comparison.
type ComparisonDTO struct {
	Year          int     `json:"year"`
	Hours         float64 `json:"hours"`
	PreviousYear  int     `json:"previous_year"`
	PreviousHours float64 `json:"previous_hours"`
	Difference    float64 `json:"difference"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (h *Handler) toRecordDTO(r workday.Record) RecordDTO {
	return RecordDTO{
		ID:                     r.ID,
		ShiftName:              r.ShiftName,
		StartDate:              r.StartDate.Format(time.RFC3339),
		EndDate:                r.EndDate.Format(time.RFC3339),
		Saturation:             r.Saturation,
		ExtraTime:              r.ExtraTime,
		IsAllowance:            r.IsAllowance,
		IsFreeLicense:          r.IsFreeLicense,
		IsWorkedHoliday:        r.IsWorkedHoliday,
		IsSpecialWorkedHoliday: r.IsSpecialWorkedHoliday,
		IsMentoring:            r.IsMentoring,
		IsPaidLicense:          r.IsPaidLicense,
		IsSickLeave:            r.IsSickLeave,
		IsWorkAccident:         r.IsWorkAccident,
		IsSPP:                  r.IsSPP,
		Type:                   string(r.TypeOfShift()),
		Color:                  r.ColorTag(),
		Span:                   r.Span(),
		WorkingHours:           r.WorkingHours(),
		NightTime:              r.NightTimeString(),
		WorkedHours:            r.WorkedHours(h.Catalogue, h.Operator.Role),
		IsStandard:             r.IsStandardShift(),
	}
}
