package workday_test

import (
	"testing"
	"time"

	"github.com/railops/shift-engine/catalogue"
	"github.com/railops/shift-engine/workday"
	"github.com/stretchr/testify/assert"
)

func onDay(hour, min int) time.Time {
	return time.Date(2024, time.October, 7, hour, min, 0, 0, time.UTC)
}

func onNextDay(hour, min int) time.Time {
	return time.Date(2024, time.October, 8, hour, min, 0, 0, time.UTC)
}

func record(start, end time.Time) workday.Record {
	return workday.Record{ShiftName: "1", StartDate: start, EndDate: end}
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestValidate(t *testing.T) {
	assert.NoError(t, record(onDay(5, 20), onDay(13, 54)).Validate())

	err := record(onDay(13, 54), onDay(5, 20)).Validate()
	assert.ErrorIs(t, err, workday.ErrInvalidRecord)

	missing := workday.Record{StartDate: onDay(5, 20), EndDate: onDay(13, 54)}
	assert.ErrorIs(t, missing.Validate(), workday.ErrInvalidRecord)
}

// =============================================================================
// WORKED HOURS
// =============================================================================

func TestWorkedHours_RegularDay(t *testing.T) {
	cat := catalogue.Default()

	// GIVEN: an 8h34m span, no overtime
	r := record(onDay(5, 20), onDay(13, 54))

	// THEN: 514 minutes round to 8.57 hours
	assert.Equal(t, 8.57, r.WorkedHours(cat, catalogue.RoleDriver))
}

func TestWorkedHours_ExtraTimeDoesNotCount(t *testing.T) {
	cat := catalogue.Default()

	// GIVEN: the span already includes 30 overtime minutes
	r := record(onDay(5, 20), onDay(14, 24))
	r.ExtraTime = 30

	// THEN: worked hours cover the scheduled span only
	assert.Equal(t, 8.57, r.WorkedHours(cat, catalogue.RoleDriver))
}

func TestWorkedHours_ReserveDayIsZero(t *testing.T) {
	cat := catalogue.Default()

	r := record(onDay(5, 20), onDay(13, 54))
	r.IsSPP = true

	assert.Equal(t, 0.0, r.WorkedHours(cat, catalogue.RoleDriver))
}

func TestWorkedHours_SickDayCreditsStandardShift(t *testing.T) {
	cat := catalogue.Default()

	// GIVEN: a sick day recorded with an arbitrary span
	r := record(onDay(5, 20), onDay(13, 54))
	r.IsSickLeave = true

	// THEN: the standard shift in force that day (468 minutes) is credited
	assert.Equal(t, 7.8, r.WorkedHours(cat, catalogue.RoleDriver))
}

func TestSPPMinutes(t *testing.T) {
	r := record(onDay(7, 0), onDay(14, 48))
	assert.Equal(t, 0, r.SPPMinutes())

	r.IsSPP = true
	assert.Equal(t, 468, r.SPPMinutes())
}

// =============================================================================
// NIGHT TIME
// =============================================================================

func TestNightTime_ExtraTimeExtendsTheSpan(t *testing.T) {
	// GIVEN: a shift ending at 21:45 plus 30 overtime minutes
	r := record(onDay(13, 52), onDay(21, 45))
	r.ExtraTime = 30

	// THEN: the extended span reaches 22:15, 15 minutes inside the window
	assert.Equal(t, 15*time.Minute, r.NightTime())
}

func TestNightTime_Overnight(t *testing.T) {
	r := record(onDay(23, 30), onNextDay(5, 30))

	assert.Equal(t, 6*time.Hour, r.NightTime())
}

func TestNightTime_DegenerateSpanIsZero(t *testing.T) {
	// An edited record can end up with end before start. The derived fact
	// degrades to zero rather than failing.
	r := record(onDay(13, 0), onDay(5, 0))

	assert.Equal(t, time.Duration(0), r.NightTime())
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

func TestTypeOfShift_Morning(t *testing.T) {
	r := record(onDay(5, 20), onDay(13, 54))

	assert.Equal(t, catalogue.Morning, r.TypeOfShift())
}

func TestTypeOfShift_Noon(t *testing.T) {
	r := record(onDay(11, 52), onDay(19, 36))

	assert.Equal(t, catalogue.Noon, r.TypeOfShift())
}

func TestTypeOfShift_Afternoon(t *testing.T) {
	r := record(onDay(14, 45), onDay(23, 16))

	assert.Equal(t, catalogue.Afternoon, r.TypeOfShift())
}

func TestTypeOfShift_BeforeFourAMFallsToAfternoon(t *testing.T) {
	// GIVEN: a span that would read as morning by clock times alone, but
	// starting at 03:30
	r := record(onDay(3, 30), onDay(11, 0))

	// THEN: the early-start bound pushes it to afternoon
	assert.Equal(t, catalogue.Afternoon, r.TypeOfShift())
}

func TestTypeOfShift_EndBoundaryBelongsToStartDay(t *testing.T) {
	// GIVEN: an overnight record; the 15:45 boundary is taken on the start
	// date's day, so the end is far past it
	r := record(onDay(12, 0), onNextDay(1, 0))

	assert.Equal(t, catalogue.Noon, r.TypeOfShift())
}

func TestColorTag(t *testing.T) {
	assert.Equal(t, "yellow", record(onDay(5, 20), onDay(13, 54)).ColorTag())
}

// =============================================================================
// DERIVED FLAGS AND DISPLAY
// =============================================================================

func TestIsStandardShift(t *testing.T) {
	r := record(onDay(7, 0), onDay(14, 49))
	assert.False(t, r.IsStandardShift())

	r.ShiftName = "STDR"
	assert.True(t, r.IsStandardShift())
}

func TestDisplayHelpers(t *testing.T) {
	r := record(onDay(5, 27), onDay(13, 36))
	r.ExtraTime = 24

	assert.Equal(t, "De 05:27 a 13:36", r.Span())
	assert.Equal(t, "8h 33m", r.WorkingHours())
	assert.Equal(t, "33m", r.NightTimeString())
}

func TestNightTimeString_EmptyWhenNone(t *testing.T) {
	r := record(onDay(9, 0), onDay(17, 0))

	assert.Equal(t, "", r.NightTimeString())
}
