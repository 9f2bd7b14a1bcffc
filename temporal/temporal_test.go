package temporal_test

import (
	"testing"
	"time"

	"github.com/railops/shift-engine/temporal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2025, time.March, 10, hour, min, 0, 0, time.UTC)
}

func nextDay(hour, min int) time.Time {
	return time.Date(2025, time.March, 11, hour, min, 0, 0, time.UTC)
}

// =============================================================================
// CLOCK OFFSETS & BOUNDARIES
// =============================================================================

func TestClockOffset(t *testing.T) {
	assert.Equal(t, 5*time.Hour+27*time.Minute, temporal.ClockOffset(5, 27))
	assert.Equal(t, time.Duration(0), temporal.ClockOffset(0, 0))

	// Out-of-range inputs degrade to out-of-range offsets, no failure.
	assert.Equal(t, 25*time.Hour, temporal.ClockOffset(25, 0))
}

func TestDayBoundary_KeepsCalendarDay(t *testing.T) {
	date := time.Date(2025, time.March, 10, 18, 42, 11, 0, time.UTC)
	b := temporal.DayBoundary(date, 6, 0, 0)

	assert.Equal(t, time.Date(2025, time.March, 10, 6, 0, 0, 0, time.UTC), b)
}

// =============================================================================
// OVERLAP
// =============================================================================

func TestOverlap_Disjoint_IsZero(t *testing.T) {
	assert.Equal(t, time.Duration(0),
		temporal.Overlap(at(5, 0), at(6, 0), at(7, 0), at(8, 0)))
}

func TestOverlap_Commutative(t *testing.T) {
	a := temporal.Overlap(at(5, 0), at(13, 0), at(10, 0), at(23, 0))
	b := temporal.Overlap(at(10, 0), at(23, 0), at(5, 0), at(13, 0))

	assert.Equal(t, a, b)
	assert.Equal(t, 3*time.Hour, a)
}

func TestOverlap_SelfIntersection_IsDuration(t *testing.T) {
	assert.Equal(t, 8*time.Hour,
		temporal.Overlap(at(5, 0), at(13, 0), at(5, 0), at(13, 0)))
}

// =============================================================================
// FORMATTING & CONVERSION
// =============================================================================

func TestDurationString(t *testing.T) {
	assert.Equal(t, "7h 49m", temporal.DurationString(7*time.Hour+49*time.Minute))
	assert.Equal(t, "1d 2h 5m", temporal.DurationString(26*time.Hour+5*time.Minute))
	assert.Equal(t, "45m", temporal.DurationString(45*time.Minute))
	assert.Equal(t, "6h", temporal.DurationString(6*time.Hour))
	assert.Equal(t, "", temporal.DurationString(0))
	assert.Equal(t, "", temporal.DurationString(-time.Hour))
}

func TestMinutesToHours(t *testing.T) {
	assert.Equal(t, 1.5, temporal.MinutesToHours(90))
	assert.Equal(t, 0.0, temporal.MinutesToHours(0))

	// 468 minutes is the 7h48m standard workday: exactly 7.8, no float noise.
	assert.Equal(t, 7.8, temporal.MinutesToHours(468))

	// Half away from zero: 50/60 = 0.8333 -> 0.83, 7/60 = 0.11666 -> 0.12.
	assert.Equal(t, 0.83, temporal.MinutesToHours(50))
	assert.Equal(t, 0.12, temporal.MinutesToHours(7))
}

// =============================================================================
// PERIODS
// =============================================================================

func TestPeriod_Contains_InclusiveBothEnds(t *testing.T) {
	p := temporal.MonthOf(at(12, 0))

	assert.True(t, p.Contains(p.Start))
	assert.True(t, p.Contains(p.End))
	assert.False(t, p.Contains(p.End.Add(time.Second)))
	assert.False(t, p.Contains(p.Start.Add(-time.Second)))
}

func TestMonthOf_CoversWholeMonth(t *testing.T) {
	p := temporal.MonthOf(time.Date(2025, time.February, 14, 9, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC), p.End)
}

func TestYearOf_CoversWholeYear(t *testing.T) {
	p := temporal.YearOf(at(12, 0))

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC), p.End)
}

// =============================================================================
// NIGHT-TIME CALCULATOR
// =============================================================================

func TestNightTime_MorningShift_CountsUntilDawn(t *testing.T) {
	// GIVEN: a shift from 05:00 to 13:00 (same day)
	// THEN: only 05:00-06:00 falls in the nightly window
	got, err := temporal.NightTime(at(5, 0), at(13, 0))

	require.NoError(t, err)
	assert.Equal(t, time.Hour, got)
}

func TestNightTime_EveningShift_CountsFromDusk(t *testing.T) {
	// GIVEN: a shift from 20:00 to 23:00 (same day)
	// THEN: only 22:00-23:00 counts
	got, err := temporal.NightTime(at(20, 0), at(23, 0))

	require.NoError(t, err)
	assert.Equal(t, time.Hour, got)
}

func TestNightTime_DaytimeShift_IsZero(t *testing.T) {
	got, err := temporal.NightTime(at(9, 0), at(17, 0))

	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), got)
}

func TestNightTime_OvernightAfterDusk_IsFullDuration(t *testing.T) {
	// GIVEN: a shift from 23:30 to 05:30 next day
	// THEN: the whole 6 hours are night time (it started after 22:00)
	got, err := temporal.NightTime(at(23, 30), nextDay(5, 30))

	require.NoError(t, err)
	assert.Equal(t, 6*time.Hour, got)
}

func TestNightTime_OvernightBeforeDusk_CountsFromDusk(t *testing.T) {
	// GIVEN: a shift from 19:16 to 01:02 next day
	// THEN: only the portion from 22:00 onward counts
	got, err := temporal.NightTime(at(19, 16), nextDay(1, 2))

	require.NoError(t, err)
	assert.Equal(t, 3*time.Hour+2*time.Minute, got)
}

func TestNightTime_InvalidInterval_Errors(t *testing.T) {
	_, err := temporal.NightTime(at(13, 0), at(5, 0))
	assert.ErrorIs(t, err, temporal.ErrInvalidInterval)

	_, err = temporal.NightTime(at(5, 0), at(5, 0))
	assert.ErrorIs(t, err, temporal.ErrInvalidInterval)
}
