/*
night.go - Nightly window overlap calculator

PURPOSE:
  Computes how much of a work interval falls inside the nightly window
  (22:00-06:00), the basis of the night-time indemnity. Rail shifts are
  always well under 24 hours, so the calculation handles exactly two
  shapes: an interval contained in one calendar day, and an interval that
  crosses midnight once.

WINDOW BOUNDARIES:
  The window is not a shared absolute interval. Its start (22:00) is taken
  on the calendar day of the interval's start, and its end (06:00) on the
  calendar day of the interval's end. For a same-day interval both land on
  the same day; for an overnight interval the 06:00 boundary belongs to the
  morning after.

PRECONDITION:
  start must be strictly before end. A violation is a caller bug (e.g. a
  record edited into an invalid state); NightTime reports it as
  ErrInvalidInterval so production callers can degrade to zero while tests
  fail loudly.

OUT OF DOMAIN:
  Intervals of 24h or more, or intervals that both begin before 22:00 and
  run past the following day's 06:00, do not occur for real shifts and are
  undefined behavior here.
*/
package temporal

import (
	"errors"
	"time"
)

// Nightly window clock boundaries.
const (
	NightStartHour = 22
	NightEndHour   = 6
)

// ErrInvalidInterval is returned when an interval's start is not strictly
// before its end. This is a programming-error class, not a data case.
var ErrInvalidInterval = errors.New("invalid interval: start must precede end")

// NightStart returns 22:00 on date's calendar day.
func NightStart(date time.Time) time.Time {
	return DayBoundary(date, NightStartHour, 0, 0)
}

// NightEnd returns 06:00 on date's calendar day.
func NightEnd(date time.Time) time.Time {
	return DayBoundary(date, NightEndHour, 0, 0)
}

// NightTime returns the portion of [start, end) that falls inside the
// nightly window.
//
// Same-day intervals: time before that day's 06:00 counts from start to
// 06:00; time after that day's 22:00 counts from 22:00 to end; otherwise
// zero. Overnight intervals: a shift that begins after 22:00 is entirely
// night (it ends before the next 06:00 for any real shift); one that begins
// earlier counts only the portion from 22:00 onward.
func NightTime(start, end time.Time) (time.Duration, error) {
	if !start.Before(end) {
		return 0, ErrInvalidInterval
	}

	if SameDay(start, end) {
		dawn := NightEnd(start)
		if start.Before(dawn) {
			return dawn.Sub(start), nil
		}
		dusk := NightStart(start)
		if end.After(dusk) {
			return end.Sub(dusk), nil
		}
		return 0, nil
	}

	// Crosses midnight.
	dusk := NightStart(start)
	if start.After(dusk) {
		return end.Sub(start), nil
	}
	return end.Sub(dusk), nil
}
