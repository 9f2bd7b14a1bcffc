package catalogue

import "github.com/railops/shift-engine/temporal"

// =============================================================================
// SHIFT CLASSIFICATION
// =============================================================================

// ShiftType buckets a shift by where its span falls in the day.
type ShiftType string

const (
	Morning   ShiftType = "Mañana"
	Noon      ShiftType = "Intermedio"
	Afternoon ShiftType = "Tarde"
)

// AllShiftTypes lists the buckets in day order.
var AllShiftTypes = []ShiftType{Morning, Noon, Afternoon}

// ColorTag returns the UI color associated with the bucket.
func (t ShiftType) ColorTag() string {
	switch t {
	case Morning:
		return "yellow"
	case Noon:
		return "orange"
	default:
		return "blue"
	}
}

// Classification boundaries, as clock offsets from midnight.
var (
	morningStartCutoff = temporal.ClockOffset(12, 30)
	noonEndCutoff      = temporal.ClockOffset(15, 45)
)

// Type classifies the roster entry by its scheduled clock times: a shift
// starting before 12:30 is morning when it also ends before 15:45, noon when
// it ends after 15:45. Everything else is afternoon, including shifts that
// start before 12:30 and end exactly at 15:45. Both comparisons are strict.
func (s Shift) Type() ShiftType {
	switch {
	case s.Start < morningStartCutoff && s.End() < noonEndCutoff:
		return Morning
	case s.Start < morningStartCutoff && s.End() > noonEndCutoff:
		return Noon
	default:
		return Afternoon
	}
}
