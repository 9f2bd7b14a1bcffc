package catalogue

import (
	"time"

	"github.com/railops/shift-engine/temporal"
)

// StandardShiftName is the roster entry backing the contractual workday.
// Sick-leave days are credited its length instead of the recorded span.
const StandardShiftName = "STDR"

func clock(hour, minute int) time.Duration {
	return temporal.ClockOffset(hour, minute)
}

func sat(v float64) *float64 { return &v }

func validFrom(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Default returns the catalogue of published rosters. The tables are
// transcribed from the employer's roster sheets; each revision supersedes
// the previous one for its depot from its effective date onward. The USI
// role has no published roster yet.
func Default() *Catalogue {
	return New([]Version{
		// Driver, Benidorm depot
		{
			ValidFrom: validFrom(2023, time.July, 14),
			Role:      RoleDriver,
			Location:  LocationBenidorm,
			Shifts: []Shift{
				{Name: "1", Start: clock(5, 27), Duration: clock(8, 9), Saturation: sat(71.2)},
				{Name: "2", Start: clock(6, 27), Duration: clock(8, 9), Saturation: sat(71.2)},
				{Name: "3", Start: clock(11, 52), Duration: clock(7, 44), Saturation: sat(55.3)},
				{Name: "4", Start: clock(13, 52), Duration: clock(8, 59), Saturation: sat(65.18)},
				{Name: "5", Start: clock(14, 52), Duration: clock(8, 23), Saturation: sat(59.69)},
				{Name: "8", Start: clock(5, 45), Duration: clock(7, 15), Saturation: sat(62.82)},
				{Name: "9", Start: clock(13, 45), Duration: clock(7, 15), Saturation: sat(62.82)},
				{Name: "STDR", Start: clock(7, 0), Duration: clock(7, 49)},
				{Name: "A1", Start: clock(23, 30), Duration: clock(6, 0), Saturation: sat(57.14)},
			},
		},
		{
			ValidFrom: validFrom(2024, time.April, 9),
			Role:      RoleDriver,
			Location:  LocationBenidorm,
			Shifts: []Shift{
				{Name: "1", Start: clock(5, 20), Duration: clock(8, 34), Saturation: sat(40.09)},
				{Name: "2", Start: clock(6, 20), Duration: clock(8, 34), Saturation: sat(40.09)},
				{Name: "3", Start: clock(13, 45), Duration: clock(9, 8), Saturation: sat(42.39)},
				{Name: "4", Start: clock(14, 45), Duration: clock(8, 31), Saturation: sat(41.01)},
				{Name: "8", Start: clock(5, 45), Duration: clock(6, 45), Saturation: sat(40.90)},
				{Name: "9", Start: clock(13, 45), Duration: clock(6, 45), Saturation: sat(40.90)},
				{Name: "STDR", Start: clock(7, 0), Duration: clock(7, 49)},
				{Name: "A11", Start: clock(23, 45), Duration: clock(6, 10), Saturation: sat(66.67)},
				{Name: "A21", Start: clock(19, 16), Duration: clock(5, 46), Saturation: sat(66.67)},
				{Name: "A22", Start: clock(21, 44), Duration: clock(6, 21), Saturation: sat(66.67)},
				{Name: "A23", Start: clock(22, 2), Duration: clock(6, 37), Saturation: sat(66.67)},
				{Name: "A24", Start: clock(22, 19), Duration: clock(6, 23), Saturation: sat(66.67)},
				{Name: "A25", Start: clock(0, 40), Duration: clock(5, 17), Saturation: sat(66.67)},
			},
		},
		{
			ValidFrom: validFrom(2024, time.September, 9),
			Role:      RoleDriver,
			Location:  LocationBenidorm,
			Shifts: []Shift{
				{Name: "1", Start: clock(5, 20), Duration: clock(8, 34), Saturation: sat(41.87)},
				{Name: "2", Start: clock(6, 20), Duration: clock(8, 34), Saturation: sat(41.87)},
				{Name: "3", Start: clock(13, 45), Duration: clock(9, 8), Saturation: sat(44.02)},
				{Name: "4", Start: clock(14, 45), Duration: clock(8, 31), Saturation: sat(42.76)},
				{Name: "8", Start: clock(5, 45), Duration: clock(6, 55), Saturation: sat(40.90)},
				{Name: "9", Start: clock(13, 35), Duration: clock(6, 55), Saturation: sat(40.90)},
				{Name: "STDR", Start: clock(7, 0), Duration: clock(7, 48)},
			},
		},
		{
			ValidFrom: validFrom(2025, time.January, 28),
			Role:      RoleDriver,
			Location:  LocationBenidorm,
			Shifts: []Shift{
				{Name: "1", Start: clock(5, 5), Duration: clock(6, 20), Saturation: sat(48.15)},
				{Name: "2", Start: clock(5, 15), Duration: clock(7, 24), Saturation: sat(65.66)},
				{Name: "3", Start: clock(6, 20), Duration: clock(8, 19), Saturation: sat(70.79)},
				{Name: "4", Start: clock(9, 20), Duration: clock(8, 19), Saturation: sat(69.51)},
				{Name: "5", Start: clock(14, 20), Duration: clock(8, 19), Saturation: sat(70.79)},
				{Name: "6", Start: clock(17, 9), Duration: clock(6, 20), Saturation: sat(58.63)},
				{Name: "7", Start: clock(15, 20), Duration: clock(8, 19), Saturation: sat(70.79)},
				{Name: "8", Start: clock(5, 10), Duration: clock(8, 35), Saturation: sat(64.65)},
				{Name: "9", Start: clock(14, 10), Duration: clock(8, 0), Saturation: sat(64.65)},
				{Name: "STDR", Start: clock(7, 0), Duration: clock(7, 46)},
			},
		},

		// Driver, Denia depot
		{
			ValidFrom: validFrom(2023, time.July, 14),
			Role:      RoleDriver,
			Location:  LocationDenia,
			Shifts: []Shift{
				{Name: "21", Start: clock(5, 5), Duration: clock(7, 52), Saturation: sat(59.25)},
				{Name: "22", Start: clock(5, 20), Duration: clock(8, 37), Saturation: sat(64.41)},
				{Name: "23", Start: clock(9, 35), Duration: clock(7, 22), Saturation: sat(66.26)},
				{Name: "24", Start: clock(14, 35), Duration: clock(8, 22), Saturation: sat(51.48)},
				{Name: "25", Start: clock(16, 35), Duration: clock(6, 36), Saturation: sat(58.20)},
				{Name: "26", Start: clock(5, 15), Duration: clock(7, 15), Saturation: sat(60.72)},
				{Name: "27", Start: clock(14, 45), Duration: clock(7, 0), Saturation: sat(60.72)},
			},
		},
		{
			ValidFrom: validFrom(2024, time.April, 9),
			Role:      RoleDriver,
			Location:  LocationDenia,
			Shifts: []Shift{
				{Name: "21", Start: clock(5, 5), Duration: clock(7, 2), Saturation: sat(64.03)},
				{Name: "22", Start: clock(5, 20), Duration: clock(7, 47), Saturation: sat(66.26)},
				{Name: "23", Start: clock(8, 35), Duration: clock(7, 32), Saturation: sat(66.26)},
				{Name: "24", Start: clock(12, 35), Duration: clock(7, 32), Saturation: sat(66.26)},
				{Name: "25", Start: clock(15, 35), Duration: clock(7, 32), Saturation: sat(66.26)},
				{Name: "26", Start: clock(16, 35), Duration: clock(6, 46), Saturation: sat(63.93)},
				{Name: "27", Start: clock(5, 5), Duration: clock(8, 10), Saturation: sat(65.50)},
				{Name: "28", Start: clock(13, 30), Duration: clock(8, 15), Saturation: sat(65.50)},
			},
		},
		{
			ValidFrom: validFrom(2024, time.September, 9),
			Role:      RoleDriver,
			Location:  LocationDenia,
			Shifts: []Shift{
				{Name: "21", Start: clock(5, 5), Duration: clock(6, 52), Saturation: sat(64.03)},
				{Name: "22", Start: clock(5, 20), Duration: clock(7, 37), Saturation: sat(66.26)},
				{Name: "23", Start: clock(8, 35), Duration: clock(7, 22), Saturation: sat(66.26)},
				{Name: "24", Start: clock(12, 35), Duration: clock(7, 22), Saturation: sat(66.26)},
				{Name: "25", Start: clock(15, 35), Duration: clock(7, 22), Saturation: sat(66.26)},
				{Name: "26", Start: clock(16, 35), Duration: clock(6, 36), Saturation: sat(63.93)},
				{Name: "27", Start: clock(5, 5), Duration: clock(8, 30), Saturation: sat(65.50)},
				{Name: "28", Start: clock(13, 30), Duration: clock(8, 30), Saturation: sat(65.50)},
			},
		},
		{
			ValidFrom: validFrom(2025, time.January, 28),
			Role:      RoleDriver,
			Location:  LocationDenia,
			Shifts: []Shift{
				{Name: "21", Start: clock(5, 32), Duration: clock(7, 39), Saturation: sat(65.70)},
				{Name: "22", Start: clock(9, 47), Duration: clock(8, 24), Saturation: sat(70.04)},
				{Name: "23", Start: clock(14, 47), Duration: clock(8, 24), Saturation: sat(70.04)},
				{Name: "24", Start: clock(5, 35), Duration: clock(7, 35), Saturation: sat(68.59)},
				{Name: "25", Start: clock(14, 30), Duration: clock(7, 35), Saturation: sat(68.59)},
				{Name: "SP1", Start: clock(5, 15), Duration: clock(7, 43), Saturation: sat(68.59)},
				{Name: "SP2", Start: clock(14, 15), Duration: clock(7, 43), Saturation: sat(68.59)},
			},
		},
	})
}
