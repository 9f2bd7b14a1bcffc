// Package catalogue holds the published shift rosters and their resolution
// rules. A roster is versioned: each (role, location) pair carries a series
// of versions, and the version in force on a date is the one with the
// greatest effective date not after it.
package catalogue

import (
	"time"

	"github.com/railops/shift-engine/temporal"
)

// =============================================================================
// ROLES AND LOCATIONS
// =============================================================================

// Role identifies the operator's job classification.
type Role string

const (
	RoleDriver Role = "maquinista"
	RoleUSI    Role = "usi"
)

// AllRoles lists every role in declaration order.
var AllRoles = []Role{RoleDriver, RoleUSI}

// DisplayName returns the human-readable form of the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleDriver:
		return "Maquinista"
	case RoleUSI:
		return "USI"
	default:
		return string(r)
	}
}

// Valid reports whether the role is one of the known classifications.
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// Location identifies a depot the roster is published for.
type Location string

const (
	LocationBenidorm Location = "benidorm"
	LocationDenia    Location = "denia"
	LocationCampello Location = "campello"
)

// AllLocations lists every depot in declaration order. Resolution iterates
// this slice, so it fixes the order of per-location results.
var AllLocations = []Location{LocationBenidorm, LocationDenia, LocationCampello}

// DisplayName returns the depot name with its first letter capitalized.
func (l Location) DisplayName() string {
	s := string(l)
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// Valid reports whether the location is one of the known depots.
func (l Location) Valid() bool {
	for _, known := range AllLocations {
		if l == known {
			return true
		}
	}
	return false
}

// =============================================================================
// SHIFTS AND VERSIONS
// =============================================================================

// Shift is a single roster entry. Start is the clock offset from midnight,
// Duration the scheduled length. A nil Saturation means the roster does not
// publish a value for it.
type Shift struct {
	Name       string
	Start      time.Duration
	Duration   time.Duration
	Saturation *float64
}

// End returns the clock offset at which the shift ends. It may exceed 24h
// for shifts that run past midnight.
func (s Shift) End() time.Duration {
	return s.Start + s.Duration
}

// StartOn anchors the shift's start on the given calendar day.
func (s Shift) StartOn(day time.Time) time.Time {
	return temporal.StartOfDay(day).Add(s.Start)
}

// EndOn anchors the shift's end on the given calendar day. Shifts running
// past midnight end on the following day.
func (s Shift) EndOn(day time.Time) time.Time {
	return temporal.StartOfDay(day).Add(s.End())
}

// NightTime returns the portion of the shift inside the nightly window when
// worked on the given day. Roster entries always have positive duration, so
// the interval precondition cannot fail here.
func (s Shift) NightTime(day time.Time) time.Duration {
	night, err := temporal.NightTime(s.StartOn(day), s.EndOn(day))
	if err != nil {
		return 0
	}
	return night
}

// Version is one published roster for a (role, location) pair, in force from
// ValidFrom until superseded by a later version.
type Version struct {
	ValidFrom time.Time
	Role      Role
	Location  Location
	Shifts    []Shift
}

// Shift looks up a roster entry by name.
func (v Version) Shift(name string) (Shift, bool) {
	for _, s := range v.Shifts {
		if s.Name == name {
			return s, true
		}
	}
	return Shift{}, false
}
