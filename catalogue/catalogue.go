package catalogue

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// =============================================================================
// CATALOGUE - versioned roster resolution
// =============================================================================

// Catalogue is an immutable set of roster versions. Build one with Default()
// or New(); all methods are safe for concurrent use.
type Catalogue struct {
	versions []Version
}

// New builds a catalogue over the given versions. The slice order is
// preserved: name lookups scan it in declaration order.
func New(versions []Version) *Catalogue {
	return &Catalogue{versions: versions}
}

// Versions returns a copy of the full version list.
func (c *Catalogue) Versions() []Version {
	out := make([]Version, len(c.versions))
	copy(out, c.versions)
	return out
}

// Resolve returns the roster version in force for the role at the location on
// the given date: the one with the greatest ValidFrom not after the date.
// There is no fallback. A date before every version, or a (role, location)
// pair with no published roster, resolves to nothing.
func (c *Catalogue) Resolve(role Role, location Location, date time.Time) (Version, bool) {
	var best Version
	found := false
	for _, v := range c.versions {
		if v.Role != role || v.Location != location {
			continue
		}
		if v.ValidFrom.After(date) {
			continue
		}
		if !found || v.ValidFrom.After(best.ValidFrom) {
			best = v
			found = true
		}
	}
	return best, found
}

// ApplicableVersions resolves the role's version at every depot that has one
// in force on the date, in AllLocations order.
func (c *Catalogue) ApplicableVersions(role Role, date time.Time) []Version {
	var out []Version
	for _, loc := range AllLocations {
		if v, ok := c.Resolve(role, loc, date); ok {
			out = append(out, v)
		}
	}
	return out
}

// shiftCollator orders shift names the way the rosters are printed: Spanish
// collation, case-insensitive, with digit runs compared numerically so that
// "2" sorts before "21".
var shiftCollator = collate.New(language.Spanish, collate.IgnoreCase, collate.Numeric)

// ShiftsByLocation returns the shifts in force for the role on the date,
// keyed by depot display name, each list sorted by name.
func (c *Catalogue) ShiftsByLocation(role Role, date time.Time) map[string][]Shift {
	out := make(map[string][]Shift)
	for _, v := range c.ApplicableVersions(role, date) {
		shifts := make([]Shift, len(v.Shifts))
		copy(shifts, v.Shifts)
		sort.SliceStable(shifts, func(i, j int) bool {
			return shiftCollator.CompareString(shifts[i].Name, shifts[j].Name) < 0
		})
		out[v.Location.DisplayName()] = shifts
	}
	return out
}

// VersionWithShift finds the first version, in declaration order, that lists
// a shift with the given name for the role. Shift names recur across
// versions of the same depot, so this pins a name to the depot that first
// published it.
func (c *Catalogue) VersionWithShift(shiftName string, role Role) (Version, bool) {
	for _, v := range c.versions {
		if v.Role != role {
			continue
		}
		if _, ok := v.Shift(shiftName); ok {
			return v, true
		}
	}
	return Version{}, false
}

// LocationOf returns the depot whose roster first declared the shift name.
func (c *Catalogue) LocationOf(shiftName string, role Role) (Location, bool) {
	v, ok := c.VersionWithShift(shiftName, role)
	if !ok {
		return "", false
	}
	return v.Location, true
}

// StandardShiftMinutes returns the length in whole minutes of the standard
// shift ("STDR") in the first applicable version for the role on the date,
// or 0 when no applicable version lists one.
func (c *Catalogue) StandardShiftMinutes(role Role, date time.Time) int {
	for _, v := range c.ApplicableVersions(role, date) {
		s, ok := v.Shift(StandardShiftName)
		if !ok {
			return 0
		}
		return int(s.Duration / time.Minute)
	}
	return 0
}
