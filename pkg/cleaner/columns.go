// pkg/cleaner/columns.go
package cleaner

import "strings"

// Sentinel is the literal value that marks a row for removal when found
// in a role column
const Sentinel = "100000"

// Roles holds the resolved state and district columns of a file.
// An index of -1 means the role is absent from the header.
type Roles struct {
	StateColumn    string
	StateIndex     int
	DistrictColumn string
	DistrictIndex  int
}

// HasState reports whether a state-like column was found
func (r Roles) HasState() bool {
	return r.StateIndex >= 0
}

// HasDistrict reports whether a district-like column was found
func (r Roles) HasDistrict() bool {
	return r.DistrictIndex >= 0
}

// Found reports whether at least one role column was found
func (r Roles) Found() bool {
	return r.HasState() || r.HasDistrict()
}

// Match reports the first role column of the record whose value equals the
// sentinel. Values are compared as raw strings: no trimming, no case-folding,
// no numeric coercion. The state column is checked before the district column.
func (r Roles) Match(record []string, sentinel string) (column, value string, ok bool) {
	if r.HasState() && r.StateIndex < len(record) && record[r.StateIndex] == sentinel {
		return r.StateColumn, record[r.StateIndex], true
	}
	if r.HasDistrict() && r.DistrictIndex < len(record) && record[r.DistrictIndex] == sentinel {
		return r.DistrictColumn, record[r.DistrictIndex], true
	}
	return "", "", false
}

// Resolver classifies header names as state-like or district-like by
// case-insensitive substring match. The zero patterns are the hardcoded
// heuristic; callers may supply their own candidates per role.
type Resolver struct {
	StatePatterns    []string
	DistrictPatterns []string
}

// NewResolver returns a resolver with the default substring heuristic
func NewResolver() *Resolver {
	return &Resolver{
		StatePatterns:    []string{"state"},
		DistrictPatterns: []string{"district"},
	}
}

// Resolve detects the role columns of a header. Roles are evaluated
// independently, so a single header name may satisfy both. When multiple
// headers match a role, the first match in original header order wins,
// which keeps detection deterministic for a fixed header list.
func (r *Resolver) Resolve(header []string) Roles {
	roles := Roles{StateIndex: -1, DistrictIndex: -1}

	for i, name := range header {
		lower := strings.ToLower(name)
		if !roles.HasState() && matchesAny(lower, r.StatePatterns) {
			roles.StateColumn = name
			roles.StateIndex = i
		}
		if !roles.HasDistrict() && matchesAny(lower, r.DistrictPatterns) {
			roles.DistrictColumn = name
			roles.DistrictIndex = i
		}
	}

	return roles
}

// matchesAny checks a lowercased header name against candidate substrings
func matchesAny(lower string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
