package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDetectsRoleColumns(t *testing.T) {
	roles := NewResolver().Resolve([]string{"ID", "StateCode", "District_Name", "Value"})

	assert.Equal(t, "StateCode", roles.StateColumn)
	assert.Equal(t, 1, roles.StateIndex)
	assert.Equal(t, "District_Name", roles.DistrictColumn)
	assert.Equal(t, 2, roles.DistrictIndex)
	assert.True(t, roles.Found())
}

func TestResolveFirstMatchWins(t *testing.T) {
	roles := NewResolver().Resolve([]string{"state_name", "STATE_CODE", "district", "sub_district"})

	assert.Equal(t, "state_name", roles.StateColumn)
	assert.Equal(t, 0, roles.StateIndex)
	assert.Equal(t, "district", roles.DistrictColumn)
	assert.Equal(t, 2, roles.DistrictIndex)
}

func TestResolveRolesAreIndependent(t *testing.T) {
	// A single header may satisfy both roles
	roles := NewResolver().Resolve([]string{"id", "state_district"})

	assert.Equal(t, "state_district", roles.StateColumn)
	assert.Equal(t, "state_district", roles.DistrictColumn)
	assert.Equal(t, 1, roles.StateIndex)
	assert.Equal(t, 1, roles.DistrictIndex)
}

func TestResolveNoRoleColumns(t *testing.T) {
	roles := NewResolver().Resolve([]string{"id", "name", "value"})

	assert.False(t, roles.HasState())
	assert.False(t, roles.HasDistrict())
	assert.False(t, roles.Found())
	assert.Equal(t, -1, roles.StateIndex)
	assert.Equal(t, -1, roles.DistrictIndex)
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	roles := NewResolver().Resolve([]string{"STATECODE", "DistrictName"})

	assert.Equal(t, "STATECODE", roles.StateColumn)
	assert.Equal(t, "DistrictName", roles.DistrictColumn)
}

func TestResolveCustomPatterns(t *testing.T) {
	resolver := &Resolver{
		StatePatterns:    []string{"region", "province"},
		DistrictPatterns: []string{"zone"},
	}
	roles := resolver.Resolve([]string{"id", "Province_Code", "Zone", "state"})

	// Overridden patterns replace the default heuristic entirely
	assert.Equal(t, "Province_Code", roles.StateColumn)
	assert.Equal(t, "Zone", roles.DistrictColumn)
}

func TestResolveIsDeterministic(t *testing.T) {
	header := []string{"ID", "StateCode", "District_Name", "Value"}
	resolver := NewResolver()

	first := resolver.Resolve(header)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, resolver.Resolve(header))
	}
}

func TestRolesMatch(t *testing.T) {
	roles := NewResolver().Resolve([]string{"ID", "StateCode", "District_Name"})

	column, value, ok := roles.Match([]string{"1", "100000", "X"}, Sentinel)
	assert.True(t, ok)
	assert.Equal(t, "StateCode", column)
	assert.Equal(t, "100000", value)

	// State column is checked before district
	column, _, ok = roles.Match([]string{"1", "100000", "100000"}, Sentinel)
	assert.True(t, ok)
	assert.Equal(t, "StateCode", column)

	column, value, ok = roles.Match([]string{"2", "12", "100000"}, Sentinel)
	assert.True(t, ok)
	assert.Equal(t, "District_Name", column)

	_, _, ok = roles.Match([]string{"3", "5", "Y"}, Sentinel)
	assert.False(t, ok)
}

func TestRolesMatchComparesRawStrings(t *testing.T) {
	roles := NewResolver().Resolve([]string{"StateCode"})

	// No trimming, no numeric coercion
	for _, value := range []string{" 100000", "100000 ", "0100000", "100000.0", "1e5"} {
		_, _, ok := roles.Match([]string{value}, Sentinel)
		assert.False(t, ok, "value %q must not match the sentinel", value)
	}
}
