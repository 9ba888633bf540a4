package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemovalEntryRender(t *testing.T) {
	entry := RemovalEntry{
		RelPath: "2011/census.csv",
		Header:  []string{"ID", "StateCode", "District_Name"},
		Rows: [][]string{
			{"1", "100000", "X"},
			{"2", "12", "100000"},
		},
	}

	want := "FILE: 2011/census.csv\n" +
		"ID\tStateCode\tDistrict_Name\n" +
		"1\t100000\tX\n" +
		"2\t12\t100000\n" +
		"\n"
	assert.Equal(t, want, entry.Render())
	assert.Equal(t, 2, entry.RowCount())
}

func TestRemovalEntryRenderNoRows(t *testing.T) {
	entry := RemovalEntry{
		RelPath: "a.csv",
		Header:  []string{"state"},
	}

	assert.Equal(t, "FILE: a.csv\nstate\n\n", entry.Render())
	assert.Zero(t, entry.RowCount())
}
