// pkg/model/removal.go
package model

import (
	"strings"
	"time"
)

// RemovalEntry is one audit-log record: the removed rows of a single chunk,
// together with the source file they came from
type RemovalEntry struct {
	RelPath string     // source file path relative to the data root
	Header  []string   // column header of the source file
	Rows    [][]string // removed rows in original order
}

// Render formats the entry for the audit log:
//
//	FILE: <relative/path/to/source.csv>
//	<header columns tab-separated>
//	<removed row values tab-separated, one row per line>
//	<blank line>
func (e RemovalEntry) Render() string {
	var b strings.Builder
	b.WriteString("FILE: ")
	b.WriteString(e.RelPath)
	b.WriteByte('\n')
	b.WriteString(strings.Join(e.Header, "\t"))
	b.WriteByte('\n')
	for _, row := range e.Rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

// RowCount returns the number of removed rows in the entry
func (e RemovalEntry) RowCount() int {
	return len(e.Rows)
}

// RemovedRow represents a single removed row flattened for the Postgres sink
type RemovedRow struct {
	RunID      string    // Identifier of the cleaning run
	FilePath   string    // Source file path relative to the data root
	ColumnName string    // Role column whose value matched the sentinel
	CellValue  string    // The matching value
	RowData    string    // Full row rendered as tab-separated text
	RemovedAt  time.Time // When the removal occurred (set by database)
}
