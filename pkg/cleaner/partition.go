// pkg/cleaner/partition.go
package cleaner

// Partition splits the records of a chunk into kept and removed sequences,
// both preserving original relative order. A record is removed iff one of
// the role columns is present and its value string-equals the sentinel.
// With no role columns every record is kept.
func Partition(records [][]string, roles Roles, sentinel string) (kept, removed [][]string) {
	if !roles.Found() {
		return records, nil
	}

	kept = make([][]string, 0, len(records))
	for _, record := range records {
		if _, _, ok := roles.Match(record, sentinel); ok {
			removed = append(removed, record)
		} else {
			kept = append(kept, record)
		}
	}

	return kept, removed
}
