// Package rowfilter drops unwanted CSV data rows before parsing.
package rowfilter

import "strings"

// Filter removes data rows whose value in the named column equals excluded,
// comparing after trimming whitespace. The header row (records[0]) is always
// kept and is where the column position is resolved. Fully blank rows are
// dropped. Rows too short to contain the column pass through unfiltered, as
// does everything when the column is empty or not found in the header.
// Ordering of surviving rows is preserved.
func Filter(records [][]string, column, excluded string) [][]string {
	if len(records) == 0 {
		return records
	}

	col := -1
	if column != "" {
		for i, name := range records[0] {
			if strings.TrimSpace(name) == column {
				col = i
				break
			}
		}
	}

	out := make([][]string, 0, len(records))
	out = append(out, records[0])
	for _, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		if col >= 0 {
			if len(rec) <= col {
				out = append(out, rec)
				continue
			}
			if strings.TrimSpace(rec[col]) == excluded {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
