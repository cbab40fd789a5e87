// Package dialect parses bank-specific CSV layouts into raw field rows.
package dialect

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/beanport-dev/beanport/internal/charset"
	"github.com/beanport-dev/beanport/internal/rowfilter"
)

var (
	// ErrMissingColumn indicates the header lacks a declared required column.
	ErrMissingColumn = errors.New("missing required column")
	// ErrUnreadableFile indicates the file could not be opened or read.
	ErrUnreadableFile = errors.New("unreadable file")
)

// RawRow is one parsed CSV data row, keyed by trimmed header column name.
// Line is the physical row number: the header counts as row 1, so the first
// data row is 2.
type RawRow struct {
	Line   int
	Fields map[string]string
}

// Format declares how one bank's CSV dialect is read: delimiter, encoding,
// the columns that must be present, and an optional row-exclusion predicate.
type Format struct {
	Name             string
	Comma            rune
	TrimLeadingSpace bool

	// Encoding fixes the charset by name; empty means auto-detect from the
	// file's leading bytes.
	Encoding string

	// Required lists column names that must appear in the header.
	Required []string

	// DateColumn names the column whose emptiness marks a non-transaction
	// row; such rows are skipped.
	DateColumn string

	// FilterColumn/FilterValue drop rows whose value in FilterColumn equals
	// FilterValue (e.g. reversed transactions). Empty disables filtering.
	FilterColumn string
	FilterValue  string

	// Detector overrides charset detection; nil uses the chardet default.
	Detector charset.Detector
}

// ParseFile reads path and parses it per the format. An unopenable file
// yields ErrUnreadableFile; callers treat it as "no entries", not a crash.
func (f Format) ParseFile(path string) ([]RawRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	return f.Parse(data)
}

// Parse decodes, filters, and splits raw file bytes into ordered RawRows.
// Rows with an empty date column are skipped. A header missing a required
// column yields ErrMissingColumn and no rows.
func (f Format) Parse(data []byte) ([]RawRow, error) {
	det := f.Detector
	if f.Encoding != "" {
		det = charset.Fixed(f.Encoding)
	} else if det == nil {
		det = charset.ChardetDetector{}
	}
	text := charset.Decode(data, det)

	cr := csv.NewReader(bytes.NewReader(text))
	if f.Comma != 0 {
		cr.Comma = f.Comma
	}
	cr.TrimLeadingSpace = f.TrimLeadingSpace
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s CSV: %w", f.Name, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	records = rowfilter.Filter(records, f.FilterColumn, f.FilterValue)

	header := records[0]
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range f.Required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	var rows []RawRow
	for i, rec := range records[1:] {
		fields := make(map[string]string, len(cols))
		for name, idx := range cols {
			if idx < len(rec) {
				fields[name] = rec[idx]
			}
		}
		if f.DateColumn != "" && strings.TrimSpace(fields[f.DateColumn]) == "" {
			continue
		}
		rows = append(rows, RawRow{Line: i + 2, Fields: fields})
	}
	return rows, nil
}
