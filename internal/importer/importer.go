// Package importer exposes per-bank importers that turn CSV export files
// into normalized ledger transactions.
package importer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/beanport-dev/beanport/internal/categorize"
	"github.com/beanport-dev/beanport/internal/dialect"
	"github.com/beanport-dev/beanport/internal/entry"
	"github.com/beanport-dev/beanport/internal/model"
)

// UncategorizedExpenses receives outflows whose payee is not in the mapping.
const UncategorizedExpenses = "Expenses:FIXME"

// Importer extracts normalized transactions from one bank's export files.
type Importer interface {
	// Name returns the format name, e.g. "revolut".
	Name() string
	// Identify reports whether this importer handles the file, judged from
	// the file name alone; contents are never inspected.
	Identify(path string) bool
	// Account returns the ledger account the file is imported into.
	Account(path string) string
	// Extract parses the file into transactions in file order. Non-fatal
	// parse failures yield no transactions and a logged warning.
	Extract(path string) []model.Transaction
}

// Registry holds named importers in registration order.
type Registry struct {
	order  []Importer
	byName map[string]Importer
}

// NewRegistry creates an empty importer registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Importer)}
}

// Register adds an importer. Panics on duplicate name.
func (r *Registry) Register(imp Importer) {
	key := strings.ToLower(imp.Name())
	if _, ok := r.byName[key]; ok {
		panic("duplicate importer name: " + key)
	}
	r.byName[key] = imp
	r.order = append(r.order, imp)
}

// Get returns the importer registered under name, or nil.
func (r *Registry) Get(name string) Importer {
	return r.byName[strings.ToLower(name)]
}

// Identify returns the first importer claiming the file, or nil.
func (r *Registry) Identify(path string) Importer {
	for _, imp := range r.order {
		if imp.Identify(path) {
			return imp
		}
	}
	return nil
}

// FileInfo describes a CSV file found by Scan.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Scan returns the CSV files directly under dir, skipping subdirectories.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// extractRows runs the shared per-file pipeline: dialect parse, then per row
// field mapping, categorization, and transaction building. Failures degrade
// to warnings; the worst outcome is fewer (or zero) transactions.
func extractRows(f dialect.Format, path string, mapRow func(dialect.RawRow) (model.ParsedFields, error), cat *categorize.Categorizer, account string) []model.Transaction {
	rows, err := f.ParseFile(path)
	if err != nil {
		slog.Warn("skipping file", "format", f.Name, "file", path, "error", err)
		return nil
	}

	var txns []model.Transaction
	for _, row := range rows {
		fields, err := mapRow(row)
		if err != nil {
			slog.Warn("skipping row", "format", f.Name, "file", path, "row", row.Line, "error", err)
			continue
		}
		if fields.Meta == nil {
			fields.Meta = make(map[string]string, 2)
		}
		fields.Meta[model.MetaFilename] = path
		fields.Meta[model.MetaLine] = strconv.Itoa(row.Line)

		counter := cat.Categorize(fields.Amount, fields.Narration, fields.Payee)
		txns = append(txns, entry.Build(fields, account, counter))
	}
	return txns
}

// parseDate tries each layout in order.
func parseDate(layouts []string, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: %w", value, err)
}
