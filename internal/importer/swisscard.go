package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beanport-dev/beanport/internal/amount"
	"github.com/beanport-dev/beanport/internal/categorize"
	"github.com/beanport-dev/beanport/internal/dialect"
	"github.com/beanport-dev/beanport/internal/model"
)

// Swisscard imports Swisscard cashback card statement CSVs. The statement
// lists charges as positive values, so the booked amount is the negation.
type Swisscard struct {
	account string
	pattern *regexp.Regexp
	cat     *categorize.Categorizer
	format  dialect.Format
}

// DefaultSwisscardPattern matches statement files under a swisscard/ folder.
const DefaultSwisscardPattern = `swisscard/.*\.csv`

const swisscardDateLayout = "02.01.2006"

// NewSwisscard creates a Swisscard importer booking into account. Files are
// identified by matching pattern (a regexp) against the full path; an empty
// pattern uses DefaultSwisscardPattern.
func NewSwisscard(account, pattern string, payees map[string]string) (*Swisscard, error) {
	if pattern == "" {
		pattern = DefaultSwisscardPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling swisscard pattern: %w", err)
	}
	return &Swisscard{
		account: account,
		pattern: re,
		cat:     categorize.New(payees, nil, UncategorizedExpenses, "Income:Uncategorized:Swisscard"),
		format: dialect.Format{
			Name:             "swisscard",
			Comma:            ',',
			TrimLeadingSpace: true,
			Required:         []string{"Transaction date", "Description", "Amount", "Currency"},
			DateColumn:       "Transaction date",
		},
	}, nil
}

// Name returns the format name.
func (s *Swisscard) Name() string { return "swisscard" }

// Identify claims files whose path matches the configured pattern.
func (s *Swisscard) Identify(path string) bool {
	return s.pattern.MatchString(path)
}

// Account returns the configured asset account.
func (s *Swisscard) Account(string) string { return s.account }

// Extract parses a Swisscard statement into transactions.
func (s *Swisscard) Extract(path string) []model.Transaction {
	return extractRows(s.format, path, s.mapRow, s.cat, s.account)
}

func (s *Swisscard) mapRow(row dialect.RawRow) (model.ParsedFields, error) {
	date, err := parseDate([]string{swisscardDateLayout}, row.Fields["Transaction date"])
	if err != nil {
		return model.ParsedFields{}, err
	}

	value, err := amount.Normalize(row.Fields["Amount"], "")
	if err != nil {
		return model.ParsedFields{}, err
	}

	desc := strings.TrimSpace(row.Fields["Description"])
	meta := make(map[string]string, 2)
	if v := row.Fields["Merchant Category"]; v != "" {
		meta["merchant"] = v
	}
	if v := row.Fields["Registered Category"]; v != "" {
		meta["category"] = v
	}
	return model.ParsedFields{
		Date:      date,
		Amount:    value.Neg(),
		Currency:  row.Fields["Currency"],
		Payee:     desc,
		Narration: desc,
		Meta:      meta,
	}, nil
}
