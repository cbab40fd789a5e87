package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction flags, beancount-style.
const (
	FlagCleared = "*"
	FlagPending = "!"
)

// Metadata keys attached to extracted transactions.
const (
	// MetaFilename and MetaLine locate the source CSV row for diagnostics.
	MetaFilename = "filename"
	MetaLine     = "lineno"
	// MetaSkip marks a transaction that was auto-categorized with low
	// confidence and needs manual review before posting.
	MetaSkip = "skip_transaction"
)

// Posting is one leg of a balanced transaction.
type Posting struct {
	Account  string
	Amount   decimal.Decimal
	Currency string
}

// Transaction is a normalized ledger entry built from one bank CSV row.
// It always carries exactly two postings that sum to zero.
type Transaction struct {
	Date      time.Time
	Flag      string
	Payee     string
	Narration string
	Tags      []string
	Links     []string
	Postings  []Posting
	Metadata  map[string]string
}

// ParsedFields holds the typed fields extracted from one CSV row before
// categorization. Meta carries extra per-row tags (e.g. merchant category).
type ParsedFields struct {
	Date      time.Time
	Amount    decimal.Decimal
	Currency  string
	Payee     string
	Narration string
	Meta      map[string]string
}
