package importer

import (
	"strings"

	"github.com/beanport-dev/beanport/internal/amount"
	"github.com/beanport-dev/beanport/internal/categorize"
	"github.com/beanport-dev/beanport/internal/dialect"
	"github.com/beanport-dev/beanport/internal/model"
)

// Neon imports Neon bank statement CSVs: semicolon-delimited, UTF-8 with a
// byte-order mark, single fixed currency.
type Neon struct {
	account  string
	currency string
	cat      *categorize.Categorizer
	format   dialect.Format
}

const neonDateLayout = "2006-01-02"

// NewNeon creates a Neon importer booking into account. An empty currency
// defaults to CHF.
func NewNeon(account, currency string, payees map[string]string) *Neon {
	if currency == "" {
		currency = "CHF"
	}
	return &Neon{
		account:  account,
		currency: currency,
		cat: categorize.New(payees, []categorize.Rule{
			{Keyword: "Withdrawing savings", Account: "Assets:Neon:Savings"},
			{Keyword: "Metal Cashback", Account: "Income:Neon:Cashback"},
			{Keyword: "Referral reward", Account: "Income:Neon:Referrals"},
		}, UncategorizedExpenses, "Income:Uncategorized:Neon:Cash"),
		format: dialect.Format{
			Name:       "neon",
			Comma:      ';',
			Encoding:   "utf-8",
			Required:   []string{"Date", "Amount", "Description", "Subject"},
			DateColumn: "Date",
		},
	}
}

// Name returns the format name.
func (n *Neon) Name() string { return "neon" }

// Identify claims CSV files with "neon" anywhere in the path.
func (n *Neon) Identify(path string) bool {
	lower := strings.ToLower(path)
	return strings.Contains(lower, "neon") && strings.HasSuffix(lower, ".csv")
}

// Account returns the configured asset account.
func (n *Neon) Account(string) string { return n.account }

// Extract parses a Neon statement into transactions.
func (n *Neon) Extract(path string) []model.Transaction {
	return extractRows(n.format, path, n.mapRow, n.cat, n.account)
}

func (n *Neon) mapRow(row dialect.RawRow) (model.ParsedFields, error) {
	date, err := parseDate([]string{neonDateLayout}, row.Fields["Date"])
	if err != nil {
		return model.ParsedFields{}, err
	}

	amt, err := amount.Normalize(row.Fields["Amount"], "")
	if err != nil {
		return model.ParsedFields{}, err
	}

	return model.ParsedFields{
		Date:      date,
		Amount:    amt,
		Currency:  n.currency,
		Payee:     row.Fields["Description"],
		Narration: row.Fields["Subject"],
	}, nil
}
