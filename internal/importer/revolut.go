package importer

import (
	"path/filepath"
	"strings"

	"github.com/beanport-dev/beanport/internal/amount"
	"github.com/beanport-dev/beanport/internal/categorize"
	"github.com/beanport-dev/beanport/internal/dialect"
	"github.com/beanport-dev/beanport/internal/model"
)

// Revolut imports Revolut account statement CSVs. Reverted transactions are
// dropped and the Fee column is netted into the amount.
type Revolut struct {
	account string
	cat     *categorize.Categorizer
	format  dialect.Format
}

var revolutDateLayouts = []string{"2006-01-02 15:04:05", "2006-01-02"}

// NewRevolut creates a Revolut importer booking into account.
func NewRevolut(account string, payees map[string]string) *Revolut {
	return &Revolut{
		account: account,
		cat: categorize.New(payees, []categorize.Rule{
			{Keyword: "Withdrawing savings", Account: "Assets:Revolut:Savings"},
			{Keyword: "Metal Cashback", Account: "Income:Revolut:Cashback"},
			{Keyword: "Referral reward", Account: "Income:Revolut:Referrals"},
		}, UncategorizedExpenses, "Income:Uncategorized:Revolut"),
		format: dialect.Format{
			Name:         "revolut",
			Comma:        ',',
			Required:     []string{"Started Date", "Description", "Amount", "Currency"},
			DateColumn:   "Started Date",
			FilterColumn: "State",
			FilterValue:  "REVERTED",
		},
	}
}

// Name returns the format name.
func (r *Revolut) Name() string { return "revolut" }

// Identify claims CSV files with "revolut" in the file name.
func (r *Revolut) Identify(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	return strings.Contains(base, "revolut") && strings.HasSuffix(base, ".csv")
}

// Account returns the configured asset account.
func (r *Revolut) Account(string) string { return r.account }

// Extract parses a Revolut statement into transactions.
func (r *Revolut) Extract(path string) []model.Transaction {
	return extractRows(r.format, path, r.mapRow, r.cat, r.account)
}

func (r *Revolut) mapRow(row dialect.RawRow) (model.ParsedFields, error) {
	date, err := parseDate(revolutDateLayouts, row.Fields["Started Date"])
	if err != nil {
		return model.ParsedFields{}, err
	}

	amt, err := amount.Normalize(row.Fields["Amount"], row.Fields["Fee"])
	if err != nil {
		return model.ParsedFields{}, err
	}

	desc := row.Fields["Description"]
	return model.ParsedFields{
		Date:      date,
		Amount:    amt,
		Currency:  row.Fields["Currency"],
		Payee:     strings.TrimPrefix(desc, "To "),
		Narration: desc,
	}, nil
}
