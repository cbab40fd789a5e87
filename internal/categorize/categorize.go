// Package categorize resolves the counter-account for a parsed transaction.
package categorize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Rule maps a narration keyword to a counter-account. Rules are consulted in
// declaration order; the first matching keyword wins.
type Rule struct {
	Keyword string
	Account string
}

// Result is a resolved counter-account. NeedsReview marks low-confidence
// categorizations for downstream manual handling.
type Result struct {
	Account     string
	NeedsReview bool
}

// Categorizer assigns counter-accounts from a read-only payee mapping, an
// ordered narration rule list, and sign-based fallback accounts. It never
// fails: every transaction resolves to some account.
type Categorizer struct {
	payees               map[string]string
	rules                []Rule
	uncategorizedExpense string
	uncategorizedIncome  string
}

// New builds a Categorizer. The payee mapping is copied so later mutation by
// the caller cannot leak into categorization.
func New(payees map[string]string, rules []Rule, uncategorizedExpense, uncategorizedIncome string) *Categorizer {
	copied := make(map[string]string, len(payees))
	for k, v := range payees {
		copied[k] = v
	}
	return &Categorizer{
		payees:               copied,
		rules:                rules,
		uncategorizedExpense: uncategorizedExpense,
		uncategorizedIncome:  uncategorizedIncome,
	}
}

// Categorize resolves the counter-account for one transaction.
//
// Outflows (amt < 0) look up the payee and fall back silently to the
// uncategorized-expense account. Inflows scan the narration rules in order
// and fall back to the uncategorized-income account with NeedsReview set:
// unexplained incoming funds are the risky case that warrants a human look,
// unexplained spending is routine.
func (c *Categorizer) Categorize(amt decimal.Decimal, narration, payee string) Result {
	if amt.IsNegative() {
		if account, ok := c.payees[payee]; ok {
			return Result{Account: account}
		}
		return Result{Account: c.uncategorizedExpense}
	}

	for _, r := range c.rules {
		if strings.Contains(narration, r.Keyword) {
			return Result{Account: r.Account}
		}
	}
	return Result{Account: c.uncategorizedIncome, NeedsReview: true}
}
