// Package entry assembles balanced two-posting transactions.
package entry

import (
	"fmt"

	"github.com/beanport-dev/beanport/internal/categorize"
	"github.com/beanport-dev/beanport/internal/model"
)

// Build assembles a balanced transaction from parsed row fields: the primary
// posting at the parsed amount against account, and a counter-posting at the
// exact negation against the resolved counter-account. The pair sums to zero
// by construction. A review-flagged categorization sets the skip_transaction
// metadata key.
func Build(fields model.ParsedFields, account string, counter categorize.Result) model.Transaction {
	meta := make(map[string]string, len(fields.Meta)+1)
	for k, v := range fields.Meta {
		meta[k] = v
	}
	if counter.NeedsReview {
		meta[model.MetaSkip] = "true"
	}

	return model.Transaction{
		Date:      fields.Date,
		Flag:      model.FlagCleared,
		Payee:     fields.Payee,
		Narration: fields.Narration,
		Postings: []model.Posting{
			{Account: account, Amount: fields.Amount, Currency: fields.Currency},
			{Account: counter.Account, Amount: fields.Amount.Neg(), Currency: fields.Currency},
		},
		Metadata: meta,
	}
}

// Validate re-checks the invariants Build guarantees: exactly two postings,
// one currency, amounts summing to zero.
func Validate(txn model.Transaction) error {
	if len(txn.Postings) != 2 {
		return fmt.Errorf("expected 2 postings, got %d", len(txn.Postings))
	}
	a, b := txn.Postings[0], txn.Postings[1]
	if a.Currency != b.Currency {
		return fmt.Errorf("currency mismatch: %s vs %s", a.Currency, b.Currency)
	}
	if !a.Amount.Add(b.Amount).IsZero() {
		return fmt.Errorf("postings do not balance: %s + %s", a.Amount, b.Amount)
	}
	return nil
}
