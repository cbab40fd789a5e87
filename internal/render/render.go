// Package render writes extracted transactions as beancount-style text, the
// form the downstream ledger-import harness consumes.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/beanport-dev/beanport/internal/model"
)

const dateFormat = "2006-01-02"

// Write renders transactions in file order, one directive per transaction,
// separated by blank lines.
func Write(w io.Writer, txns []model.Transaction) error {
	for i, txn := range txns {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("writing entry separator: %w", err)
			}
		}
		if _, err := io.WriteString(w, Transaction(txn)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i+1, err)
		}
	}
	return nil
}

// Transaction renders one transaction as a beancount directive:
//
//	2024-01-05 * "Landlord" "Rent January"
//	  lineno: "2"
//	  Assets:Revolut:Cash  -42.30 GBP
//	  Expenses:Rent  42.30 GBP
func Transaction(txn model.Transaction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s %q %q", txn.Date.Format(dateFormat), txn.Flag, txn.Payee, txn.Narration)
	for _, tag := range txn.Tags {
		fmt.Fprintf(&b, " #%s", tag)
	}
	for _, link := range txn.Links {
		fmt.Fprintf(&b, " ^%s", link)
	}
	b.WriteString("\n")

	keys := make([]string, 0, len(txn.Metadata))
	for k := range txn.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %q\n", k, txn.Metadata[k])
	}

	for _, p := range txn.Postings {
		fmt.Fprintf(&b, "  %s  %s %s\n", p.Account, p.Amount.String(), p.Currency)
	}
	return b.String()
}
