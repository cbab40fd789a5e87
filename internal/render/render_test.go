package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanport-dev/beanport/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleTxn() model.Transaction {
	return model.Transaction{
		Date:      time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Flag:      model.FlagCleared,
		Payee:     "Landlord",
		Narration: "Rent January",
		Postings: []model.Posting{
			{Account: "Assets:Revolut:Cash", Amount: dec("-42.30"), Currency: "GBP"},
			{Account: "Expenses:Rent", Amount: dec("42.30"), Currency: "GBP"},
		},
	}
}

func TestTransaction(t *testing.T) {
	got := Transaction(sampleTxn())
	want := "2024-01-05 * \"Landlord\" \"Rent January\"\n" +
		"  Assets:Revolut:Cash  -42.30 GBP\n" +
		"  Expenses:Rent  42.30 GBP\n"
	assert.Equal(t, want, got)
}

func TestTransaction_MetadataSorted(t *testing.T) {
	txn := sampleTxn()
	txn.Metadata = map[string]string{
		"skip_transaction": "true",
		"lineno":           "2",
	}

	got := Transaction(txn)
	assert.Contains(t, got, "  lineno: \"2\"\n")
	assert.Contains(t, got, "  skip_transaction: \"true\"\n")
	assert.Less(t, indexOf(got, "lineno"), indexOf(got, "skip_transaction"))
}

func TestWrite_SeparatesEntries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []model.Transaction{sampleTxn(), sampleTxn()}))

	out := buf.String()
	assert.Contains(t, out, "GBP\n\n2024-01-05")
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Empty(t, buf.String())
}

func indexOf(s, sub string) int {
	return bytes.Index([]byte(s), []byte(sub))
}
