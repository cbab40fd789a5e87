package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanport-dev/beanport/internal/entry"
	"github.com/beanport-dev/beanport/internal/model"
)

const revolutFixture = "../../testdata/revolut_statement.csv"

func TestRevolut_Extract(t *testing.T) {
	imp := NewRevolut("Assets:Revolut:Cash", map[string]string{"Landlord": "Expenses:Rent"})

	txns := imp.Extract(revolutFixture)
	// Five data rows, one REVERTED and dropped.
	require.Len(t, txns, 4)
	for _, txn := range txns {
		assert.NoError(t, entry.Validate(txn))
	}
}

func TestRevolut_MappedOutflow(t *testing.T) {
	imp := NewRevolut("Assets:Revolut:Cash", map[string]string{"Landlord": "Expenses:Rent"})

	txns := imp.Extract(revolutFixture)
	require.NotEmpty(t, txns)

	txn := txns[0]
	assert.Equal(t, 2024, txn.Date.Year())
	assert.Equal(t, 5, txn.Date.Day())
	// "To " prefix stripped from the payee, kept in the narration.
	assert.Equal(t, "Landlord", txn.Payee)
	assert.Equal(t, "To Landlord", txn.Narration)
	assert.Equal(t, "-42.30", txn.Postings[0].Amount.StringFixed(2))
	assert.Equal(t, "Expenses:Rent", txn.Postings[1].Account)
	assert.Equal(t, "42.30", txn.Postings[1].Amount.StringFixed(2))
	assert.Equal(t, "GBP", txn.Postings[1].Currency)
	_, flagged := txn.Metadata[model.MetaSkip]
	assert.False(t, flagged)
}

func TestRevolut_FeeNetting(t *testing.T) {
	imp := NewRevolut("Assets:Revolut:Cash", nil)

	txns := imp.Extract(revolutFixture)
	require.True(t, len(txns) >= 2)

	// -100.00 amount with a 1.50 fee nets to -101.50.
	assert.Equal(t, "-101.50", txns[1].Postings[0].Amount.StringFixed(2))
	assert.Equal(t, "Expenses:FIXME", txns[1].Postings[1].Account)
}

func TestRevolut_ReferralInflowNotFlagged(t *testing.T) {
	imp := NewRevolut("Assets:Revolut:Cash", nil)

	txns := imp.Extract(revolutFixture)
	require.Len(t, txns, 4)

	txn := txns[2]
	assert.Equal(t, "Referral reward: thanks", txn.Narration)
	assert.Equal(t, "Income:Revolut:Referrals", txn.Postings[1].Account)
	_, flagged := txn.Metadata[model.MetaSkip]
	assert.False(t, flagged)
}

func TestRevolut_UnexplainedInflowFlagged(t *testing.T) {
	imp := NewRevolut("Assets:Revolut:Cash", nil)

	txns := imp.Extract(revolutFixture)
	require.Len(t, txns, 4)

	txn := txns[3]
	assert.Equal(t, "Income:Uncategorized:Revolut", txn.Postings[1].Account)
	assert.Equal(t, "true", txn.Metadata[model.MetaSkip])
}

func TestRevolut_RowMetadata(t *testing.T) {
	imp := NewRevolut("Assets:Revolut:Cash", nil)

	txns := imp.Extract(revolutFixture)
	require.NotEmpty(t, txns)
	assert.Equal(t, revolutFixture, txns[0].Metadata[model.MetaFilename])
	assert.Equal(t, "2", txns[0].Metadata[model.MetaLine])
}

func TestRevolut_Identify(t *testing.T) {
	imp := NewRevolut("Assets:Revolut:Cash", nil)

	assert.True(t, imp.Identify("exports/revolut_statement.csv"))
	assert.True(t, imp.Identify("Revolut-2024.CSV"))
	assert.False(t, imp.Identify("revolut.pdf"))
	assert.False(t, imp.Identify("neon_account.csv"))
}

func TestRevolut_MissingFileYieldsNothing(t *testing.T) {
	imp := NewRevolut("Assets:Revolut:Cash", nil)
	assert.Empty(t, imp.Extract("does-not-exist.csv"))
}

func TestRevolut_Account(t *testing.T) {
	imp := NewRevolut("Assets:Revolut:Cash", nil)
	assert.Equal(t, "Assets:Revolut:Cash", imp.Account("any.csv"))
	assert.Equal(t, "revolut", imp.Name())
}
