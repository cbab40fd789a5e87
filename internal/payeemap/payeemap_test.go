package payeemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payees.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Landlord: Expenses:Rent\nMigros: Expenses:Groceries\n"), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Expenses:Rent", m["Landlord"])
	assert.Equal(t, "Expenses:Groceries", m["Migros"])
}

func TestLoad_MissingFile(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payees.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payees.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- just\n- a\n- list\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payees.yaml")
	want := map[string]string{"Landlord": "Expenses:Rent"}

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
