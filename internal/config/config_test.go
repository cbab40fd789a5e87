package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beanport.yaml")

	want := &Config{
		PayeeMapping: "payees.yaml",
		Importers: []ImporterSpec{
			{Format: "revolut", Account: "Assets:Revolut:Cash", Currency: "GBP"},
			{Format: "swisscard", Account: "Assets:CashBackCard:Cash", Pattern: `cards/.*\.csv`},
		},
	}

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beanport.yaml")
	require.NoError(t, os.WriteFile(path, []byte("importers: {not: a list}"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "payees.yaml", cfg.PayeeMapping)
	require.Len(t, cfg.Importers, 3)
	assert.Equal(t, "revolut", cfg.Importers[0].Format)
	assert.Equal(t, "neon", cfg.Importers[1].Format)
	assert.Equal(t, "swisscard", cfg.Importers[2].Format)
}
