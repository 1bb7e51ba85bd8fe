package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Tables(t *testing.T) {
	d := Default()

	require.Len(t, d.Identities, 2)
	require.Len(t, d.Postings, 4)
	require.Len(t, d.Transactions, 3)

	assert.Equal(t, "user1", d.Identities[0].Username)
	assert.Equal(t, 3, d.Postings[2].ID)
	assert.False(t, d.Postings[2].Favorited)
	assert.True(t, d.Balance.Equal(decimal.RequireFromString("12345.67")))
}

func TestDefault_ReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Postings[0].Favorited = true

	assert.False(t, Default().Postings[0].Favorited)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Len(t, d.Postings, 4)
}

func TestLoad_OverridesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"identities": [{"id": 7, "username": "ops", "secret": "s3cret", "display_name": "Ops"}],
		"postings": [{"id": 10, "title": "Courier", "compensation": "900", "employer": "Depot", "location": "Kazan", "contact_phone": "+7000"}]
	}`), 0o600))

	d, err := Load(path)
	require.NoError(t, err)

	require.Len(t, d.Identities, 1)
	assert.Equal(t, "s3cret", d.Identities[0].Secret)
	require.Len(t, d.Postings, 1)
	assert.Equal(t, "Courier", d.Postings[0].Title)
	assert.Len(t, d.Transactions, 3, "ledger keeps built-in values")
}

func TestLoad_BalanceWithoutTransactions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"balance": "0"}`), 0o600))

	d, err := Load(path)
	require.NoError(t, err)

	assert.True(t, d.Balance.IsZero(), "explicit zero balance is applied")
	assert.Len(t, d.Transactions, 3)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ nope`), 0o600))
	_, err = Load(bad)
	require.Error(t, err)
}
