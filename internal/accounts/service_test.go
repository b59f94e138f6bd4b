package accounts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/rentbook/internal/model"
)

func TestGetExists(t *testing.T) {
	svc := Default()

	acct, ok := svc.Get(CodeBank)
	assert.True(t, ok)
	assert.Equal(t, "Bank Central Asia", acct.Name)

	_, ok = svc.Get("9999")
	assert.False(t, ok)

	assert.True(t, svc.Exists(CodeRentalIncome))
	assert.False(t, svc.Exists("9999"))
	// Header rows are not postable.
	assert.False(t, svc.Exists("1000"))
}

func TestByType(t *testing.T) {
	svc := Default()

	assets := svc.ByType(model.AccountTypeAsset)
	assert.Len(t, assets, 3, "expected cash, bank and fixed assets")

	expenses := svc.ByType(model.AccountTypeExpense)
	assert.Len(t, expenses, 3)

	headers := svc.ByType(model.AccountTypeHeader)
	assert.Len(t, headers, 5)
}

func TestClassType(t *testing.T) {
	tests := []struct {
		code string
		want model.AccountType
		ok   bool
	}{
		{"1002", model.AccountTypeAsset, true},
		{"2001", model.AccountTypeLiability, true},
		{"3001", model.AccountTypeEquity, true},
		{"4001", model.AccountTypeRevenue, true},
		{"5002", model.AccountTypeExpense, true},
		{"9000", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ClassType(tt.code)
		assert.Equal(t, tt.ok, ok, "ClassType(%q)", tt.code)
		assert.Equal(t, tt.want, got, "ClassType(%q)", tt.code)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	svc := Default()

	dir := t.TempDir()
	require.NoError(t, svc.Save(dir))

	_, err := os.Stat(filepath.Join(dir, "accounts", "chart-of-accounts.csv"))
	require.NoError(t, err)

	svc2, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, svc.All(), svc2.All())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
