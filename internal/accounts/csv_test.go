package accounts

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/rentbook/internal/model"
)

func TestDefaultChart(t *testing.T) {
	chart := DefaultChart()
	require.Len(t, chart, 14)

	codes := make(map[string]bool)
	for _, acct := range chart {
		assert.False(t, codes[acct.Code], "duplicate code %s", acct.Code)
		codes[acct.Code] = true
		assert.NotEmpty(t, acct.Name, "account %s missing name", acct.Code)
		assert.NotEmpty(t, acct.Type, "account %s missing type", acct.Code)

		if acct.Type == model.AccountTypeHeader {
			continue
		}
		classType, ok := ClassType(acct.Code)
		require.True(t, ok, "account %s has no class", acct.Code)
		assert.Equal(t, classType, acct.Type, "account %s type disagrees with its class digit", acct.Code)
	}

	for _, code := range []string{CodeCash, CodeBank, CodeFixedAssets, CodeRentalIncome, CodeMaintenance, CodeRentExpense} {
		assert.True(t, codes[code], "expected account %s", code)
	}
}

func TestReadTestdata(t *testing.T) {
	f, err := os.Open("../../testdata/chart-of-accounts.csv")
	require.NoError(t, err)
	defer f.Close()

	accounts, err := ReadAccounts(f)
	require.NoError(t, err)
	assert.Equal(t, DefaultChart(), accounts)
}

func TestWriteAccounts_Format(t *testing.T) {
	var buf bytes.Buffer
	err := WriteAccounts(&buf, []model.Account{
		{Code: "5003", Name: "General & Admin", Type: model.AccountTypeExpense},
	})
	require.NoError(t, err)
	assert.Equal(t, "code,name,type\n5003,General & Admin,expense\n", buf.String())
}

func TestUnmarshalAccount_BadCode(t *testing.T) {
	_, err := UnmarshalAccount([]string{"9001", "Suspense", "asset"})
	assert.Error(t, err)

	_, err = UnmarshalAccount([]string{"", "Nothing", "asset"})
	assert.Error(t, err)
}

func TestReadAccounts_WrongFieldCount(t *testing.T) {
	_, err := ReadAccounts(strings.NewReader("code,name,type\n1001,Cash\n"))
	assert.Error(t, err)
}

func TestReadAccounts_Empty(t *testing.T) {
	accts, err := ReadAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, accts)
}
