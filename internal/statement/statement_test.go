package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/rentbook/internal/journal"
	"github.com/cleared-dev/rentbook/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(id string, c model.Category, amount, desc, contra string) model.Transaction {
	return model.Transaction{ID: id, Date: "2023-10-01", Description: desc, Category: c, Amount: dec(amount), ContraAccount: contra}
}

func derive(t *testing.T, txns ...model.Transaction) []model.JournalEntry {
	t.Helper()
	entries, err := journal.DeriveAll(txns)
	require.NoError(t, err)
	return entries
}

func sample() []model.Transaction {
	return []model.Transaction{
		txn("T001", model.CategoryRevenue, "540000", "Rental - B002 NMAX", "Cash"),
		txn("T002", model.CategoryExpense, "-150000", "Oil Change - B003", "Cash"),
		txn("T003", model.CategoryRevenue, "300000", "Rental - B001 Vario", "Bank Transfer"),
		txn("T004", model.CategoryExpense, "-5000000", "Shop Rent October", "Bank Transfer"),
		txn("T005", model.CategoryAsset, "-750000", "New Helmet Purchase", "Cash"),
	}
}

func TestCompute_Sample(t *testing.T) {
	r := Compute(derive(t, sample()...))

	assert.True(t, r.Income.Revenue.Equal(dec("840000")))
	assert.True(t, r.Income.Expenses.Equal(dec("5150000")))
	assert.True(t, r.Income.NetIncome.Equal(dec("-4310000")), "negative net income is a value, not an error")

	assert.True(t, r.Balance.Assets.Equal(dec("-4310000")))
	assert.True(t, r.Balance.Liabilities.IsZero())
	assert.True(t, r.Balance.Equity.Equal(dec("-4310000")))
	assert.True(t, r.Balanced())
}

func TestCompute_Empty(t *testing.T) {
	r := Compute(nil)
	assert.True(t, r.Income.Revenue.IsZero())
	assert.True(t, r.Income.NetIncome.IsZero())
	assert.True(t, r.Balance.Assets.IsZero())
	assert.True(t, r.Balanced())
}

func TestCompute_TieOutHoldsForSupportedCategories(t *testing.T) {
	cases := [][]model.Transaction{
		{txn("A", model.CategoryRevenue, "1", "x", "")},
		{txn("A", model.CategoryExpense, "-2.5", "Rent", "Cash")},
		{txn("A", model.CategoryAsset, "-1000", "Bike", "")},
		{
			txn("A", model.CategoryRevenue, "10.000", "x", "Bank"),
			txn("B", model.CategoryExpense, "-99.99", "Tyres", ""),
			txn("C", model.CategoryAsset, "-7", "Helmet", "Cash"),
			txn("D", model.CategoryRevenue, "0.01", "x", "Cash"),
		},
	}
	for i, txns := range cases {
		r := Compute(derive(t, txns...))
		assert.True(t, r.Balanced(), "case %d: assets %s != liabilities %s + equity %s",
			i, r.Balance.Assets, r.Balance.Liabilities, r.Balance.Equity)
	}
}

func TestCompute_SurfacesImbalance(t *testing.T) {
	// A one-sided posting, as a broken rule would produce.
	entries := []model.JournalEntry{{
		ID: "BAD",
		Lines: []model.JournalLine{
			{AccountID: "1002", Debit: dec("100")},
			{AccountID: "2001", Credit: dec("40")},
		},
	}}

	r := Compute(entries)
	assert.False(t, r.Balanced())
	assert.True(t, r.Imbalance.Equal(dec("60")))
	assert.True(t, r.Balance.Liabilities.Equal(dec("40")))
}

func TestBalance_EquityAndLiabilityLines(t *testing.T) {
	entries := []model.JournalEntry{{
		ID: "CAP",
		Lines: []model.JournalLine{
			{AccountID: "1002", Debit: dec("1000")},
			{AccountID: "3001", Credit: dec("1000")},
		},
	}, {
		ID: "LOAN",
		Lines: []model.JournalLine{
			{AccountID: "1001", Debit: dec("500")},
			{AccountID: "2001", Credit: dec("500")},
		},
	}}

	r := Compute(entries)
	assert.True(t, r.Balance.Assets.Equal(dec("1500")))
	assert.True(t, r.Balance.Liabilities.Equal(dec("500")))
	assert.True(t, r.Balance.Equity.Equal(dec("1000")))
	assert.True(t, r.Balanced())
}

func TestIncome_IgnoresOtherClasses(t *testing.T) {
	entries := []model.JournalEntry{{
		ID: "X",
		Lines: []model.JournalLine{
			{AccountID: "4001", Debit: dec("5")},
			{AccountID: "5001", Credit: dec("5")},
			{AccountID: "1002", Debit: dec("5")},
		},
	}}
	is := Income(entries)
	assert.True(t, is.Revenue.IsZero(), "revenue counts credits only")
	assert.True(t, is.Expenses.IsZero(), "expenses count debits only")
}

func TestCompute_Idempotent(t *testing.T) {
	entries := derive(t, sample()...)
	assert.Equal(t, Compute(entries), Compute(entries))
}

func TestCompute_DeleteAdjustsStatements(t *testing.T) {
	all := sample()
	without := append([]model.Transaction{}, all[:3]...)
	without = append(without, all[4])

	before := Compute(derive(t, all...))
	after := Compute(derive(t, without...))

	assert.True(t, before.Income.Expenses.Sub(after.Income.Expenses).Equal(dec("5000000")))
	assert.True(t, after.Balance.Assets.Sub(before.Balance.Assets).Equal(dec("5000000")))
	assert.True(t, after.Balanced())
}
