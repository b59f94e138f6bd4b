package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalEntryTotals(t *testing.T) {
	e := JournalEntry{
		ID: "T001",
		Lines: []JournalLine{
			{AccountID: "1002", Debit: decimal.NewFromInt(540000)},
			{AccountID: "4001", Credit: decimal.NewFromInt(540000)},
		},
	}
	d, c := e.Totals()
	assert.True(t, d.Equal(decimal.NewFromInt(540000)))
	assert.True(t, c.Equal(decimal.NewFromInt(540000)))
	assert.True(t, e.Balanced())

	e.Lines[1].Credit = decimal.NewFromInt(1)
	assert.False(t, e.Balanced())
}

func TestJournalEntryTotals_NoLines(t *testing.T) {
	d, c := JournalEntry{}.Totals()
	assert.True(t, d.IsZero())
	assert.True(t, c.IsZero())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"Revenue", CategoryRevenue, false},
		{"expense", CategoryExpense, false},
		{" ASSET ", CategoryAsset, false},
		{"liability", CategoryLiability, false},
		{"Equity", CategoryEquity, false},
		{"Income", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseCategory(%q)", tt.in)
			continue
		}
		assert.NoError(t, err, "ParseCategory(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestClass(t *testing.T) {
	assert.Equal(t, byte('1'), Class("1002"))
	assert.Equal(t, byte('5'), Class("5001"))
	assert.Equal(t, byte(0), Class(""))
}
