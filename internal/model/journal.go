package model

import "github.com/shopspring/decimal"

// JournalLine is one posting of a journal entry.
type JournalLine struct {
	AccountID   string          `json:"accountId"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`  // zero if credit side
	Credit      decimal.Decimal `json:"credit"` // zero if debit side
}

// JournalEntry is the double-entry form of a single Transaction.
// ID equals the source transaction ID.
type JournalEntry struct {
	ID          string        `json:"id"`
	Date        string        `json:"date"`
	Reference   string        `json:"reference"`
	Description string        `json:"description"`
	Lines       []JournalLine `json:"lines"`
}

// Totals returns the debit and credit sums over all lines.
func (e JournalEntry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// Balanced reports whether total debits equal total credits.
func (e JournalEntry) Balanced() bool {
	d, c := e.Totals()
	return d.Equal(c)
}

// IncomeStatement summarizes revenue and expense postings.
type IncomeStatement struct {
	Revenue   decimal.Decimal `json:"revenue"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetIncome decimal.Decimal `json:"netIncome"`
}

// BalanceSheet summarizes balance postings. Equity includes net income.
type BalanceSheet struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
}
