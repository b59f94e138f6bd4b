// Package statement folds journal entries into an income statement and a
// balance sheet, classifying lines by the leading digit of their account code.
package statement

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/rentbook/internal/model"
)

// Report is the pair of statements derived from one set of entries.
type Report struct {
	Income  model.IncomeStatement `json:"incomeStatement"`
	Balance model.BalanceSheet    `json:"balanceSheet"`
	// Imbalance is Assets - (Liabilities + Equity). Non-zero means a rule
	// or category produced postings that do not tie out.
	Imbalance decimal.Decimal `json:"imbalance"`
}

// Balanced reports whether assets equal liabilities plus equity.
func (r Report) Balanced() bool {
	return r.Imbalance.IsZero()
}

// Income sums credits on revenue (4xxx) lines and debits on expense (5xxx) lines.
func Income(entries []model.JournalEntry) model.IncomeStatement {
	revenue, expenses := decimal.Zero, decimal.Zero
	for _, e := range entries {
		for _, l := range e.Lines {
			switch model.Class(l.AccountID) {
			case '4':
				revenue = revenue.Add(l.Credit)
			case '5':
				expenses = expenses.Add(l.Debit)
			}
		}
	}
	return model.IncomeStatement{
		Revenue:   revenue,
		Expenses:  expenses,
		NetIncome: revenue.Sub(expenses),
	}
}

// Balance accumulates asset (1xxx) lines as debit-credit and liability (2xxx)
// and equity (3xxx) lines as credit-debit, then rolls netIncome into equity.
func Balance(entries []model.JournalEntry, netIncome decimal.Decimal) model.BalanceSheet {
	assets, liabilities, equity := decimal.Zero, decimal.Zero, decimal.Zero
	for _, e := range entries {
		for _, l := range e.Lines {
			switch model.Class(l.AccountID) {
			case '1':
				assets = assets.Add(l.Debit.Sub(l.Credit))
			case '2':
				liabilities = liabilities.Add(l.Credit.Sub(l.Debit))
			case '3':
				equity = equity.Add(l.Credit.Sub(l.Debit))
			}
		}
	}
	return model.BalanceSheet{
		Assets:      assets,
		Liabilities: liabilities,
		Equity:      equity.Add(netIncome),
	}
}

// Compute derives both statements from scratch.
func Compute(entries []model.JournalEntry) Report {
	income := Income(entries)
	balance := Balance(entries, income.NetIncome)
	return Report{
		Income:    income,
		Balance:   balance,
		Imbalance: balance.Assets.Sub(balance.Liabilities.Add(balance.Equity)),
	}
}
