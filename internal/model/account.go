package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeHeader    AccountType = "header"
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Account is one row of the chart of accounts. The first digit of Code
// is the account class: 1 asset, 2 liability, 3 equity, 4 revenue, 5 expense.
type Account struct {
	Code string      `json:"code"`
	Name string      `json:"name"`
	Type AccountType `json:"type"`
}

// Class returns the account class digit of a code, or 0 for an empty code.
func Class(code string) byte {
	if code == "" {
		return 0
	}
	return code[0]
}
