package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category drives journal mapping for a transaction.
type Category string

const (
	CategoryRevenue   Category = "Revenue"
	CategoryExpense   Category = "Expense"
	CategoryAsset     Category = "Asset"
	CategoryLiability Category = "Liability"
	CategoryEquity    Category = "Equity"
)

// Categories returns every category variant in declaration order.
func Categories() []Category {
	return []Category{CategoryRevenue, CategoryExpense, CategoryAsset, CategoryLiability, CategoryEquity}
}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// DateFormat is the ISO-8601 calendar date layout used for Transaction.Date.
const DateFormat = "2006-01-02"

// Transaction is an immutable input record of the ledger.
type Transaction struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Category      Category        `json:"category"`
	Amount        decimal.Decimal `json:"amount"` // inflow positive, outflow negative
	Reference     string          `json:"reference"`
	ContraAccount string          `json:"contraAccount,omitempty"`
}
