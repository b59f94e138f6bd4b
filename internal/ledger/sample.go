package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/rentbook/internal/model"
)

// SampleTransactions returns the demo book of a small scooter rental shop.
// Each call returns a fresh slice.
func SampleTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "T001", Date: "2023-10-01", Description: "Rental - B002 NMAX", Category: model.CategoryRevenue, Amount: decimal.NewFromInt(540000), Reference: "INV-1001", ContraAccount: "Cash"},
		{ID: "T002", Date: "2023-10-02", Description: "Oil Change - B003", Category: model.CategoryExpense, Amount: decimal.NewFromInt(-150000), Reference: "EXP-502", ContraAccount: "Cash"},
		{ID: "T003", Date: "2023-10-03", Description: "Rental - B001 Vario", Category: model.CategoryRevenue, Amount: decimal.NewFromInt(300000), Reference: "INV-1002", ContraAccount: "Bank Transfer"},
		{ID: "T004", Date: "2023-10-05", Description: "Shop Rent October", Category: model.CategoryExpense, Amount: decimal.NewFromInt(-5000000), Reference: "EXP-503", ContraAccount: "Bank Transfer"},
		{ID: "T005", Date: "2023-10-06", Description: "New Helmet Purchase", Category: model.CategoryAsset, Amount: decimal.NewFromInt(-750000), Reference: "AST-001", ContraAccount: "Cash"},
	}
}
