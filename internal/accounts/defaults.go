package accounts

import "github.com/cleared-dev/rentbook/internal/model"

// Codes used by the journal rule table.
const (
	CodeCash         = "1001"
	CodeBank         = "1002"
	CodeFixedAssets  = "1200"
	CodePayable      = "2001"
	CodeOwnerCapital = "3001"
	CodeRentalIncome = "4001"
	CodeMaintenance  = "5001"
	CodeRentExpense  = "5002"
	CodeGeneralAdmin = "5003"
)

// Account names posted by the journal rule table.
const (
	DefaultBankName  = "Bank Central Asia"
	DefaultCashName  = "Cash"
	FixedAssetsName  = "Fixed Assets"
	RentalIncomeName = "Rental Income"
	MaintenanceName  = "Maintenance Expense"
	RentExpenseName  = "Rent Expense"

	cashOnHandName    = "Cash on Hand"
	fixedAssetsLedger = "Fixed Assets - Bikes"
)

// DefaultChart returns the chart of accounts of a motorcycle rental shop.
func DefaultChart() []model.Account {
	return []model.Account{
		{Code: "1000", Name: "Assets", Type: model.AccountTypeHeader},
		{Code: CodeCash, Name: cashOnHandName, Type: model.AccountTypeAsset},
		{Code: CodeBank, Name: DefaultBankName, Type: model.AccountTypeAsset},
		{Code: CodeFixedAssets, Name: fixedAssetsLedger, Type: model.AccountTypeAsset},
		{Code: "2000", Name: "Liabilities", Type: model.AccountTypeHeader},
		{Code: CodePayable, Name: "Accounts Payable", Type: model.AccountTypeLiability},
		{Code: "3000", Name: "Equity", Type: model.AccountTypeHeader},
		{Code: CodeOwnerCapital, Name: "Owner Capital", Type: model.AccountTypeEquity},
		{Code: "4000", Name: "Revenue", Type: model.AccountTypeHeader},
		{Code: CodeRentalIncome, Name: RentalIncomeName, Type: model.AccountTypeRevenue},
		{Code: "5000", Name: "Expenses", Type: model.AccountTypeHeader},
		{Code: CodeMaintenance, Name: MaintenanceName, Type: model.AccountTypeExpense},
		{Code: CodeRentExpense, Name: RentExpenseName, Type: model.AccountTypeExpense},
		{Code: CodeGeneralAdmin, Name: "General & Admin", Type: model.AccountTypeExpense},
	}
}
