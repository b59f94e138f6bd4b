package journal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/rentbook/internal/accounts"
	"github.com/cleared-dev/rentbook/internal/model"
)

// ErrUnmappedCategory matches every UnmappedCategoryError via errors.Is.
var ErrUnmappedCategory = errors.New("unmapped category")

// UnmappedCategoryError reports a transaction whose category has no rule.
type UnmappedCategoryError struct {
	TransactionID string
	Category      model.Category
}

func (e *UnmappedCategoryError) Error() string {
	return fmt.Sprintf("transaction %s: no journal rule for category %q", e.TransactionID, e.Category)
}

// Is makes errors.Is(err, ErrUnmappedCategory) true.
func (e *UnmappedCategoryError) Is(target error) bool {
	return target == ErrUnmappedCategory
}

// posting names the account a rule posts to.
type posting struct {
	code string
	name string
}

// rule is one row of the mapping table: debit one account, credit another.
type rule struct {
	debit  posting
	credit posting
}

// ruleFor selects the mapping for t. Every Category must appear in the switch;
// categories without a rule return an UnmappedCategoryError.
func ruleFor(t model.Transaction) (rule, error) {
	switch t.Category {
	case model.CategoryRevenue:
		return rule{
			debit:  contraPosting(t.ContraAccount),
			credit: posting{accounts.CodeRentalIncome, accounts.RentalIncomeName},
		}, nil
	case model.CategoryExpense:
		return rule{
			debit:  expensePosting(t.Description),
			credit: contraPosting(t.ContraAccount),
		}, nil
	case model.CategoryAsset:
		return rule{
			debit:  posting{accounts.CodeFixedAssets, accounts.FixedAssetsName},
			credit: posting{accounts.CodeCash, accounts.DefaultCashName},
		}, nil
	case model.CategoryLiability, model.CategoryEquity:
		return rule{}, &UnmappedCategoryError{TransactionID: t.ID, Category: t.Category}
	default:
		return rule{}, &UnmappedCategoryError{TransactionID: t.ID, Category: t.Category}
	}
}

// contraPosting resolves the cash/bank side. Cash-like names post to the
// cash account; anything else posts to the bank account under its own name.
func contraPosting(contra string) posting {
	name := strings.TrimSpace(contra)
	if name == "" {
		return posting{accounts.CodeBank, accounts.DefaultBankName}
	}
	if strings.HasPrefix(strings.ToLower(name), "cash") {
		return posting{accounts.CodeCash, name}
	}
	return posting{accounts.CodeBank, name}
}

func expensePosting(description string) posting {
	if strings.Contains(description, "Rent") {
		return posting{accounts.CodeRentExpense, accounts.RentExpenseName}
	}
	return posting{accounts.CodeMaintenance, accounts.MaintenanceName}
}

// Derive maps a transaction to its two-line journal entry. It is pure: the
// same transaction always yields the same entry.
func Derive(t model.Transaction) (model.JournalEntry, error) {
	r, err := ruleFor(t)
	if err != nil {
		return model.JournalEntry{}, err
	}

	amt := t.Amount.Abs()
	return model.JournalEntry{
		ID:          t.ID,
		Date:        t.Date,
		Reference:   t.Reference,
		Description: t.Description,
		Lines: []model.JournalLine{
			{AccountID: r.debit.code, AccountName: r.debit.name, Debit: amt, Credit: decimal.Zero},
			{AccountID: r.credit.code, AccountName: r.credit.name, Debit: decimal.Zero, Credit: amt},
		},
	}, nil
}

// DeriveAll derives entries in input order. Transactions that cannot be
// mapped are left out of the result and reported in the joined error.
func DeriveAll(txns []model.Transaction) ([]model.JournalEntry, error) {
	entries := make([]model.JournalEntry, 0, len(txns))
	var errs []error
	for _, t := range txns {
		e, err := Derive(t)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, errors.Join(errs...)
}
