package ledger

import (
	"errors"

	"github.com/cleared-dev/rentbook/internal/accounts"
	"github.com/cleared-dev/rentbook/internal/journal"
	"github.com/cleared-dev/rentbook/internal/model"
	"github.com/cleared-dev/rentbook/internal/statement"
)

// Ledger is everything derived from one snapshot of transactions.
type Ledger struct {
	Entries []model.JournalEntry `json:"entries"`
	// Failures lists transactions whose category has no posting rule.
	Failures   []*journal.UnmappedCategoryError `json:"-"`
	Violations []journal.ValidationError        `json:"-"`
	Report     statement.Report                 `json:"report"`
}

// Build derives the journal and statements from txns, checking account
// codes against the default chart.
func Build(txns []model.Transaction) Ledger {
	return BuildWith(txns, accounts.Default())
}

// BuildWith is Build with a caller-supplied chart. A nil chart skips the
// account lookup.
func BuildWith(txns []model.Transaction, chart journal.AccountChecker) Ledger {
	entries, err := journal.DeriveAll(txns)
	return Ledger{
		Entries:    entries,
		Failures:   unmapped(err),
		Violations: journal.ValidateEntries(entries, chart),
		Report:     statement.Compute(entries),
	}
}

func unmapped(err error) []*journal.UnmappedCategoryError {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		var ue *journal.UnmappedCategoryError
		if errors.As(err, &ue) {
			return []*journal.UnmappedCategoryError{ue}
		}
		return nil
	}
	var out []*journal.UnmappedCategoryError
	for _, e := range joined.Unwrap() {
		var ue *journal.UnmappedCategoryError
		if errors.As(e, &ue) {
			out = append(out, ue)
		}
	}
	return out
}

// Complete reports whether every transaction was journalized and every
// entry passed validation.
func (l Ledger) Complete() bool {
	return len(l.Failures) == 0 && len(l.Violations) == 0
}
