package journal

import (
	"fmt"

	"github.com/cleared-dev/rentbook/internal/model"
)

// Invariant numbers reported by ValidateEntries.
const (
	InvariantBalanced    = 1
	InvariantOneSide     = 2
	InvariantAccount     = 3
	InvariantNonNegative = 4
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// AccountChecker tests whether an account code exists in the chart of accounts.
type AccountChecker interface {
	Exists(code string) bool
}

// ValidateEntries checks derived entries against the ledger invariants.
// The rule table satisfies them by construction; this guards rule changes.
func ValidateEntries(entries []model.JournalEntry, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	for _, e := range entries {
		// Invariant 1: sum(debits) == sum(credits).
		debit, credit := e.Totals()
		if !debit.Equal(credit) {
			errs = append(errs, ValidationError{
				Invariant:   InvariantBalanced,
				EntryID:     e.ID,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", debit.StringFixed(2), credit.StringFixed(2)),
			})
		}

		for i, line := range e.Lines {
			// Invariant 2: exactly one of debit/credit per line.
			if line.Debit.IsZero() == line.Credit.IsZero() {
				errs = append(errs, ValidationError{
					Invariant:   InvariantOneSide,
					EntryID:     e.ID,
					Description: fmt.Sprintf("line %d must have exactly one of debit or credit", i+1),
				})
			}

			// Invariant 3: valid account references.
			if accounts != nil && !accounts.Exists(line.AccountID) {
				errs = append(errs, ValidationError{
					Invariant:   InvariantAccount,
					EntryID:     e.ID,
					Description: fmt.Sprintf("unknown account %s", line.AccountID),
				})
			}

			// Invariant 4: postings are never negative.
			if line.Debit.IsNegative() || line.Credit.IsNegative() {
				errs = append(errs, ValidationError{
					Invariant:   InvariantNonNegative,
					EntryID:     e.ID,
					Description: fmt.Sprintf("line %d has a negative amount", i+1),
				})
			}
		}
	}

	return errs
}
