package journal

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/cleared-dev/rentbook/internal/model"
)

// lineRow is one exported general-journal line.
type lineRow struct {
	EntryID     string `csv:"entry_id"`
	Date        string `csv:"date"`
	Reference   string `csv:"reference"`
	Description string `csv:"description"`
	AccountID   string `csv:"account_id"`
	AccountName string `csv:"account_name"`
	Debit       string `csv:"debit"`
	Credit      string `csv:"credit"`
}

// Header is the CSV header written by WriteEntries.
const Header = "entry_id,date,reference,description,account_id,account_name,debit,credit"

// marshalLines flattens entries into one row per journal line. Zero sides
// are left blank.
func marshalLines(entries []model.JournalEntry) []lineRow {
	rows := make([]lineRow, 0, len(entries)*2)
	for _, e := range entries {
		for _, l := range e.Lines {
			row := lineRow{
				EntryID:     e.ID,
				Date:        e.Date,
				Reference:   e.Reference,
				Description: e.Description,
				AccountID:   l.AccountID,
				AccountName: l.AccountName,
			}
			if !l.Debit.IsZero() {
				row.Debit = l.Debit.StringFixed(2)
			}
			if !l.Credit.IsZero() {
				row.Credit = l.Credit.StringFixed(2)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// WriteEntries writes the general journal as CSV (including header).
func WriteEntries(w io.Writer, entries []model.JournalEntry) error {
	if err := gocsv.Marshal(marshalLines(entries), w); err != nil {
		return fmt.Errorf("writing journal CSV: %w", err)
	}
	return nil
}
