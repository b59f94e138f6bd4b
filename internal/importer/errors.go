package importer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput means the text has no data rows below the header.
	ErrEmptyInput = errors.New("import: no data rows")
	// ErrNoTransactionsParsed means every row was skipped or had a zero amount.
	ErrNoTransactionsParsed = errors.New("import: no transactions parsed")
)

// RowParseError records a data row that was skipped. It never aborts an import.
type RowParseError struct {
	Row    int // 1-based position among non-blank lines; the header is row 1
	Reason string
	Err    error
}

func (e *RowParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("row %d: %s: %v", e.Row, e.Reason, e.Err)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

func (e *RowParseError) Unwrap() error {
	return e.Err
}
