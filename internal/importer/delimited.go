package importer

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/rentbook/internal/amount"
	"github.com/cleared-dev/rentbook/internal/id"
	"github.com/cleared-dev/rentbook/internal/logging"
	"github.com/cleared-dev/rentbook/internal/model"
)

const (
	// DefaultDescription labels rows without a description column.
	DefaultDescription = "Imported Transaction"
	// DefaultContraAccount is the offsetting account of imported rows.
	DefaultContraAccount = "Bank"
)

// delimiters in tie-break precedence order.
var delimiters = []string{",", ";", "\t"}

var lineSplit = regexp.MustCompile(`\r\n|\n`)

// Column keywords, matched by substring against lower-cased header cells.
var (
	dateKeys   = []string{"date", "tgl"}
	descKeys   = []string{"desc", "keterangan"}
	refKeys    = []string{"ref", "no"}
	debitKeys  = []string{"debit", "in"}
	creditKeys = []string{"credit", "out"}
	amountKeys = []string{"amount", "jumlah", "saldo"}
)

// dateLayouts are tried in order when normalizing date cells to ISO-8601.
var dateLayouts = []string{
	model.DateFormat,
	"02/01/2006",
	"02-01-2006",
	"2006/01/02",
	"02.01.2006",
	"2 Jan 2006",
	"2 January 2006",
}

// Result is the outcome of one import.
type Result struct {
	Transactions []model.Transaction
	Skipped      int
	Errors       []*RowParseError
}

// columns holds the header index of each role, -1 when absent.
type columns struct {
	date, desc, ref, debit, credit, amount int
	width                                  int
}

// Reader turns delimited text with a header row into transactions.
type Reader struct {
	Amounts       amount.Parser
	ContraAccount string
	Now           func() time.Time
	Log           *logrus.Logger
}

// NewReader returns a Reader with the default amount policy and contra account.
func NewReader(log *logrus.Logger) *Reader {
	return &Reader{
		Amounts:       amount.Default,
		ContraAccount: DefaultContraAccount,
		Now:           time.Now,
		Log:           logging.OrDiscard(log),
	}
}

// Format returns the parser name.
func (r *Reader) Format() string { return "auto" }

// Parse reads everything from in and imports it with ReadText.
func (r *Reader) Parse(in io.Reader) (Result, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return Result{}, fmt.Errorf("reading import: %w", err)
	}
	return r.ReadText(string(data))
}

// ReadText imports text. Bad rows are skipped and counted; the import itself
// only fails with ErrEmptyInput or ErrNoTransactionsParsed. In the latter
// case the returned Result still carries the diagnostics.
func (r *Reader) ReadText(text string) (Result, error) {
	log := logging.OrDiscard(r.Log)

	var lines []string
	for _, l := range lineSplit.Split(text, -1) {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return Result{}, ErrEmptyInput
	}

	delim := detectDelimiter(lines[0])
	cols := mapColumns(splitRow(strings.ToLower(lines[0]), delim))
	log.WithFields(logrus.Fields{
		logging.FieldDelimiter: fmt.Sprintf("%q", delim),
		logging.FieldCount:     len(lines) - 1,
	}).Debug("Importing delimited text")

	if (cols.debit < 0 || cols.credit < 0) && cols.amount < 0 {
		log.Warn("No debit/credit or amount column found; rows carry no value")
	}

	var res Result
	for i, line := range lines[1:] {
		row := i + 2
		txn, ok, err := r.parseRow(log, splitRow(line, delim), cols, row)
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, err)
			entry := log.WithFields(logrus.Fields{
				logging.FieldRow:    row,
				logging.FieldReason: err.Reason,
			})
			if err.Err != nil {
				entry = entry.WithError(err.Err)
			}
			entry.Warn("Skipping import row")
			continue
		}
		if ok {
			res.Transactions = append(res.Transactions, txn)
		}
	}

	log.WithFields(logrus.Fields{
		logging.FieldCount:   len(res.Transactions),
		logging.FieldSkipped: res.Skipped,
	}).Info("Import finished")

	if len(res.Transactions) == 0 {
		return res, ErrNoTransactionsParsed
	}
	return res, nil
}

// parseRow converts one data row. ok is false when the row carries no value.
func (r *Reader) parseRow(log logrus.FieldLogger, cells []string, cols columns, row int) (model.Transaction, bool, *RowParseError) {
	if len(cells) < cols.width {
		return model.Transaction{}, false, &RowParseError{
			Row:    row,
			Reason: fmt.Sprintf("expected %d cells, got %d", cols.width, len(cells)),
		}
	}

	var (
		value    decimal.Decimal
		category model.Category
	)
	switch {
	case cols.debit >= 0 && cols.credit >= 0:
		debit, err := r.optionalAmount(cells[cols.debit])
		if err != nil {
			return model.Transaction{}, false, &RowParseError{Row: row, Reason: "parsing debit", Err: err}
		}
		credit, err := r.optionalAmount(cells[cols.credit])
		if err != nil {
			return model.Transaction{}, false, &RowParseError{Row: row, Reason: "parsing credit", Err: err}
		}
		switch {
		case credit.IsPositive():
			value, category = credit, model.CategoryRevenue
		case debit.IsPositive():
			value, category = debit.Neg(), model.CategoryExpense
		}
	case cols.amount >= 0:
		v, err := r.Amounts.Parse(cells[cols.amount])
		if err != nil {
			return model.Transaction{}, false, &RowParseError{Row: row, Reason: "parsing amount", Err: err}
		}
		value, category = v, model.CategoryRevenue
		if v.IsNegative() {
			category = model.CategoryExpense
		}
	default:
		return model.Transaction{}, false, nil
	}

	if value.IsZero() {
		return model.Transaction{}, false, nil
	}

	date, ok := r.date(cell(cells, cols.date))
	if !ok {
		log.WithFields(logrus.Fields{
			logging.FieldRow:  row,
			logging.FieldDate: date,
		}).Warn("Unrecognized date; keeping it as written")
	}

	desc := cell(cells, cols.desc)
	if desc == "" {
		desc = DefaultDescription
	}
	ref := cell(cells, cols.ref)
	if ref == "" {
		ref = id.ImportReference(row - 1)
	}
	contra := r.ContraAccount
	if contra == "" {
		contra = DefaultContraAccount
	}

	return model.Transaction{
		ID:            id.New(id.ImportPrefix),
		Date:          date,
		Description:   desc,
		Category:      category,
		Amount:        value,
		Reference:     ref,
		ContraAccount: contra,
	}, true, nil
}

// optionalAmount parses a debit/credit cell; an empty cell is zero.
func (r *Reader) optionalAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return r.Amounts.Parse(s)
}

// date normalizes s to ISO-8601, defaulting to today when s is empty.
// A date no layout recognizes comes back as written with ok false.
func (r *Reader) date(s string) (string, bool) {
	if s == "" {
		now := time.Now
		if r.Now != nil {
			now = r.Now
		}
		return now().Format(model.DateFormat), true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(model.DateFormat), true
		}
	}
	return s, false
}

// detectDelimiter picks the most frequent delimiter in the header line.
// Ties keep the earlier delimiter in precedence order.
func detectDelimiter(header string) string {
	best, bestCount := delimiters[0], strings.Count(header, delimiters[0])
	for _, d := range delimiters[1:] {
		if n := strings.Count(header, d); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// splitRow splits a line and strips whitespace and double quotes per cell.
func splitRow(line, delim string) []string {
	cells := strings.Split(line, delim)
	for i, c := range cells {
		cells[i] = strings.TrimSpace(strings.ReplaceAll(c, `"`, ""))
	}
	return cells
}

func mapColumns(header []string) columns {
	return columns{
		date:   findColumn(header, dateKeys),
		desc:   findColumn(header, descKeys),
		ref:    findColumn(header, refKeys),
		debit:  findColumn(header, debitKeys),
		credit: findColumn(header, creditKeys),
		amount: findColumn(header, amountKeys),
		width:  len(header),
	}
}

// findColumn returns the first header cell containing any keyword, or -1.
func findColumn(header, keys []string) int {
	for i, h := range header {
		for _, k := range keys {
			if strings.Contains(h, k) {
				return i
			}
		}
	}
	return -1
}

func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}
