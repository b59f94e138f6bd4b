package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/rentbook/internal/amount"
	"github.com/cleared-dev/rentbook/internal/id"
	"github.com/cleared-dev/rentbook/internal/logging"
	"github.com/cleared-dev/rentbook/internal/model"
)

// ChaseParser parses Chase checking CSV exports. Amounts use '.' as the
// decimal point, so it parses them with the DotDecimal policy.
type ChaseParser struct {
	log *logrus.Logger
}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColDesc    = 2
	chaseColAmount  = 3
	chaseColRef     = 6
)

var chaseAmounts = amount.Parser{SingleDot: amount.DotDecimal}

// NewChaseParser creates a ChaseParser.
func NewChaseParser(log *logrus.Logger) *ChaseParser {
	return &ChaseParser{log: logging.OrDiscard(log)}
}

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV. Bad rows are skipped like in the delimited reader.
func (p *ChaseParser) Parse(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("reading chase CSV: %w", err)
	}

	if len(records) <= 1 {
		return Result{}, ErrEmptyInput
	}

	var res Result
	for i, rec := range records[1:] {
		txn, err := parseChaseRow(rec, i+2)
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, err)
			p.log.WithField(logging.FieldParser, p.Format()).Warn(err.Error())
			continue
		}
		if txn.Amount.IsZero() {
			continue
		}
		res.Transactions = append(res.Transactions, txn)
	}
	if len(res.Transactions) == 0 {
		return res, ErrNoTransactionsParsed
	}
	return res, nil
}

func parseChaseRow(rec []string, row int) (model.Transaction, *RowParseError) {
	if len(rec) != chaseNumFields {
		return model.Transaction{}, &RowParseError{Row: row, Reason: fmt.Sprintf("expected %d fields, got %d", chaseNumFields, len(rec))}
	}

	date, err := time.Parse(chaseDateFormat, rec[chaseColDate])
	if err != nil {
		return model.Transaction{}, &RowParseError{Row: row, Reason: "parsing date", Err: err}
	}

	value, err := chaseAmounts.Parse(rec[chaseColAmount])
	if err != nil {
		return model.Transaction{}, &RowParseError{Row: row, Reason: "parsing amount", Err: err}
	}

	category := model.CategoryRevenue
	if value.IsNegative() {
		category = model.CategoryExpense
	}

	desc := rec[chaseColDesc]
	ref := strings.TrimSpace(rec[chaseColRef])
	if ref == "" {
		ref = makeChaseRef(date, desc)
	}

	return model.Transaction{
		ID:            id.New(id.ImportPrefix),
		Date:          date.Format(model.DateFormat),
		Description:   desc,
		Category:      category,
		Amount:        value,
		Reference:     ref,
		ContraAccount: DefaultContraAccount,
	}, nil
}

// makeChaseRef creates a reference like chase_20250103_GITHUB.
func makeChaseRef(date time.Time, desc string) string {
	prefix := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, desc)
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return fmt.Sprintf("chase_%s_%s", date.Format("20060102"), prefix)
}
