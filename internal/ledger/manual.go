package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/rentbook/internal/id"
	"github.com/cleared-dev/rentbook/internal/model"
)

// ErrInvalidTransaction is returned for manual input that cannot be booked.
var ErrInvalidTransaction = errors.New("invalid transaction")

// DefaultManualContra is the offsetting account of hand-entered transactions.
const DefaultManualContra = "Cash"

// ManualInput is a hand-entered transaction before validation.
type ManualInput struct {
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Category      model.Category  `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference"`
	ContraAccount string          `json:"contraAccount"`
}

// NewTransaction validates in and fills defaults: today's date, Revenue as
// category, a REF-NNN reference, contraDefault as contra account
// (DefaultManualContra when empty) and a fresh TX- id. The amount keeps the
// sign it was entered with.
func NewTransaction(in ManualInput, contraDefault string, now time.Time) (model.Transaction, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return model.Transaction{}, fmt.Errorf("%w: description is required", ErrInvalidTransaction)
	}
	if in.Amount.IsZero() {
		return model.Transaction{}, fmt.Errorf("%w: amount must be non-zero", ErrInvalidTransaction)
	}

	category := model.CategoryRevenue
	if in.Category != "" {
		c, err := model.ParseCategory(string(in.Category))
		if err != nil {
			return model.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
		}
		category = c
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = now.Format(model.DateFormat)
	} else if _, err := time.Parse(model.DateFormat, date); err != nil {
		return model.Transaction{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidTransaction, in.Date)
	}

	ref := strings.TrimSpace(in.Reference)
	if ref == "" {
		ref = id.ManualReference()
	}

	contra := strings.TrimSpace(in.ContraAccount)
	if contra == "" {
		contra = contraDefault
	}
	if contra == "" {
		contra = DefaultManualContra
	}

	return model.Transaction{
		ID:            id.New(id.ManualPrefix),
		Date:          date,
		Description:   desc,
		Category:      category,
		Amount:        in.Amount,
		Reference:     ref,
		ContraAccount: contra,
	}, nil
}
