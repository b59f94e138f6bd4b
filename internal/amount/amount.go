// Package amount parses currency-formatted strings into signed decimals.
//
// Bank exports mix separator conventions ("1,234,567.00", "10.000,50",
// "Rp 1.234.567"). When both '.' and ',' appear, the last one is the
// decimal separator. A lone ',' is a decimal separator. A lone '.' is
// ambiguous and resolved by the Parser's DotPolicy.
package amount

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ErrNotANumber is returned when no number can be extracted from the input.
// It means "no value", never zero.
var ErrNotANumber = errors.New("not a number")

// DotPolicy decides how a string whose only separator is a single '.' is read.
type DotPolicy int

const (
	// DotGrouping treats a lone '.' as a thousands separator ("10.000" = 10000).
	// This matches Indonesian Rupiah exports.
	DotGrouping DotPolicy = iota
	// DotDecimal treats a lone '.' as the decimal point ("4.00" = 4).
	DotDecimal
)

// String returns the config name of the policy.
func (p DotPolicy) String() string {
	if p == DotDecimal {
		return "decimal"
	}
	return "grouping"
}

// ParseDotPolicy maps a config value ("grouping" or "decimal") to a DotPolicy.
func ParseDotPolicy(s string) (DotPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grouping":
		return DotGrouping, nil
	case "decimal":
		return DotDecimal, nil
	default:
		return DotGrouping, fmt.Errorf("unknown single-dot policy %q (want grouping or decimal)", s)
	}
}

// Parser converts raw amount strings using a configurable DotPolicy.
type Parser struct {
	SingleDot DotPolicy
}

// Default is the Rupiah-oriented parser used when nothing else is configured.
var Default = Parser{SingleDot: DotGrouping}

// Parse parses raw with the Default parser.
func Parse(raw string) (decimal.Decimal, error) {
	return Default.Parse(raw)
}

// Parse returns the signed value of raw, or an error wrapping ErrNotANumber.
func (p Parser) Parse(raw string) (decimal.Decimal, error) {
	stripped := false
	clean := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.Is(unicode.Sc, r) {
			stripped = true
			return -1
		}
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	negative := false
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		negative = true
		clean = clean[1 : len(clean)-1]
		if strings.ContainsAny(clean, "()+-") {
			return decimal.Zero, fmt.Errorf("%q: %w", raw, ErrNotANumber)
		}
	}

	// "Rp. 150" leaves ".150" behind once the token is gone.
	if stripped {
		sign := ""
		if strings.HasPrefix(clean, "-") {
			sign, clean = "-", clean[1:]
		}
		clean = sign + strings.TrimLeft(clean, ".,")
	}

	if !strings.ContainsFunc(clean, unicode.IsDigit) {
		return decimal.Zero, fmt.Errorf("%q: %w", raw, ErrNotANumber)
	}

	clean = p.normalizeSeparators(clean)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", raw, ErrNotANumber)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// normalizeSeparators rewrites s so that '.' is the only (decimal) separator.
func (p Parser) normalizeSeparators(s string) string {
	dots := strings.Count(s, ".")
	commas := strings.Count(s, ",")

	switch {
	case dots > 0 && commas > 0:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case commas == 1:
		return strings.Replace(s, ",", ".", 1)
	case commas > 1:
		return strings.ReplaceAll(s, ",", "")
	case dots == 1 && p.SingleDot == DotDecimal:
		return s
	case dots > 0:
		return strings.ReplaceAll(s, ".", "")
	}
	return s
}

// Format renders d Rupiah style: '.' grouping, ',' decimals, two places
// only when d has a fractional part.
func Format(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	intPart := d.Truncate(0)
	frac := d.Sub(intPart)

	digits := intPart.String()
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := sign + b.String()
	if !frac.IsZero() {
		out += "," + frac.StringFixed(2)[2:]
	}
	return out
}
