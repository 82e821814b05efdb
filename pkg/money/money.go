package money

import (
	"strings"

	"github.com/VladPetriv/money/pkg/currency"
	"github.com/shopspring/decimal"
)

// Money represents custom type for processing money amounts.
type Money struct {
	decimal decimal.Decimal
}

// Zero represents zero (0) amount.
// Zero always equals to 0 and to 0.0...N.
var Zero = NewFromInt(0)

// NewFromString parses string and returns decimal amount.
// If s is empty, will be returned Zero without throwing an error.
func NewFromString(s string) (Money, error) {
	if len(s) == 0 {
		return Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, err
	}
	return Money{d}, nil
}

// NewFromInt returns decimal from integer number.
func NewFromInt(i int64) Money {
	return Money{decimal.NewFromInt(i)}
}

// NewFromSubunits converts amount of subunits (cents, pennies, ...) into units of the currency.
func NewFromSubunits(subunits int64, c *currency.Currency) Money {
	return Money{decimal.NewFromInt(subunits).Div(decimal.NewFromInt(int64(c.SubunitToUnit())))}
}

// Subunits returns amount in subunits of the currency, rounded to the nearest one.
func (m Money) Subunits(c *currency.Currency) int64 {
	return m.decimal.Mul(decimal.NewFromInt(int64(c.SubunitToUnit()))).Round(0).IntPart()
}

// Equal checks if amounts are equal.
func (m Money) Equal(right Money) bool {
	return m.decimal.Equal(right.decimal)
}

// String returns string representation of the amount without rounding.
func (m Money) String() string {
	return m.decimal.String()
}

// Format returns amount formatted by the rules of the currency:
// it's rounded to the currency subunit, digits are grouped with thousands separator,
// decimal mark and symbol placement are taken from the currency.
//
// For example 1234.5 in USD is "$1,234.50" and in EUR with symbol after amount "1.234,50 €".
func (m Money) Format(c *currency.Currency) string {
	exponent := c.Exponent()
	rounded := m.decimal.Round(exponent)

	integer, fraction, _ := strings.Cut(rounded.Abs().StringFixed(exponent), ".")

	var builder strings.Builder
	if rounded.IsNegative() {
		builder.WriteString("-")
	}
	if c.SymbolFirst() {
		builder.WriteString(c.Code())
	}

	builder.WriteString(groupThousands(integer, c.ThousandsSeparator()))
	if fraction != "" {
		builder.WriteString(c.DecimalMark())
		builder.WriteString(fraction)
	}

	if !c.SymbolFirst() {
		builder.WriteString(" ")
		builder.WriteString(c.Code())
	}

	return builder.String()
}

func groupThousands(digits, separator string) string {
	if separator == "" || len(digits) <= 3 {
		return digits
	}

	var builder strings.Builder
	head := len(digits) % 3
	if head > 0 {
		builder.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if builder.Len() > 0 {
			builder.WriteString(separator)
		}
		builder.WriteString(digits[i : i+3])
	}

	return builder.String()
}
