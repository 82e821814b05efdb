package model

import (
	"time"

	"github.com/VladPetriv/money/pkg/currency"
)

// Currency represents persisted currency definition.
type Currency struct {
	ID                 string    `db:"id"`
	Code               string    `db:"code"`
	Priority           int       `db:"priority"`
	ISOCode            string    `db:"iso_code"`
	ISONumeric         string    `db:"iso_numeric"`
	Name               string    `db:"name"`
	Symbol             string    `db:"symbol"`
	Subunit            string    `db:"subunit"`
	SubunitToUnit      int       `db:"subunit_to_unit"`
	SymbolFirst        bool      `db:"symbol_first"`
	HTMLEntity         string    `db:"html_entity"`
	DecimalMark        string    `db:"decimal_mark"`
	ThousandsSeparator string    `db:"thousands_separator"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// NewCurrency converts currency into its persisted form.
func NewCurrency(id string, c *currency.Currency) *Currency {
	record := c.Record()

	return &Currency{
		ID:                 id,
		Code:               c.ID(),
		Priority:           record.Priority,
		ISOCode:            record.ISOCode,
		ISONumeric:         record.ISONumeric,
		Name:               record.Name,
		Symbol:             record.Symbol,
		Subunit:            record.Subunit,
		SubunitToUnit:      record.SubunitToUnit,
		SymbolFirst:        record.SymbolFirst,
		HTMLEntity:         record.HTMLEntity,
		DecimalMark:        record.DecimalMark,
		ThousandsSeparator: record.ThousandsSeparator,
	}
}

// Record returns currency definition stored in the model.
func (c Currency) Record() currency.Record {
	return currency.Record{
		Priority:           c.Priority,
		ISOCode:            c.ISOCode,
		ISONumeric:         c.ISONumeric,
		Name:               c.Name,
		Symbol:             c.Symbol,
		Subunit:            c.Subunit,
		SubunitToUnit:      c.SubunitToUnit,
		SymbolFirst:        c.SymbolFirst,
		HTMLEntity:         c.HTMLEntity,
		DecimalMark:        c.DecimalMark,
		ThousandsSeparator: c.ThousandsSeparator,
	}
}

