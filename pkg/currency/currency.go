package currency

import (
	"cmp"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"slices"
)

// Currency represents an immutable currency built from a table record.
// Two currencies are equal when their identifiers are equal.
type Currency struct {
	id     string
	record Record
}

func newCurrency(id string, record Record) *Currency {
	return &Currency{id: id, record: record}
}

// ID returns lower-cased identifier of the currency, e.g. "usd".
func (c *Currency) ID() string { return c.id }

// Priority is used for default ordering, lower is more common.
func (c *Currency) Priority() int { return c.record.Priority }

// ISOCode returns ISO 4217 alphabetic code.
func (c *Currency) ISOCode() string { return c.record.ISOCode }

// ISONumeric returns ISO 4217 numeric code.
func (c *Currency) ISONumeric() string { return c.record.ISONumeric }

func (c *Currency) Name() string { return c.record.Name }

func (c *Currency) Symbol() string { return c.record.Symbol }

func (c *Currency) Subunit() string { return c.record.Subunit }

// SubunitToUnit returns how many subunits make one unit.
func (c *Currency) SubunitToUnit() int { return c.record.SubunitToUnit }

// SymbolFirst reports whether symbol precedes the amount.
func (c *Currency) SymbolFirst() bool { return c.record.SymbolFirst }

func (c *Currency) HTMLEntity() string { return c.record.HTMLEntity }

func (c *Currency) DecimalMark() string { return c.record.DecimalMark }

func (c *Currency) ThousandsSeparator() string { return c.record.ThousandsSeparator }

// Separator is an alias of DecimalMark.
func (c *Currency) Separator() string { return c.record.DecimalMark }

// Delimiter is an alias of ThousandsSeparator.
func (c *Currency) Delimiter() string { return c.record.ThousandsSeparator }

// Exponent returns number of decimal places needed to represent one subunit.
// For example 100 gives 2, 1 gives 0 and 1000 gives 3.
func (c *Currency) Exponent() int32 {
	var places int32
	for unit := 1; unit < c.record.SubunitToUnit; unit *= 10 {
		places++
	}

	return places
}

// Record returns a copy of the definition the currency was built from.
func (c *Currency) Record() Record { return c.record }

// Compare compares currencies by priority.
// Returns -1 if c goes before other, +1 if after and 0 for the same priority.
func (c *Currency) Compare(other *Currency) int {
	return cmp.Compare(c.record.Priority, other.record.Priority)
}

// Less reports whether c goes before other.
func (c *Currency) Less(other *Currency) bool {
	return c.Compare(other) < 0
}

// Equal reports whether both currencies have the same identifier.
func (c *Currency) Equal(other *Currency) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}

	return c.id == other.id
}

// Hash returns hash of the identifier, equal currencies have equal hashes.
func (c *Currency) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(c.id))

	return h.Sum64()
}

// String returns upper-cased ISO code, e.g. "USD".
func (c *Currency) String() string {
	return upper(c.record.ISOCode)
}

// Code returns currency symbol or ISO code when currency has no symbol.
func (c *Currency) Code() string {
	if c.record.Symbol != "" {
		return c.record.Symbol
	}

	return c.String()
}

// Inspect returns debug representation with all fields in a stable order.
func (c *Currency) Inspect() string {
	return fmt.Sprintf(
		"#<Currency id: %s, priority: %d, symbol_first: %t, thousands_separator: %s, html_entity: %s, decimal_mark: %s, name: %s, symbol: %s, subunit_to_unit: %d, iso_code: %s, iso_numeric: %s, subunit: %s>",
		c.id,
		c.record.Priority,
		c.record.SymbolFirst,
		c.record.ThousandsSeparator,
		c.record.HTMLEntity,
		c.record.DecimalMark,
		c.record.Name,
		c.record.Symbol,
		c.record.SubunitToUnit,
		c.record.ISOCode,
		c.record.ISONumeric,
		c.record.Subunit,
	)
}

// GoString makes %#v print the same as Inspect.
func (c *Currency) GoString() string {
	return c.Inspect()
}

// ToCurrency returns c itself.
func (c *Currency) ToCurrency() *Currency {
	return c
}

type currencyJSON struct {
	ID string `json:"id"`
	Record
}

// MarshalJSON encodes record fields together with the identifier.
func (c *Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(currencyJSON{ID: c.id, Record: c.record})
}

// Sort sorts currencies by priority and then by identifier.
func Sort(currencies []*Currency) {
	slices.SortStableFunc(currencies, func(a, b *Currency) int {
		if result := a.Compare(b); result != 0 {
			return result
		}

		return cmp.Compare(a.id, b.id)
	})
}

// Intersect returns currencies from a that also present in b.
// Order of a is kept and duplicates are dropped.
func Intersect(a, b []*Currency) []*Currency {
	present := make(map[uint64][]*Currency, len(b))
	for _, currency := range b {
		present[currency.Hash()] = append(present[currency.Hash()], currency)
	}

	result := make([]*Currency, 0, min(len(a), len(b)))
	for _, currency := range a {
		if !containsEqual(present[currency.Hash()], currency) {
			continue
		}
		if containsEqual(result, currency) {
			continue
		}

		result = append(result, currency)
	}

	return result
}

func containsEqual(currencies []*Currency, target *Currency) bool {
	return slices.ContainsFunc(currencies, target.Equal)
}
