package currency

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

//go:embed currency_iso.json
var bundledDefinitions []byte

// Table holds currency definitions by lower-cased identifier.
// Table is never modified after creation, so it is safe for concurrent reads.
type Table struct {
	records map[string]Record
}

// NewTable creates a table from records, keys are normalized.
// It panics when two keys differ only in case, use ParseTable for untrusted definitions.
func NewTable(records map[string]Record) *Table {
	normalized, err := normalizeKeys(records)
	if err != nil {
		panic(err.Error())
	}

	return &Table{records: normalized}
}

func normalizeKeys(records map[string]Record) (map[string]Record, error) {
	normalized := make(map[string]Record, len(records))
	for id, record := range records {
		key := normalize(id)
		if _, ok := normalized[key]; ok {
			return nil, fmt.Errorf("currency %q is defined more than once", key)
		}
		normalized[key] = record
	}

	return normalized, nil
}

// ParseTable decodes JSON object with currency definitions.
func ParseTable(r io.Reader) (*Table, error) {
	var records map[string]Record

	err := json.NewDecoder(r).Decode(&records)
	if err != nil {
		return nil, fmt.Errorf("decode currency definitions: %w", err)
	}

	for id, record := range records {
		err := record.Validate()
		if err != nil {
			return nil, fmt.Errorf("validate currency %q: %w", id, err)
		}
	}

	normalized, err := normalizeKeys(records)
	if err != nil {
		return nil, fmt.Errorf("normalize currency identifiers: %w", err)
	}

	return &Table{records: normalized}, nil
}

// LoadTable reads currency definitions from the file.
func LoadTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open currency definitions file: %w", err)
	}
	defer file.Close()

	return ParseTable(file)
}

var defaultTable = sync.OnceValue(func() *Table {
	table, err := ParseTable(bytes.NewReader(bundledDefinitions))
	if err != nil {
		panic(fmt.Sprintf("parse bundled currency definitions: %v", err))
	}

	return table
})

// DefaultTable returns table with bundled currency definitions.
func DefaultTable() *Table {
	return defaultTable()
}

// Len returns number of definitions in the table.
func (t *Table) Len() int {
	return len(t.records)
}

// Find returns currency by identifier or nil if it's not defined.
func (t *Table) Find(id string) *Currency {
	key := normalize(id)

	record, ok := t.records[key]
	if !ok {
		return nil
	}

	return newCurrency(key, record)
}

// New returns currency by identifier or UnknownCurrencyError.
func (t *Table) New(id string) (*Currency, error) {
	currency := t.Find(id)
	if currency == nil {
		return nil, newUnknownCurrencyError(id)
	}

	return currency, nil
}

// Wrap converts v into a currency.
// Currencies are returned as is, identifiers are looked up and nil is returned for everything else,
// including currencies which don't come from a table.
func (t *Table) Wrap(v any) *Currency {
	switch value := v.(type) {
	case nil:
		return nil
	case *Currency:
		if value == nil || value.id == "" {
			return nil
		}
		return value
	case Currency:
		if value.id == "" {
			return nil
		}
		return &value
	case interface{ ToCurrency() *Currency }:
		return value.ToCurrency()
	case string:
		return t.Find(value)
	case Code:
		return t.Find(string(value))
	default:
		return nil
	}
}

// Currencies returns all currencies from the table in natural order.
func (t *Table) Currencies() []*Currency {
	currencies := make([]*Currency, 0, len(t.records))
	for id, record := range t.records {
		currencies = append(currencies, newCurrency(id, record))
	}
	Sort(currencies)

	return currencies
}

var current atomic.Pointer[Table]

func installed() *Table {
	table := current.Load()
	if table == nil {
		return DefaultTable()
	}

	return table
}

// Installed returns table used by package level functions.
func Installed() *Table {
	return installed()
}

// Use installs table for package level functions and returns function which restores the previous one.
// Swapping table while other goroutines read it is caller's responsibility.
//
//	restore := currency.Use(table)
//	defer restore()
func Use(table *Table) (restore func()) {
	previous := current.Swap(table)

	return func() {
		current.Store(previous)
	}
}

// Find returns currency from the installed table or nil if it's not defined.
func Find[T Identifier](id T) *Currency {
	return installed().Find(string(id))
}

// New returns currency from the installed table or UnknownCurrencyError.
func New[T Identifier](id T) (*Currency, error) {
	return installed().New(string(id))
}

// Wrap converts v into a currency using the installed table.
func Wrap(v any) *Currency {
	return installed().Wrap(v)
}
