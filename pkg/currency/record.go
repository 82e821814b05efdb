package currency

import "fmt"

// Record represents static definition of a currency.
type Record struct {
	Priority           int    `json:"priority"`
	ISOCode            string `json:"iso_code"`
	ISONumeric         string `json:"iso_numeric"`
	Name               string `json:"name"`
	Symbol             string `json:"symbol"`
	Subunit            string `json:"subunit"`
	SubunitToUnit      int    `json:"subunit_to_unit"`
	SymbolFirst        bool   `json:"symbol_first"`
	HTMLEntity         string `json:"html_entity"`
	DecimalMark        string `json:"decimal_mark"`
	ThousandsSeparator string `json:"thousands_separator"`
}

// Validate checks that record can back a currency.
func (r Record) Validate() error {
	if r.ISOCode == "" {
		return fmt.Errorf("iso_code is empty")
	}
	if r.Priority <= 0 {
		return fmt.Errorf("priority must be positive, got %d", r.Priority)
	}
	if r.SubunitToUnit <= 0 {
		return fmt.Errorf("subunit_to_unit must be positive, got %d", r.SubunitToUnit)
	}

	return nil
}
