package currency

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Code is the symbolic form of a currency identifier.
type Code string

// Frequently used currency codes.
const (
	USD Code = "usd"
	EUR Code = "eur"
	GBP Code = "gbp"
	AUD Code = "aud"
	CAD Code = "cad"
	JPY Code = "jpy"
	CHF Code = "chf"
	CNY Code = "cny"
	UAH Code = "uah"
	AZN Code = "azn"
)

// Identifier is implemented by plain strings and Code.
type Identifier interface {
	~string
}

// normalize converts identifier into a table key.
// Keys are plain strings, nothing is remembered between calls.
func normalize[T Identifier](id T) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(string(id)))
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
