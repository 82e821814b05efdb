package service

import (
	"context"

	"github.com/VladPetriv/money/internal/model"
)

// Stores represents all stores.
type Stores struct {
	Currency CurrencyStore
}

// CurrencyStore provides functionality for work with persisted currency definitions.
//
//go:generate mockery --dir . --name CurrencyStore --output ./mocks
type CurrencyStore interface {
	// Upsert creates a new currency or updates definition of currency with the same code.
	Upsert(ctx context.Context, currency *model.Currency) error
	// Get returns a currency from store by filter, nil is returned when it's not found.
	Get(ctx context.Context, filter GetCurrencyFilter) (*model.Currency, error)
	// List returns currencies ordered by priority and code.
	List(ctx context.Context, filter ListCurrenciesFilter) ([]model.Currency, error)
	// Count returns count of currencies by filter.
	Count(ctx context.Context, filter ListCurrenciesFilter) (int, error)
}

// GetCurrencyFilter represents a filters for GetCurrency method.
type GetCurrencyFilter struct {
	Code string
}

// ListCurrenciesFilter represents a filters for ListCurrencies method.
type ListCurrenciesFilter struct {
	// SymbolFirst filters by symbol placement when not nil.
	SymbolFirst *bool
	// Search matches identifier, ISO code or name case-insensitively.
	Search     string
	Pagination *Pagination
}

// Pagination represents pagination options.
type Pagination struct {
	Page  int
	Limit int
}
