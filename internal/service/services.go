package service

import (
	"context"

	"github.com/VladPetriv/money/pkg/currency"
)

// Services contains all services.
type Services struct {
	Currency CurrencyService
}

// CurrencyService provides functionality for work with currencies.
type CurrencyService interface {
	// Get returns currency by identifier, unknown identifiers produce an expected error.
	Get(ctx context.Context, id string) (*currency.Currency, error)
	// List returns currencies in natural order.
	List(ctx context.Context, filter ListCurrenciesFilter) ([]*currency.Currency, error)
	// SyncDefinitions persists all currency definitions into the store.
	SyncDefinitions(ctx context.Context) (*SyncResult, error)
	// Reconcile compares currency definitions with currencies of the exchange provider.
	Reconcile(ctx context.Context) (*ReconcileResult, error)
}

// SyncResult represents result of SyncDefinitions method.
type SyncResult struct {
	Created   int
	Updated   int
	Unchanged int
	// Stale contains codes which are persisted but have no definition anymore.
	Stale []string
}

// ReconcileResult represents result of Reconcile method.
type ReconcileResult struct {
	// MissingLocally contains ISO codes known to the provider but not defined.
	MissingLocally []string
	// MissingRemotely contains ISO codes defined but not known to the provider.
	MissingRemotely []string
}
