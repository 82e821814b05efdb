package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/VladPetriv/money/internal/model"
	"github.com/VladPetriv/money/pkg/currency"
	"github.com/VladPetriv/money/pkg/logger"
	"github.com/google/uuid"
)

type currencyService struct {
	logger   *logger.Logger
	table    *currency.Table
	storages Stores
	apis     APIs
}

var _ CurrencyService = (*currencyService)(nil)

// CurrencyOptions represents options for currency service.
type CurrencyOptions struct {
	Logger   *logger.Logger
	Table    *currency.Table
	Storages Stores
	APIs     APIs
}

// NewCurrency returns new instance of currency service.
// When table is not set, the table installed for package currency is used.
func NewCurrency(opts CurrencyOptions) *currencyService {
	table := opts.Table
	if table == nil {
		table = currency.Installed()
	}

	return &currencyService{
		logger:   opts.Logger,
		table:    table,
		storages: opts.Storages,
		apis:     opts.APIs,
	}
}

func (c *currencyService) Get(ctx context.Context, id string) (*currency.Currency, error) {
	logger := c.logger.With().Str("name", "currencyService.Get").Logger()
	logger.Debug().Str("id", id).Msg("got args")

	result, err := c.table.New(id)
	if err != nil {
		logger.Info().Err(err).Msg("currency not found")
		return nil, err
	}

	return result, nil
}

func (c *currencyService) List(ctx context.Context, filter ListCurrenciesFilter) ([]*currency.Currency, error) {
	logger := c.logger.With().Str("name", "currencyService.List").Logger()
	logger.Debug().Any("filter", filter).Msg("got args")

	if filter.Pagination != nil && (filter.Pagination.Page < 1 || filter.Pagination.Limit < 1) {
		logger.Info().Any("pagination", filter.Pagination).Msg("invalid pagination")
		return nil, ErrInvalidPagination
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	currencies := slices.DeleteFunc(c.table.Currencies(), func(cur *currency.Currency) bool {
		if filter.SymbolFirst != nil && cur.SymbolFirst() != *filter.SymbolFirst {
			return true
		}
		if search != "" && !matchesSearch(cur, search) {
			return true
		}

		return false
	})

	return paginate(currencies, filter.Pagination), nil
}

func matchesSearch(c *currency.Currency, search string) bool {
	return strings.Contains(c.ID(), search) ||
		strings.Contains(strings.ToLower(c.ISOCode()), search) ||
		strings.Contains(strings.ToLower(c.Name()), search)
}

func paginate[T any](values []T, pagination *Pagination) []T {
	if pagination == nil {
		return values
	}

	if pagination.Page-1 > len(values)/pagination.Limit {
		return []T{}
	}

	offset := (pagination.Page - 1) * pagination.Limit
	if offset >= len(values) {
		return []T{}
	}

	return values[offset:min(offset+pagination.Limit, len(values))]
}

func (c *currencyService) SyncDefinitions(ctx context.Context) (*SyncResult, error) {
	logger := c.logger.With().Str("name", "currencyService.SyncDefinitions").Logger()
	logger.Debug().Int("definitions", c.table.Len()).Msg("got args")

	var result SyncResult

	defined := make(map[string]struct{}, c.table.Len())
	for _, cur := range c.table.Currencies() {
		defined[cur.ID()] = struct{}{}

		stored, err := c.storages.Currency.Get(ctx, GetCurrencyFilter{Code: cur.ID()})
		if err != nil {
			logger.Error().Err(err).Str("code", cur.ID()).Msg("get currency from store")
			return nil, fmt.Errorf("get currency from store: %w", err)
		}

		if stored != nil && stored.Record() == cur.Record() {
			result.Unchanged++
			continue
		}

		id := uuid.NewString()
		if stored != nil {
			id = stored.ID
		}

		err = c.storages.Currency.Upsert(ctx, model.NewCurrency(id, cur))
		if err != nil {
			logger.Error().Err(err).Str("code", cur.ID()).Msg("upsert currency in store")
			return nil, fmt.Errorf("upsert currency in store: %w", err)
		}

		if stored == nil {
			result.Created++
		} else {
			result.Updated++
		}
	}

	stale, err := c.findStaleCodes(ctx, defined)
	if err != nil {
		logger.Error().Err(err).Msg("find stale currencies")
		return nil, err
	}
	result.Stale = stale
	if len(result.Stale) > 0 {
		logger.Warn().Strs("stale", result.Stale).Msg("store contains currencies without definitions")
	}

	logger.Info().Int("created", result.Created).Int("updated", result.Updated).Msg("currency definitions synced")
	return &result, nil
}

// findStaleCodes returns codes of persisted currencies which are not defined.
// All definitions must be persisted before the call.
func (c *currencyService) findStaleCodes(ctx context.Context, defined map[string]struct{}) ([]string, error) {
	// Codes are unique, so there is nothing stale when the store holds no more rows than definitions.
	persistedCount, err := c.storages.Currency.Count(ctx, ListCurrenciesFilter{})
	if err != nil {
		return nil, fmt.Errorf("count currencies in store: %w", err)
	}
	if persistedCount <= len(defined) {
		return nil, nil
	}

	persisted, err := c.storages.Currency.List(ctx, ListCurrenciesFilter{})
	if err != nil {
		return nil, fmt.Errorf("list currencies from store: %w", err)
	}

	var stale []string
	for _, stored := range persisted {
		if _, ok := defined[stored.Code]; !ok {
			stale = append(stale, stored.Code)
		}
	}

	return stale, nil
}

func (c *currencyService) Reconcile(ctx context.Context) (*ReconcileResult, error) {
	logger := c.logger.With().Str("name", "currencyService.Reconcile").Logger()
	logger.Debug().Msg("got args")

	remoteCurrencies, err := c.apis.CurrencyExchanger.FetchCurrencies()
	if err != nil {
		logger.Error().Err(err).Msg("fetch currencies through currency exchanger")
		return nil, fmt.Errorf("fetch currencies through currency exchanger: %w", err)
	}
	logger.Debug().Int("remoteCurrencies", len(remoteCurrencies)).Msg("fetched currencies")

	remote := make(map[string]struct{}, len(remoteCurrencies))
	for _, remoteCurrency := range remoteCurrencies {
		remote[strings.ToUpper(remoteCurrency.Code)] = struct{}{}
	}

	local := make(map[string]struct{}, c.table.Len())
	for _, cur := range c.table.Currencies() {
		local[cur.String()] = struct{}{}
	}

	var result ReconcileResult
	for code := range remote {
		if _, ok := local[code]; !ok {
			result.MissingLocally = append(result.MissingLocally, code)
		}
	}
	for code := range local {
		if _, ok := remote[code]; !ok {
			result.MissingRemotely = append(result.MissingRemotely, code)
		}
	}
	slices.Sort(result.MissingLocally)
	slices.Sort(result.MissingRemotely)

	logger.Info().
		Strs("missingLocally", result.MissingLocally).
		Strs("missingRemotely", result.MissingRemotely).
		Msg("currencies reconciled")

	return &result, nil
}
