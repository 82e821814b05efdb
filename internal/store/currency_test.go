package store_test

import (
	"context"
	"testing"

	"github.com/VladPetriv/money/internal/model"
	"github.com/VladPetriv/money/internal/service"
	"github.com/VladPetriv/money/internal/store"
	"github.com/VladPetriv/money/pkg/currency"
	"github.com/VladPetriv/money/pkg/typecast"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredCurrency(t *testing.T, code currency.Code) *model.Currency {
	t.Helper()

	c, err := currency.New(code)
	require.NoError(t, err)

	return model.NewCurrency(uuid.NewString(), c)
}

func TestCurrency_Upsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo
	currencyStore := store.NewCurrency(createTestDB(t, "currency_upsert"))

	testCases := [...]struct {
		desc          string
		preconditions *model.Currency
		args          *model.Currency
		expectedID    func(preconditions, args *model.Currency) string
	}{
		{
			desc: "positive: currency created",
			args: newStoredCurrency(t, currency.USD),
			expectedID: func(_, args *model.Currency) string {
				return args.ID
			},
		},
		{
			desc:          "positive: currency with the same code updated and keeps its id",
			preconditions: newStoredCurrency(t, currency.EUR),
			args: func() *model.Currency {
				updated := newStoredCurrency(t, currency.EUR)
				updated.Name = "European Euro"
				return updated
			}(),
			expectedID: func(preconditions, _ *model.Currency) string {
				return preconditions.ID
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			if tc.preconditions != nil {
				err := currencyStore.Upsert(ctx, tc.preconditions)
				require.NoError(t, err)
			}

			err := currencyStore.Upsert(ctx, tc.args)
			require.NoError(t, err)

			actual, err := currencyStore.Get(ctx, service.GetCurrencyFilter{Code: tc.args.Code})
			require.NoError(t, err)
			require.NotNil(t, actual)

			assert.Equal(t, tc.expectedID(tc.preconditions, tc.args), actual.ID)
			assert.Equal(t, tc.args.Name, actual.Name)
			assert.Equal(t, tc.args.Record(), actual.Record())
		})
	}
}

func TestCurrency_Get(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo
	currencyStore := store.NewCurrency(createTestDB(t, "currency_get"))

	usd := newStoredCurrency(t, currency.USD)
	require.NoError(t, currencyStore.Upsert(ctx, usd))

	testCases := [...]struct {
		desc     string
		args     service.GetCurrencyFilter
		expected *model.Currency
	}{
		{
			desc:     "positive: currency found by upper case code",
			args:     service.GetCurrencyFilter{Code: "USD"},
			expected: usd,
		},
		{
			desc:     "positive: currency not found",
			args:     service.GetCurrencyFilter{Code: "zzz"},
			expected: nil,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			actual, err := currencyStore.Get(ctx, tc.args)
			require.NoError(t, err)

			if tc.expected == nil {
				assert.Nil(t, actual)
				return
			}

			require.NotNil(t, actual)
			assert.Equal(t, tc.expected.ID, actual.ID)
			assert.Equal(t, tc.expected.Record(), actual.Record())
		})
	}
}

func TestCurrency_ListAndCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo
	currencyStore := store.NewCurrency(createTestDB(t, "currency_list"))

	for _, code := range []currency.Code{currency.UAH, currency.EUR, currency.USD, currency.JPY} {
		require.NoError(t, currencyStore.Upsert(ctx, newStoredCurrency(t, code)))
	}

	testCases := [...]struct {
		desc          string
		args          service.ListCurrenciesFilter
		expected      []string
		expectedCount int
	}{
		{
			desc:          "positive: all currencies ordered by priority",
			args:          service.ListCurrenciesFilter{},
			expected:      []string{"usd", "eur", "jpy", "uah"},
			expectedCount: 4,
		},
		{
			desc:          "positive: currencies with symbol after amount",
			args:          service.ListCurrenciesFilter{SymbolFirst: typecast.ToPtr(false)},
			expected:      []string{"uah"},
			expectedCount: 1,
		},
		{
			desc:          "positive: search by name",
			args:          service.ListCurrenciesFilter{Search: "yen"},
			expected:      []string{"jpy"},
			expectedCount: 1,
		},
		{
			desc: "positive: second page",
			args: service.ListCurrenciesFilter{
				Pagination: &service.Pagination{Page: 2, Limit: 3},
			},
			expected:      []string{"uah"},
			expectedCount: 4,
		},
		{
			desc: "positive: page far beyond the last one",
			args: service.ListCurrenciesFilter{
				Pagination: &service.Pagination{Page: 999999999999999999, Limit: 10},
			},
			expected:      []string{},
			expectedCount: 4,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			currencies, err := currencyStore.List(ctx, tc.args)
			require.NoError(t, err)

			codes := make([]string, 0, len(currencies))
			for _, c := range currencies {
				codes = append(codes, c.Code)
			}
			assert.Equal(t, tc.expected, codes)

			count, err := currencyStore.Count(ctx, tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCount, count)
		})
	}
}
