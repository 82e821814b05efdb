package money

import (
	"testing"

	"github.com/VladPetriv/money/pkg/currency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCurrency(t *testing.T, id currency.Code) *currency.Currency {
	t.Helper()

	c, err := currency.New(id)
	require.NoError(t, err)

	return c
}

func mustMoney(t *testing.T, s string) Money {
	t.Helper()

	m, err := NewFromString(s)
	require.NoError(t, err)

	return m
}

func TestMoney_NewFromString(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc        string
		args        string
		expected    Money
		expectedErr bool
	}{
		{
			desc:     "Should return Zero for empty string",
			args:     "",
			expected: Zero,
		},
		{
			desc:     "Should parse decimal string",
			args:     "10.50",
			expected: Money{decimal.RequireFromString("10.5")},
		},
		{
			desc:        "Should return error for invalid string",
			args:        "ten",
			expected:    Zero,
			expectedErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			actual, err := NewFromString(tc.args)
			if tc.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, tc.expected.Equal(actual))
		})
	}
}

func TestMoney_Subunits(t *testing.T) {
	t.Parallel()

	usd := mustCurrency(t, currency.USD)
	jpy := mustCurrency(t, currency.JPY)
	kwd := mustCurrency(t, "kwd")

	assert.Equal(t, "1234.56", NewFromSubunits(123456, usd).String())
	assert.Equal(t, "1234", NewFromSubunits(1234, jpy).String())
	assert.Equal(t, "1.5", NewFromSubunits(1500, kwd).String())

	assert.Equal(t, int64(1234), mustMoney(t, "12.34").Subunits(usd))
	assert.Equal(t, int64(13), mustMoney(t, "12.5").Subunits(jpy))
}

func TestMoney_Format(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		amount   string
		currency currency.Code
		expected string
	}{
		{
			desc:     "Should put symbol first and group thousands with comma",
			amount:   "1234.5",
			currency: currency.USD,
			expected: "$1,234.50",
		},
		{
			desc:     "Should use comma as decimal mark and dot as thousands separator",
			amount:   "1234567.891",
			currency: currency.EUR,
			expected: "€1.234.567,89",
		},
		{
			desc:     "Should not print fraction when currency has no subunits in use",
			amount:   "1234.6",
			currency: currency.JPY,
			expected: "¥1,235",
		},
		{
			desc:     "Should put symbol after amount",
			amount:   "1234.5",
			currency: "pln",
			expected: "1 234,50 zł",
		},
		{
			desc:     "Should keep sign before symbol",
			amount:   "-1234.5",
			currency: currency.USD,
			expected: "-$1,234.50",
		},
		{
			desc:     "Should fall back to ISO code when currency has no symbol",
			amount:   "10",
			currency: currency.AZN,
			expected: "AZN10.00",
		},
		{
			desc:     "Should not group amounts below one thousand",
			amount:   "0.5",
			currency: currency.USD,
			expected: "$0.50",
		},
		{
			desc:     "Should round to three decimal places",
			amount:   "1000.0004",
			currency: "kwd",
			expected: "د.ك1,000.000",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, mustMoney(t, tc.amount).Format(mustCurrency(t, tc.currency)))
		})
	}
}

func Test_groupThousands(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1", groupThousands("1", ","))
	assert.Equal(t, "123", groupThousands("123", ","))
	assert.Equal(t, "1,234", groupThousands("1234", ","))
	assert.Equal(t, "123,456", groupThousands("123456", ","))
	assert.Equal(t, "1,234,567", groupThousands("1234567", ","))
	assert.Equal(t, "1234567", groupThousands("1234567", ""))
}
