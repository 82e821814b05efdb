package currencybeacon_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VladPetriv/money/internal/api/currencybeacon"
	"github.com/VladPetriv/money/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyBeacon_FetchCurrencies(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc          string
		status        int
		body          string
		expected      []service.ExchangerCurrency
		expectedError string
	}{
		{
			desc:   "positive: currencies fetched",
			status: http.StatusOK,
			body:   `{"response": [{"id": 1, "name": "US Dollar", "short_code": "USD", "code": "840", "precision": 2, "symbol": "$"}, {"id": 2, "name": "Euro", "short_code": "EUR", "code": "978", "precision": 2, "symbol": "€"}]}`,
			expected: []service.ExchangerCurrency{
				{Name: "US Dollar", Code: "USD", Symbol: "$"},
				{Name: "Euro", Code: "EUR", Symbol: "€"},
			},
		},
		{
			desc:          "negative: unexpected status code",
			status:        http.StatusUnauthorized,
			body:          `{"error": "invalid api key"}`,
			expectedError: "could not fetch currencies(statusCode: 401",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/currencies", r.URL.Path)
				assert.Equal(t, "fiat", r.URL.Query().Get("type"))
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(server.Close)

			client := currencybeacon.New(server.URL, "secret")
			t.Cleanup(func() { _ = client.Close() })

			actual, err := client.FetchCurrencies()
			if tc.expectedError != "" {
				assert.ErrorContains(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}
