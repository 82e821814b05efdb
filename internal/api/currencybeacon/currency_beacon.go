package currencybeacon

import (
	"fmt"
	"net/http"

	"github.com/VladPetriv/money/internal/service"
	"resty.dev/v3"
)

type currencyBeacon struct {
	httpClient *resty.Client
}

var _ service.CurrencyExchanger = (*currencyBeacon)(nil)

// New creates a new instance of currencyBeacon api.
func New(apiURL, apiKey string) *currencyBeacon {
	httpClient := resty.New().
		SetBaseURL(apiURL).
		SetAuthScheme("Bearer").
		SetAuthToken(apiKey)

	return &currencyBeacon{
		httpClient: httpClient,
	}
}

func (c *currencyBeacon) FetchCurrencies() ([]service.ExchangerCurrency, error) {
	var result fetchCurrenciesResponse

	response, err := c.httpClient.R().
		SetQueryParam("type", "fiat").
		SetResult(&result).
		Get("/v1/currencies")
	if err != nil {
		return nil, fmt.Errorf("send fetch currencies request: %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("could not fetch currencies(statusCode: %d, body:%s)", response.StatusCode(), response.String())
	}

	output := make([]service.ExchangerCurrency, 0, len(result.Response))
	for _, currency := range result.Response {
		output = append(output, service.ExchangerCurrency{
			Name:   currency.Name,
			Code:   currency.ShortCode,
			Symbol: currency.Symbol,
		})
	}

	return output, nil
}

// Close releases resources of the underlying http client.
func (c *currencyBeacon) Close() error {
	return c.httpClient.Close()
}
