package service

// APIs represents all external APIs.
type APIs struct {
	CurrencyExchanger CurrencyExchanger
}

// CurrencyExchanger provides currencies known to an external exchange provider.
//
//go:generate mockery --dir . --name CurrencyExchanger --output ./mocks
type CurrencyExchanger interface {
	// FetchCurrencies returns all currencies supported by the provider.
	FetchCurrencies() ([]ExchangerCurrency, error)
}

// ExchangerCurrency represents currency as it's described by an exchange provider.
type ExchangerCurrency struct {
	Name   string
	Code   string
	Symbol string
}
