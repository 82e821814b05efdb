package currencybeacon

type fetchCurrenciesResponse struct {
	Response []currency `json:"response"`
}

type currency struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortCode string `json:"short_code"`
	Code      string `json:"code"`
	Precision int    `json:"precision"`
	Symbol    string `json:"symbol"`
}
