package rest

import (
	"strconv"

	"github.com/VladPetriv/money/internal/service"
	"github.com/VladPetriv/money/pkg/currency"
	"github.com/VladPetriv/money/pkg/errs"
	"github.com/VladPetriv/money/pkg/money"
	"github.com/VladPetriv/money/pkg/typecast"
	"github.com/valyala/fasthttp"
)

type healthResponse struct {
	Status string `json:"status"`
}

type listCurrenciesResponse struct {
	Currencies []*currency.Currency `json:"currencies"`
}

type formatAmountResponse struct {
	Currency  string `json:"currency"`
	Amount    string `json:"amount"`
	Subunits  int64  `json:"subunits"`
	Formatted string `json:"formatted"`
}

const (
	defaultLimit = 50
	maxLimit     = 100
)

func parseListCurrenciesFilter(args *fasthttp.Args) (service.ListCurrenciesFilter, error) {
	filter := service.ListCurrenciesFilter{
		Search: string(args.Peek("search")),
	}

	if args.Has("symbol_first") {
		symbolFirst, err := strconv.ParseBool(string(args.Peek("symbol_first")))
		if err != nil {
			return filter, errs.New("symbol_first must be a boolean")
		}

		filter.SymbolFirst = typecast.ToPtr(symbolFirst)
	}

	if args.Has("page") || args.Has("limit") {
		pagination := service.Pagination{Page: 1, Limit: defaultLimit}

		if args.Has("page") {
			page, err := args.GetUint("page")
			if err != nil {
				return filter, errs.New("page must be a positive number")
			}
			pagination.Page = page
		}
		if args.Has("limit") {
			limit, err := args.GetUint("limit")
			if err != nil {
				return filter, errs.New("limit must be a positive number")
			}
			if limit > maxLimit {
				return filter, errs.Newf("limit must not be greater than %d", maxLimit)
			}
			pagination.Limit = limit
		}

		filter.Pagination = &pagination
	}

	return filter, nil
}

// parseAmount reads either amount in units or amount in subunits of the currency.
func parseAmount(args *fasthttp.Args, c *currency.Currency) (money.Money, error) {
	if args.Has("subunits") {
		if args.Has("amount") {
			return money.Zero, errs.New("amount and subunits can't be used together")
		}

		subunits, err := strconv.ParseInt(string(args.Peek("subunits")), 10, 64)
		if err != nil {
			return money.Zero, errs.Newf("invalid subunits: %s", args.Peek("subunits"))
		}

		return money.NewFromSubunits(subunits, c), nil
	}

	amount, err := money.NewFromString(string(args.Peek("amount")))
	if err != nil {
		return money.Zero, errs.Newf("invalid amount: %s", args.Peek("amount"))
	}

	return amount, nil
}
