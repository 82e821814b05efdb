package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/VladPetriv/money/internal/model"
	"github.com/VladPetriv/money/internal/service"
	"github.com/VladPetriv/money/pkg/database"
)

type currencyStore struct {
	*database.PostgreSQL
}

var _ service.CurrencyStore = (*currencyStore)(nil)

var currencyColumns = []string{
	"id", "code", "priority", "iso_code", "iso_numeric", "name", "symbol", "subunit",
	"subunit_to_unit", "symbol_first", "html_entity", "decimal_mark", "thousands_separator",
	"created_at", "updated_at",
}

// NewCurrency returns new instance of currency store.
func NewCurrency(db *database.PostgreSQL) *currencyStore {
	return &currencyStore{
		db,
	}
}

func (c *currencyStore) Upsert(ctx context.Context, currency *model.Currency) error {
	query, args, err := sq.
		StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Insert("currencies").
		Columns(
			"id", "code", "priority", "iso_code", "iso_numeric", "name", "symbol", "subunit",
			"subunit_to_unit", "symbol_first", "html_entity", "decimal_mark", "thousands_separator",
		).
		Values(
			currency.ID, currency.Code, currency.Priority, currency.ISOCode, currency.ISONumeric,
			currency.Name, currency.Symbol, currency.Subunit, currency.SubunitToUnit,
			currency.SymbolFirst, currency.HTMLEntity, currency.DecimalMark, currency.ThousandsSeparator,
		).
		Suffix(`ON CONFLICT (code) DO UPDATE SET
			priority = EXCLUDED.priority,
			iso_code = EXCLUDED.iso_code,
			iso_numeric = EXCLUDED.iso_numeric,
			name = EXCLUDED.name,
			symbol = EXCLUDED.symbol,
			subunit = EXCLUDED.subunit,
			subunit_to_unit = EXCLUDED.subunit_to_unit,
			symbol_first = EXCLUDED.symbol_first,
			html_entity = EXCLUDED.html_entity,
			decimal_mark = EXCLUDED.decimal_mark,
			thousands_separator = EXCLUDED.thousands_separator,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert currency query: %w", err)
	}

	_, err = c.DB.ExecContext(ctx, query, args...)
	return err
}

func (c *currencyStore) Get(ctx context.Context, filter service.GetCurrencyFilter) (*model.Currency, error) {
	stmt := sq.
		StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(currencyColumns...).
		From("currencies")

	if filter.Code != "" {
		stmt = stmt.Where(sq.Eq{"code": strings.ToLower(filter.Code)})
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get currency query: %w", err)
	}

	var currency model.Currency
	err = c.DB.GetContext(ctx, &currency, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &currency, nil
}

func (c *currencyStore) List(ctx context.Context, filter service.ListCurrenciesFilter) ([]model.Currency, error) {
	stmt := applyCurrencyFilter(
		sq.
			StatementBuilder.
			PlaceholderFormat(sq.Dollar).
			Select(currencyColumns...).
			From("currencies"),
		filter,
	).OrderBy("priority", "code")

	stmt = applyLimitAndOffsetForStatement(stmt, filter.Pagination)

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list currencies query: %w", err)
	}

	currencies := make([]model.Currency, 0)
	err = c.DB.SelectContext(ctx, &currencies, query, args...)
	if err != nil {
		return nil, err
	}

	return currencies, nil
}

func (c *currencyStore) Count(ctx context.Context, filter service.ListCurrenciesFilter) (int, error) {
	stmt := applyCurrencyFilter(
		sq.
			StatementBuilder.
			PlaceholderFormat(sq.Dollar).
			Select("COUNT(*)").
			From("currencies"),
		filter,
	)

	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count currencies query: %w", err)
	}

	var count int
	err = c.DB.GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func applyCurrencyFilter(stmt sq.SelectBuilder, filter service.ListCurrenciesFilter) sq.SelectBuilder {
	if filter.SymbolFirst != nil {
		stmt = stmt.Where(sq.Eq{"symbol_first": *filter.SymbolFirst})
	}

	search := strings.TrimSpace(filter.Search)
	if search != "" {
		pattern := "%" + search + "%"
		stmt = stmt.Where(sq.Or{
			sq.ILike{"code": pattern},
			sq.ILike{"iso_code": pattern},
			sq.ILike{"name": pattern},
		})
	}

	return stmt
}
