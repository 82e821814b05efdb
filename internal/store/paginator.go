package store

import (
	"math"

	sq "github.com/Masterminds/squirrel"
	"github.com/VladPetriv/money/internal/service"
)

func applyLimitAndOffsetForStatement(stmt sq.SelectBuilder, paginationFilter *service.Pagination) sq.SelectBuilder {
	if paginationFilter == nil || paginationFilter.Limit < 1 {
		return stmt
	}

	var offset uint64
	switch {
	case paginationFilter.Page-1 > math.MaxInt/paginationFilter.Limit:
		offset = math.MaxInt
	case paginationFilter.Page > 1:
		offset = uint64((paginationFilter.Page - 1) * paginationFilter.Limit)
	}

	return stmt.
		Limit(uint64(paginationFilter.Limit)).
		Offset(offset)
}
