package service

import "github.com/VladPetriv/money/pkg/errs"

// ErrInvalidPagination happens when page or limit is not positive.
var ErrInvalidPagination = errs.New("page and limit must be positive")
