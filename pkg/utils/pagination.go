package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ParsePagination reads limit/offset from the query string with sane bounds.
func ParsePagination(ctx echo.Context) (limit, offset uint64) {
	limit = defaultPageSize
	if raw := ctx.QueryParam("limit"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if raw := ctx.QueryParam("offset"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			offset = v
		}
	}
	return limit, offset
}
