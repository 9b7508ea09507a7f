package http

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

func paramID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}

	return id, nil
}

// pagination reads offset/limit query parameters, falling back to defaults
// and clamping the limit. Malformed values fall back too; pagination shape
// is not worth a request failure.
func pagination(ctx echo.Context) (offset, limit int) {
	offset = 0
	if v, err := strconv.Atoi(ctx.QueryParam("offset")); err == nil && v > 0 {
		offset = v
	}

	limit = defaultPageLimit
	if v, err := strconv.Atoi(ctx.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return offset, limit
}
