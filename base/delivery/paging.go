package delivery

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionhouse/domain"
)

// ParsePaging reads the `offset` and `limit` query params. A missing limit
// becomes defaultLimit; a negative offset or a limit outside [1, maxLimit]
// yields domain.ErrBadParamInput.
func ParsePaging(c echo.Context, defaultLimit, maxLimit int) (offset, limit int, err error) {
	limit = defaultLimit
	if v := c.QueryParam("offset"); len(v) > 0 {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			return 0, 0, domain.ErrBadParamInput
		}
	}
	if v := c.QueryParam("limit"); len(v) > 0 {
		if limit, err = strconv.Atoi(v); err != nil || limit <= 0 || limit > maxLimit {
			return 0, 0, domain.ErrBadParamInput
		}
	}
	return offset, limit, nil
}
