package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/delivery"
	"github.com/x-xyz/auctionhouse/base/validator"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/activity"
)

type handler struct {
	activity activity.Usecase
}

func New(e *echo.Echo, activity activity.Usecase) {
	h := &handler{activity}

	e.GET("/activities", h.search)
}

// search accepts type (repeatable), itemId, account, offset and limit
func (h *handler) search(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	opts := []activity.SearchOptionsFunc{}

	if types := c.QueryParams()["type"]; len(types) > 0 {
		ts := make([]activity.EventType, 0, len(types))
		for _, t := range types {
			ts = append(ts, activity.EventType(t))
		}
		opts = append(opts, activity.WithTypes(ts...))
	}

	if v := c.QueryParam("itemId"); len(v) > 0 {
		itemId, err := domain.ParseItemId(v)
		if err != nil {
			return delivery.MakeErrResp(c, err)
		}
		opts = append(opts, activity.WithItemId(itemId))
	}

	if v := c.QueryParam("account"); len(v) > 0 {
		if !validator.IsValidAddress(v) {
			return delivery.MakeErrResp(c, domain.ErrInvalidAddress)
		}
		opts = append(opts, activity.WithAccount(domain.Address(v)))
	}

	offset, limit, err := delivery.ParsePaging(c, 50, 100)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	opts = append(opts, activity.WithPagination(offset, limit))

	res, err := h.activity.Search(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Warn("activity.Search failed")
		return delivery.MakeErrResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
