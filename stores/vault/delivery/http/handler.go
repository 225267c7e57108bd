package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/delivery"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/vault"
	"github.com/x-xyz/auctionhouse/middleware"
)

type handler struct {
	vault vault.Usecase
}

func New(e *echo.Echo, vault vault.Usecase) {
	h := &handler{vault}

	e.GET("/accounts/:address/transfers", h.getTransfers, middleware.IsValidAddress("address"))
}

func (h *handler) getTransfers(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	account := domain.Address(c.Param("address"))

	offset, limit, err := delivery.ParsePaging(c, 20, 100)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	res, err := h.vault.FindByAccount(ctx, account, offset, limit)
	if err != nil {
		ctx.WithField("err", err).Error("vault.FindByAccount failed")
		return delivery.MakeErrResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
