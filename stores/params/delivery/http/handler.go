package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/delivery"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/params"
	authMiddleware "github.com/x-xyz/auctionhouse/stores/auth/delivery/http/middleware"
)

type handler struct {
	params params.Usecase
}

func New(e *echo.Echo, params params.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{params}

	e.GET("/params", h.get)

	e.PUT("/params/fee-rate", h.setFeeRate, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.params.Get(ctx); err != nil {
		ctx.WithField("err", err).Error("params.Get failed")
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) setFeeRate(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		FeeRate string `json:"feeRate"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	rate, err := params.ParseFeeRate(p.FeeRate)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	res, err := h.params.SetFeeRate(ctx, caller, rate)
	if err != nil {
		ctx.WithField("err", err).Warn("params.SetFeeRate failed")
		return delivery.MakeErrResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
