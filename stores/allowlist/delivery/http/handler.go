package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/delivery"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/allowlist"
	authMiddleware "github.com/x-xyz/auctionhouse/stores/auth/delivery/http/middleware"
)

type handler struct {
	allowlist allowlist.Usecase
}

func New(e *echo.Echo, allowlist allowlist.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{allowlist}

	e.GET("/allowlist", h.getAll)

	e.POST("/allowlist", h.add, authMiddleware.Auth())

	e.DELETE("/allowlist/:address", h.remove, authMiddleware.Auth())
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.allowlist.FindAll(ctx); err != nil {
		ctx.WithField("err", err).Error("allowlist.FindAll failed")
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) add(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Name    string         `json:"name"`
		Address domain.Address `json:"address" validate:"required,address"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	if err := h.allowlist.Add(ctx, caller, p.Address, p.Name); err != nil {
		ctx.WithField("err", err).Warn("allowlist.Add failed")
		return delivery.MakeErrResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.allowlist.Remove(ctx, caller, domain.Address(c.Param("address"))); err != nil {
		ctx.WithField("err", err).Warn("allowlist.Remove failed")
		return delivery.MakeErrResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
