package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/delivery"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/item"
	authMiddleware "github.com/x-xyz/auctionhouse/stores/auth/delivery/http/middleware"
)

type handler struct {
	item item.Usecase
}

func New(e *echo.Echo, item item.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{item}

	e.POST("/items", h.mint, authMiddleware.Auth())

	e.GET("/items/:itemId", h.get)
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		ItemId   domain.ItemId  `json:"itemId"`
		To       domain.Address `json:"to" validate:"required,address"`
		Metadata string         `json:"metadata"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	res, err := h.item.MintTo(ctx, caller, p.To, p.ItemId, p.Metadata)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "itemId": p.ItemId}).Warn("item.MintTo failed")
		return delivery.MakeErrResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	itemId, err := domain.ParseItemId(c.Param("itemId"))
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	res, err := h.item.Get(ctx, itemId)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
