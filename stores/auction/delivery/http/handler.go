package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/delivery"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/middleware"
	authMiddleware "github.com/x-xyz/auctionhouse/stores/auth/delivery/http/middleware"
)

const maxListLimit = 100

type handler struct {
	auction auction.Usecase
}

func New(e *echo.Echo, auction auction.Usecase, authMiddleware *authMiddleware.AuthMiddleware, listCache echo.MiddlewareFunc) {
	h := &handler{auction}

	g := e.Group("/auctions")
	g.GET("", h.listActive, listCache)
	g.POST("/:itemId", h.create, authMiddleware.Auth(), authMiddleware.IsAdmin())
	g.GET("/:itemId", h.get)
	g.GET("/:itemId/highest-bid", h.getHighestBid)
	g.POST("/:itemId/bids", h.placeBid, authMiddleware.Auth())
	g.POST("/:itemId/settle", h.settle)
	g.GET("/:itemId/settlement", h.getSettlement)
	g.GET("/:itemId/config", h.getConfig)
	g.PUT("/:itemId/config", h.updateConfig, authMiddleware.Auth(), authMiddleware.IsAdmin())

	a := e.Group("/accounts")
	a.GET("/:address/balance", h.getBalance, middleware.IsValidAddress("address"))
	a.POST("/withdraw", h.withdraw, authMiddleware.Auth())
}

func parseItemId(c echo.Context) (domain.ItemId, error) {
	return domain.ParseItemId(c.Param("itemId"))
}

func parseSeconds(seconds int64) (time.Duration, error) {
	if seconds <= 0 || seconds > int64(1<<63-1)/int64(time.Second) {
		return 0, domain.ErrInvalidDuration
	}
	return time.Duration(seconds) * time.Second, nil
}

// create
//
//	@Summary		Start an auction
//	@Description	Admin only. The item must be in the engine's custody.
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			itemId	path		int								true	"item id"
//	@Param			params	body		http.create.payload				true	"startingPrice in base units, duration in seconds"
//	@Success		201		{object}	object{data=auction.Auction}
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Router			/auctions/{itemId} [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		StartingPrice domain.Amount `json:"startingPrice"`
		// Duration in seconds
		Duration int64 `json:"duration"`
	}

	itemId, err := parseItemId(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	duration, err := parseSeconds(p.Duration)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	res, err := h.auction.CreateAuction(ctx, caller, itemId, p.StartingPrice, duration)
	if err != nil {
		ctx.WithField("err", err).Warn("auction.CreateAuction failed")
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	itemId, err := parseItemId(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	res, err := h.auction.GetAuction(ctx, itemId)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getHighestBid
//
//	@Summary	Get the leading bid of an active auction
//	@Tags		auctions
//	@Produce	json
//	@Param		itemId	path		int	true	"item id"
//	@Success	200		{object}	object{data=auction.HighestBid}
//	@Failure	404
//	@Router		/auctions/{itemId}/highest-bid [get]
func (h *handler) getHighestBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	itemId, err := parseItemId(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	res, err := h.auction.GetHighestBid(ctx, itemId)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// placeBid
//
//	@Summary		Place a bid
//	@Description	The amount is collected into custody and locked until outbid or settled
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			itemId	path		int						true	"item id"
//	@Param			params	body		http.placeBid.payload	true	"params"
//	@Success		201		{object}	object{data=auction.Auction}
//	@Failure		404
//	@Failure		410
//	@Failure		422
//	@Router			/auctions/{itemId}/bids [post]
func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	bidder := c.Get("address").(domain.Address)

	type payload struct {
		Amount domain.Amount `json:"amount"`
	}

	itemId, err := parseItemId(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	res, err := h.auction.PlaceBid(ctx, itemId, bidder, p.Amount)
	if err != nil {
		ctx.WithField("err", err).Info("auction.PlaceBid failed")
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// settle
//
//	@Summary		Settle an expired auction
//	@Description	Anyone may settle. Opens the auction of the next item when it is in custody.
//	@Tags			auctions
//	@Produce		json
//	@Param			itemId	path		int	true	"item id"
//	@Success		200		{object}	object{data=auction.Settlement}
//	@Failure		404
//	@Failure		409
//	@Router			/auctions/{itemId}/settle [post]
func (h *handler) settle(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	itemId, err := parseItemId(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	res, err := h.auction.EndAuction(ctx, itemId)
	if err != nil {
		ctx.WithField("err", err).Info("auction.EndAuction failed")
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getSettlement(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	itemId, err := parseItemId(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	res, err := h.auction.GetSettlement(ctx, itemId)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getConfig(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	itemId, err := parseItemId(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	res, err := h.auction.GetConfig(ctx, itemId)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// updateConfig changes the starting price and/or the duration of the item's next auction.
func (h *handler) updateConfig(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		StartingPrice *domain.Amount `json:"startingPrice"`
		Duration      *int64         `json:"duration"`
	}

	itemId, err := parseItemId(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	p := &payload{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if p.StartingPrice == nil && p.Duration == nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	u := auction.ConfigUpdate{StartingPrice: p.StartingPrice}
	if p.Duration != nil {
		duration, err := parseSeconds(*p.Duration)
		if err != nil {
			return delivery.MakeErrResp(c, err)
		}
		u.Duration = &duration
	}
	res, err := h.auction.UpdateConfig(ctx, caller, itemId, u)
	if err != nil {
		ctx.WithField("err", err).Warn("auction.UpdateConfig failed")
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) listActive(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	offset, limit, err := delivery.ParsePaging(c, maxListLimit, maxListLimit)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	res, err := h.auction.ListActive(ctx, offset, limit)
	if err != nil {
		ctx.WithField("err", err).Error("auction.ListActive failed")
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.GetBalance(ctx, domain.Address(c.Param("address")))
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// withdraw
//
//	@Summary	Withdraw refunded bids
//	@Tags		accounts
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Success	200	{object}	object{data=string}	"withdrawn amount"
//	@Failure	422
//	@Router		/accounts/withdraw [post]
func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	account := c.Get("address").(domain.Address)

	amount, err := h.auction.Withdraw(ctx, account)
	if err != nil {
		ctx.WithField("err", err).Info("auction.Withdraw failed")
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, amount)
}
