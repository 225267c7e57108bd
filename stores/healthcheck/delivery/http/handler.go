package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain/healthcheck"
)

type ResponseError struct {
	Message string `json:"message"`
}

type handler struct {
	healthCheck healthcheck.Usecase
}

func New(e *echo.Echo, us healthcheck.Usecase) {
	h := &handler{
		healthCheck: us,
	}
	e.GET("/health", h.check)
}

func (h *handler) check(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ResponseError{
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"healthy": "ok",
	})
}
