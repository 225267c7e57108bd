package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/delivery"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/params"
)

type AuthMiddleware struct {
	auth   domain.AuthUsecase
	params params.Usecase
}

func New(auth domain.AuthUsecase, params params.Usecase) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   auth,
		params: params,
	}
}

// Auth requires a bearer token and puts the caller under "address".
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

// IsAdmin must run after Auth.
func (m *AuthMiddleware) IsAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)
			address := c.Get("address").(domain.Address)

			if ok, err := m.params.IsAdmin(ctx, address); err != nil {
				return delivery.MakeErrResp(c, err)
			} else if !ok {
				return delivery.MakeErrResp(c, domain.ErrUnauthorized)
			}
			return next(c)
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if address, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Warn("auth.ParseToken failed")
		return false, nil
	} else {
		c.Set("address", address)
		return true, nil
	}
}
