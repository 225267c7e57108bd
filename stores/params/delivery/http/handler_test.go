package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/x-xyz/auctionhouse/domain"
	mockDomain "github.com/x-xyz/auctionhouse/domain/mocks"
	"github.com/x-xyz/auctionhouse/domain/params"
	mockParams "github.com/x-xyz/auctionhouse/domain/params/mocks"
	"github.com/x-xyz/auctionhouse/middleware"
	authMiddleware "github.com/x-xyz/auctionhouse/stores/auth/delivery/http/middleware"
)

func TestParamsRoutes(t *testing.T) {
	admin := domain.Address("0x00000000000000000000000000000000000000ad")

	u := &mockParams.Usecase{}
	auth := &mockDomain.AuthUsecase{}
	auth.On("ParseToken", mock.Anything, "admin-token").Return(admin, nil)

	e := echo.New()
	e.Use(middleware.InitMiddleware().AddContext())
	New(e, u, authMiddleware.New(auth, u))

	u.On("Get", mock.Anything).Return(&params.Params{Admin: admin, MinimumBid: domain.NewAmount(1), FeeRate: "0.01"}, nil).Once()
	u.On("IsAdmin", mock.Anything, admin).Return(true, nil)
	u.On("SetFeeRate", mock.Anything, admin, mock.MatchedBy(func(r decimal.Decimal) bool {
		return r.Equal(decimal.RequireFromString("0.025"))
	})).Return(&params.Params{Admin: admin, FeeRate: "0.025"}, nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/params", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"minimumBid":"1"`)

	put := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/params/fee-rate", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec = put(`{"feeRate":"0.025"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"feeRate":"0.025"`)

	assert.Equal(t, http.StatusBadRequest, put(`{"feeRate":"1.5"}`).Code)

	u.AssertExpectations(t)
}
