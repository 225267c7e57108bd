package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/vault"
	mockVault "github.com/x-xyz/auctionhouse/domain/vault/mocks"
	"github.com/x-xyz/auctionhouse/middleware"
)

func TestGetTransfers(t *testing.T) {
	u := &mockVault.Usecase{}
	e := echo.New()
	e.Use(middleware.InitMiddleware().AddContext())
	New(e, u)

	account := domain.Address("0x00000000000000000000000000000000000000b1")
	itemId := domain.ItemId(4)
	u.On("FindByAccount", mock.Anything, account, 0, 20).Return([]*vault.Transfer{{
		Type:    vault.TransferTypePayout,
		Reason:  vault.ReasonWithdrawal,
		Account: account,
		Amount:  domain.NewAmount(7),
		ItemId:  &itemId,
	}}, nil).Once()
	u.On("FindByAccount", mock.Anything, account, 40, 10).Return([]*vault.Transfer{}, nil).Once()
	u.On("FindByAccount", mock.Anything, account, 0, 100).Return(nil, errors.New("db down")).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/"+string(account)+"/transfers", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":"withdrawal"`)
	assert.Contains(t, rec.Body.String(), `"itemId":4`)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/"+string(account)+"/transfers?offset=40&limit=10", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/"+string(account)+"/transfers?limit=100", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	for _, path := range []string{
		"/accounts/0xnope/transfers",
		"/accounts/" + string(account) + "/transfers?limit=101",
		"/accounts/" + string(account) + "/transfers?offset=x",
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
	u.AssertExpectations(t)
}
