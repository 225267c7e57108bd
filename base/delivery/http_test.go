package delivery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"

	"github.com/x-xyz/auctionhouse/domain"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err    error
		expect int
	}{
		{domain.ErrAuctionNotFound, http.StatusNotFound},
		{domain.ErrBidTooLow, http.StatusUnprocessableEntity},
		{domain.ErrUnauthorized, http.StatusForbidden},
		{domain.ErrAuctionExpired, http.StatusGone},
		{xerrors.Errorf("settle: %w", domain.ErrAuctionStillActive), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expect, StatusOf(tt.err, http.StatusInternalServerError), tt.err.Error())
	}
}

func TestMakeJsonResp(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	assert.NoError(t, MakeErrResp(c, domain.ErrNoFundsToWithdraw))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"data":"no funds to withdraw","status":"fail"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	assert.NoError(t, MakeJsonResp(c, http.StatusOK, "1"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"1","status":"success"}`, rec.Body.String())
}
