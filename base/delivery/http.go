package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var errStatus = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{query.ErrNotFound, http.StatusNotFound},
	{domain.ErrAuctionNotFound, http.StatusNotFound},
	{domain.ErrItemNotFound, http.StatusNotFound},
	{domain.ErrBadParamInput, http.StatusBadRequest},
	{domain.ErrInvalidDuration, http.StatusBadRequest},
	{domain.ErrInvalidAmount, http.StatusBadRequest},
	{domain.ErrInvalidItemId, http.StatusBadRequest},
	{domain.ErrInvalidAddress, http.StatusBadRequest},
	{domain.ErrInvalidFeeRate, http.StatusBadRequest},
	{domain.ErrAmountOverflow, http.StatusBadRequest},
	{domain.ErrAmountUnderflow, http.StatusBadRequest},
	{domain.ErrInvalidSignature, http.StatusUnauthorized},
	{domain.ErrInvalidNonce, http.StatusUnauthorized},
	{domain.ErrUnauthorized, http.StatusForbidden},
	{domain.ErrNotAllowListed, http.StatusForbidden},
	{domain.ErrItemNotInCustody, http.StatusConflict},
	{domain.ErrAuctionAlreadyActive, http.StatusConflict},
	{domain.ErrAuctionStillActive, http.StatusConflict},
	{domain.ErrAuctionNotYetOpen, http.StatusConflict},
	{domain.ErrAuctionExpired, http.StatusGone},
	{domain.ErrItemExists, http.StatusConflict},
	{domain.ErrBidTooLow, http.StatusUnprocessableEntity},
	{domain.ErrNoFundsToWithdraw, http.StatusUnprocessableEntity},
}

// StatusOf returns the http status of a domain error, or fallback for unknown errors.
func StatusOf(err error, fallback int) int {
	for _, es := range errStatus {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return fallback
}

// MakeErrResp answers with the status of a known domain error and 500 otherwise.
func MakeErrResp(c echo.Context, err error) error {
	return MakeJsonResp(c, StatusOf(err, http.StatusInternalServerError), err)
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
