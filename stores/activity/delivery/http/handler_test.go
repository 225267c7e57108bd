package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/activity"
	mockActivity "github.com/x-xyz/auctionhouse/domain/activity/mocks"
	"github.com/x-xyz/auctionhouse/middleware"
)

func TestSearch(t *testing.T) {
	u := &mockActivity.Usecase{}
	e := echo.New()
	e.Use(middleware.InitMiddleware().AddContext())
	New(e, u)

	var got activity.SearchOptions
	capture := func(args mock.Arguments) {
		fns := []activity.SearchOptionsFunc{}
		for _, a := range args[1:] {
			fns = append(fns, a.(activity.SearchOptionsFunc))
		}
		var err error
		got, err = activity.GetSearchOptions(fns...)
		assert.NoError(t, err)
	}
	u.On("Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*activity.Event{{Type: activity.EventBidPlaced}}, nil).Run(capture).Once()

	account := "0x00000000000000000000000000000000000000B1"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activities?type=bidPlaced&type=bidRefunded&itemId=3&account="+account+"&offset=5&limit=10", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"bidPlaced"`)

	assert.Equal(t, []activity.EventType{activity.EventBidPlaced, activity.EventBidRefunded}, got.Types)
	assert.Equal(t, domain.ItemId(3), *got.ItemId)
	assert.Equal(t, domain.Address(account).ToLower(), *got.Account)
	assert.Equal(t, 5, got.Offset)
	assert.Equal(t, 10, got.Limit)

	for _, q := range []string{"itemId=x", "account=0xnope", "limit=1000", "offset=a"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activities?"+q, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
	u.AssertExpectations(t)
}
