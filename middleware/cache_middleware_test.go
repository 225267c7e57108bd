package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain/keys"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
	"github.com/x-xyz/auctionhouse/service/cache/provider/primitive"
)

type cacheMiddlewareSuite struct {
	suite.Suite

	cache provider.Provider
}

func (s *cacheMiddlewareSuite) SetupTest() {
	s.cache = primitive.NewPrimitive("httpCacheMiddleware", 1)
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) serve(path string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())
	s.Require().NoError(CacheHttp(s.cache, 30*time.Second)(h)(c))
	return rec
}

func (s *cacheMiddlewareSuite) TestCacheMiddleware() {
	first := s.serve("/auctions?limit=10&offset=0", func(c echo.Context) error {
		return c.String(http.StatusOK, "first")
	})
	s.Equal(http.StatusOK, first.Code)
	s.Equal("first", first.Body.String())

	second := s.serve("/auctions?offset=0&limit=10", func(c echo.Context) error {
		return c.String(http.StatusOK, "second")
	})
	s.Equal(http.StatusOK, second.Code)
	s.Equal("first", second.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/auctions?limit=10&offset=0", nil)
	sortURLParams(req.URL)
	_, _, err := s.cache.Get(ctx.Background(), keys.RedisKey(cacheMiddlewarePfx, generateKey(req.URL.String())))
	s.NoError(err)
}

func (s *cacheMiddlewareSuite) TestSkipErrorResponse() {
	failed := s.serve("/auctions/9", func(c echo.Context) error {
		return c.String(http.StatusNotFound, "missing")
	})
	s.Equal(http.StatusNotFound, failed.Code)

	again := s.serve("/auctions/9", func(c echo.Context) error {
		return c.String(http.StatusOK, "found")
	})
	s.Equal("found", again.Body.String())
}
