package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im *impl
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("test", 1).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetGet() {
	ts.NoError(ts.im.Set(mockCtx, "bid:1", []byte(`{"amount":"2"}`), 10*time.Second))

	v, ttl, err := ts.im.Get(mockCtx, "bid:1")
	ts.NoError(err)
	ts.Equal(`{"amount":"2"}`, string(v))
	ts.True(ttl > 0 && ttl <= 10*time.Second, ttl)

	_, _, err = ts.im.Get(mockCtx, "bid:2")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestNoExpire() {
	ts.NoError(ts.im.Set(mockCtx, "bid:1", []byte("1"), 0))
	_, ttl, err := ts.im.Get(mockCtx, "bid:1")
	ts.NoError(err)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "bid:1", []byte("1"), time.Second))
	ts.NoError(ts.im.Del(mockCtx, "bid:1"))
	_, _, err := ts.im.Get(mockCtx, "bid:1")
	ts.Equal(provider.ErrNotFound, err)
	ts.NoError(ts.im.Del(mockCtx, "bid:1"))
}
