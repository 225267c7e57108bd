package compound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
	"github.com/x-xyz/auctionhouse/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	near provider.Provider
	far  provider.Provider
	im   *impl
}

func (ts *testsuite) SetupTest() {
	ts.near = primitive.NewPrimitive("near", 1)
	ts.far = primitive.NewPrimitive("far", 1)
	ts.im = NewCompound([]provider.Provider{ts.near, ts.far}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "highestBid:1"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Minute))
	r0, _, e := ts.near.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r0)
	r1, _, e := ts.far.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r1)
}

func (ts *testsuite) TestGet() {
	cases := []struct {
		Desc  string
		Key   string
		Val   string
		Err   error
		Cache provider.Provider
	}{
		{
			Desc:  "Hit near layer",
			Key:   "highestBid:1",
			Val:   "value 1",
			Cache: ts.near,
		},
		{
			Desc:  "Hit far layer",
			Key:   "highestBid:2",
			Val:   "value 2",
			Cache: ts.far,
		},
		{
			Desc: "Miss",
			Key:  "highestBid:3",
			Err:  provider.ErrNotFound,
		},
	}

	for _, c := range cases {
		if c.Cache != nil {
			ts.NoError(c.Cache.Set(mockCtx, c.Key, []byte(c.Val), time.Minute), c.Desc)
		}

		v, _, e := ts.im.Get(mockCtx, c.Key)
		ts.Equal(c.Val, string(v), c.Desc)
		ts.Equal(c.Err, e, c.Desc)
	}

	// the far hit was copied into the near layer
	v, _, e := ts.near.Get(mockCtx, "highestBid:2")
	ts.NoError(e)
	ts.Equal("value 2", string(v))
}

func (ts *testsuite) TestDel() {
	k := "highestBid:1"
	ts.NoError(ts.im.Set(mockCtx, k, []byte("value"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, k))

	_, _, e := ts.near.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)
	_, _, e = ts.far.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)
}
