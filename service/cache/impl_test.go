package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain/keys"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
	"github.com/x-xyz/auctionhouse/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type bid struct {
	Bidder string `json:"bidder"`
	Amount string `json:"amount"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   keys.PfxHighestBid,
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "1"
		v = bid{"0xa", "2"}
		c = &bid{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey(keys.PfxHighestBid, k), sv, time.Minute))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestSetDel() {
	var (
		k = "1"
		v = bid{"0xa", "2"}
		c = &bid{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))
	sv, _, err := ts.cache.Get(mockCtx, keys.RedisKey(keys.PfxHighestBid, k))
	ts.NoError(err)
	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	ts.NoError(ts.im.Del(mockCtx, k))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k     = "1"
		v     = bid{"0xa", "2"}
		calls = 0
	)
	getter := func() (interface{}, error) {
		calls++
		res := v
		return &res, nil
	}

	c := &bid{}
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)

	c = &bid{}
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFuncError() {
	errMissing := errors.New("missing")
	c := &bid{}
	ts.Equal(errMissing, ts.im.GetByFunc(mockCtx, "2", c, func() (interface{}, error) {
		return nil, errMissing
	}))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "2", c))
}
