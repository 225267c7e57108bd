package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/metrics"
	"github.com/x-xyz/auctionhouse/domain/keys"
)

var mockCtx = ctx.Background()

type redisSuite struct {
	suite.Suite
}

func TestRedisSuite(t *testing.T) {
	suite.Run(t, new(redisSuite))
}

func (s *redisSuite) TestNoPool() {
	r := New("test", metrics.New("redis"), nil)
	key := keys.RedisKey(keys.PfxHighestBid, "1")

	_, err := r.Get(mockCtx, key)
	s.Equal(ErrNoPool, err)
	s.Equal(ErrNoPool, r.Set(mockCtx, key, []byte("1"), time.Second))
	s.Equal(ErrNoPool, r.SetNX(mockCtx, key, []byte("1"), Forever))
	_, err = r.ScriptDo(mockCtx, NewScript(1, "return 1"), key)
	s.Equal(ErrNoPool, err)
	s.Equal("test", r.Name())
}

func (s *redisSuite) TestDelWithoutKeys() {
	r := New("test", metrics.New("redis"), &Pools{})
	_, err := r.Del(mockCtx)
	s.Error(err)
}

func (s *redisSuite) TestScriptPrefix() {
	s.Equal("engineLock", NewScript(1, "").prefix("engineLock:7", "token"))
	s.Equal(metrics.TagValueNA, NewScript(0, "").prefix("engineLock:7"))
	s.Equal(metrics.TagValueNA, NewScript(1, "").prefix(7))
}
