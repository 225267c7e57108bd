package keys

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type keysSuite struct {
	suite.Suite
}

func TestKeysSuite(t *testing.T) {
	suite.Run(t, new(keysSuite))
}

func (s *keysSuite) TestRedisKey() {
	s.Equal("highestBid:12", RedisKey(PfxHighestBid, "12"))
	s.Equal("nonce", RedisKey(PfxNonce))
	s.Equal("a|b", CustomKey("|", "a", "b"))
}

func (s *keysSuite) TestGetPrefix() {
	s.Equal("highestBid", GetPrefix("highestBid:12"))
	s.Equal("cache:highestBid", GetPrefix("cache:highestBid:12"))
	s.Equal("", GetPrefix("single"))
}
