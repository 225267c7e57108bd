package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/metrics"
	"github.com/x-xyz/auctionhouse/domain/keys"
)

const (
	// Forever means the key never expires
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil
	// ErrNoTTL is returned by TTL when the key exists without an expire
	ErrNoTTL = errors.New("key has no ttl")
	// ErrNoPool is returned when no connection pool is configured
	ErrNoPool = errors.New("no redis pool")
)

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// Service is the redis client used by the cache, lock and auth nonce stores.
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX sets the key only when it does not exist, returning ErrNotFound otherwise
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	TTL(context ctx.Ctx, key string) (int, error)
	ScriptDo(context ctx.Ctx, hdl *ScriptHdl, keysAndArgs ...interface{}) (interface{}, error)
	Name() string
}

// ScriptHdl wraps a lua script evaluated with EVALSHA.
type ScriptHdl struct {
	keyCount int
	script   *redis.Script
}

func NewScript(keyCount int, src string) *ScriptHdl {
	return &ScriptHdl{
		keyCount: keyCount,
		script:   redis.NewScript(keyCount, src),
	}
}

func (h *ScriptHdl) Do(conn redis.Conn, keysAndArgs ...interface{}) (interface{}, error) {
	return h.script.Do(conn, keysAndArgs...)
}

func (h *ScriptHdl) prefix(keysAndArgs ...interface{}) string {
	if h.keyCount == 0 || len(keysAndArgs) == 0 {
		return metrics.TagValueNA
	}
	if k, ok := keysAndArgs[0].(string); ok {
		return keys.GetPrefix(k)
	}
	return metrics.TagValueNA
}
