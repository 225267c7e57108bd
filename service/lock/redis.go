package lock

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/auctionhouse/base/backoff"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/base/metrics"
	"github.com/x-xyz/auctionhouse/service/redis"
)

var (
	timeNow = time.Now
	met     = metrics.New("lock")

	// releases the key only if it still holds our token
	releaseScript = redis.NewScript(1, `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)
)

type redisLocker struct {
	redis  redis.Service
	config Config
}

func NewRedis(r redis.Service, config Config) Locker {
	return &redisLocker{
		redis:  r,
		config: config,
	}
}

func (l *redisLocker) Lock(c ctx.Ctx, key string) (Unlocker, error) {
	defer met.BumpTime("lock.time").End()

	token := uuid.NewString()
	deadline := timeNow().Add(l.config.Wait)
	b := backoff.NewExponential(5*time.Millisecond, 200*time.Millisecond)

	for {
		err := l.redis.SetNX(c, key, []byte(token), l.config.Ttl)
		if err == nil {
			return l.unlocker(c, key, token), nil
		} else if err != redis.ErrNotFound {
			c.WithFields(log.Fields{"key": key, "err": err}).Error("redis.SetNX failed")
			met.BumpSum("lock.err", 1)
			return nil, err
		}

		if timeNow().Add(b.NextDuration).After(deadline) {
			met.BumpSum("lock.timeout", 1)
			return nil, ErrLockTimeout
		}
		if err := b.Backoff(c); err != nil {
			return nil, err
		}
	}
}

func (l *redisLocker) unlocker(c ctx.Ctx, key, token string) Unlocker {
	once := sync.Once{}
	return func() {
		once.Do(func() {
			if _, err := l.redis.ScriptDo(c, releaseScript, key, token); err != nil {
				c.WithFields(log.Fields{"key": key, "err": err}).Warn("release lock failed")
				met.BumpSum("unlock.err", 1)
			}
		})
	}
}
