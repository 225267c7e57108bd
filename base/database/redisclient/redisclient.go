package redisclient

import (
	"context"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/auctionhouse/base/backoff"
	"github.com/x-xyz/auctionhouse/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second

	defaultMaxIdle   = 200
	defaultMaxActive = 1024

	retryStart = time.Second
	retryLimit = 8 * time.Second
)

// Config is the `redis` config section
type Config struct {
	URI      string `mapstructure:"uri"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// PoolMultiplier scales the pool by cpu count; 0 keeps the fixed defaults
	PoolMultiplier float64 `mapstructure:"poolMultiplier"`
	// Retries is how many extra dials to try before giving up. In k8s a few
	// containers fail the first dial on network setup.
	Retries int `mapstructure:"retries"`
}

func (cfg Config) poolSize() (maxIdle, maxActive int) {
	if cfg.PoolMultiplier <= 0 {
		return defaultMaxIdle, defaultMaxActive
	}
	maxActive = int(float64(runtime.NumCPU()) * cfg.PoolMultiplier)
	if maxActive < 1 {
		maxActive = 1
	}
	// allowing 25% idle connection
	return (maxActive + 3) / 4, maxActive
}

// MustConnectRedis connects to cfg.URI
// NOTE This function panics if the connection fails.
func MustConnectRedis(cfg Config) *redis.Pool {
	p, err := ConnectRedis(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": cfg.URI, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// ConnectRedis builds a pool for cfg.URI and makes sure one connection answers PING.
func ConnectRedis(cfg Config) (*redis.Pool, error) {
	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
		redis.DialDatabase(cfg.DB),
	}
	if cfg.Password != "" {
		opts = append(opts, redis.DialPassword(cfg.Password))
	}

	maxIdle, maxActive := cfg.poolSize()
	p := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", cfg.URI, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// No need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	logger := log.Log().WithField("redisURI", cfg.URI)
	b := backoff.NewExponential(retryStart, retryLimit)
	var err error
	for attempt := 0; attempt <= cfg.Retries; attempt++ {
		if attempt > 0 {
			_ = b.Backoff(context.Background())
		}
		if err = ping(p); err == nil {
			logger.WithFields(log.Fields{"maxIdle": maxIdle, "maxActive": maxActive}).Info("redis connected")
			return p, nil
		}
		logger.WithFields(log.Fields{"err": err, "attempt": attempt}).Error("fail to dial Redis")
	}
	return nil, err
}

func ping(p *redis.Pool) error {
	c, err := p.Dial()
	if err != nil {
		return err
	}
	defer c.Close()
	_, err = c.Do("PING")
	return err
}
