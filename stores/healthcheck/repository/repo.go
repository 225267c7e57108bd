package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/database/mongoclient"
	"github.com/x-xyz/auctionhouse/domain/healthcheck"
	"github.com/x-xyz/auctionhouse/domain/keys"
	"github.com/x-xyz/auctionhouse/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mgoClient *mongoclient.Client
	redis     redis.Service
}

// New takes nil for the stores the process runs without.
func New(mgoClient *mongoclient.Client, redis redis.Service) healthcheck.Repo {
	return &impl{
		mgoClient: mgoClient,
		redis:     redis,
	}
}

func (im *impl) Ping(c ctx.Ctx) error {
	tc, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()

	if im.mgoClient != nil {
		if err := im.mgoClient.Ping(tc, readpref.Primary()); err != nil {
			c.WithField("err", err).Error("mgoClient.Ping failed")
			return err
		}
	}

	if im.redis != nil {
		if err := im.redis.Set(tc, keys.RedisKey(keys.PfxHealthCheck, "ping"), []byte("1"), 30*time.Second); err != nil {
			c.WithField("err", err).Error("redis.Set failed")
			return err
		}
	}
	return nil
}
