package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/service/query"
)

type configRepo struct {
	q query.Mongo
}

func NewConfigRepo(q query.Mongo) auction.ConfigRepo {
	return &configRepo{q}
}

func (r *configRepo) FindOne(c ctx.Ctx, itemId domain.ItemId) (*auction.Config, error) {
	res := &auction.Config{}
	if err := r.q.FindOne(c, domain.TableAuctionConfigs, bson.M{"itemId": itemId}, res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *configRepo) Upsert(c ctx.Ctx, cfg auction.Config) error {
	if err := r.q.Upsert(c, domain.TableAuctionConfigs, bson.M{"itemId": cfg.ItemId}, cfg); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
