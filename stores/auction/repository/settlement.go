package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/service/query"
)

type settlementRepo struct {
	q query.Mongo
}

func NewSettlementRepo(q query.Mongo) auction.SettlementRepo {
	return &settlementRepo{q}
}

func (r *settlementRepo) Insert(c ctx.Ctx, s auction.Settlement) error {
	if err := r.q.Insert(c, domain.TableSettlements, s); err != nil {
		c.WithFields(log.Fields{
			"itemId": s.ItemId,
			"err":    err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

// FindByItemId returns the latest settlement of the item
func (r *settlementRepo) FindByItemId(c ctx.Ctx, itemId domain.ItemId) (*auction.Settlement, error) {
	res := []*auction.Settlement{}
	if err := r.q.Search(c, domain.TableSettlements, 0, 1, "-settledAt", bson.M{"itemId": itemId}, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	if len(res) == 0 {
		return nil, nil
	}
	return res[0], nil
}
