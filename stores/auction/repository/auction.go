package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) auction.Repo {
	return &impl{q}
}

func (im *impl) FindOne(c ctx.Ctx, itemId domain.ItemId) (*auction.Auction, error) {
	res := &auction.Auction{}
	if err := im.q.FindOne(c, domain.TableAuctions, bson.M{"itemId": itemId}, res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...auction.ListOptionsFunc) ([]*auction.Auction, error) {
	opts, err := auction.GetListOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("auction.GetListOptions failed")
		return nil, err
	}

	// to prevent scancol error
	qry := bson.M{"itemId": bson.M{"$exists": true}}
	sort := "itemId"
	if opts.EndedBefore != nil {
		qry = bson.M{"endTime": bson.M{"$lte": *opts.EndedBefore}}
		sort = "endTime"
	}

	res := []*auction.Auction{}
	if err := im.q.Search(c, domain.TableAuctions, opts.Offset, opts.Limit, sort, qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Create(c ctx.Ctx, a auction.Auction) error {
	if err := im.q.Insert(c, domain.TableAuctions, a); err == query.ErrDuplicateKey {
		return domain.ErrAuctionAlreadyActive
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) Update(c ctx.Ctx, a auction.Auction) error {
	if err := im.q.Upsert(c, domain.TableAuctions, bson.M{"itemId": a.ItemId}, a); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Delete(c ctx.Ctx, itemId domain.ItemId) error {
	if err := im.q.Remove(c, domain.TableAuctions, bson.M{"itemId": itemId}); err == query.ErrNotFound {
		return domain.ErrAuctionNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
