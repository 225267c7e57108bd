package repository

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/activity"
	"github.com/x-xyz/auctionhouse/service/query"
)

func makeSearchQuery(opts activity.SearchOptions) bson.M {
	qry := bson.M{}

	if opts.ItemId != nil {
		qry["itemId"] = *opts.ItemId
	}

	if opts.Account != nil {
		qry["account"] = *opts.Account
	}

	if len(opts.Types) > 1 {
		qry["type"] = bson.M{"$in": opts.Types}
	} else if len(opts.Types) > 0 {
		qry["type"] = opts.Types[0]
	}

	if len(qry) == 0 {
		// to prevent scancol error
		qry["time"] = bson.M{"$exists": true}
	}

	return qry
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) activity.Repo {
	return &impl{q}
}

func (im *impl) Insert(c ctx.Ctx, e activity.Event) error {
	if err := im.q.Insert(c, domain.TableActivities, e); err != nil {
		c.WithFields(log.Fields{
			"event": e,
			"err":   err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) Search(c ctx.Ctx, optFns ...activity.SearchOptionsFunc) ([]*activity.Event, error) {
	opts, err := activity.GetSearchOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("activity.GetSearchOptions failed")
		return nil, err
	}

	qry := makeSearchQuery(opts)
	res := []*activity.Event{}
	if err := im.q.Search(c, domain.TableActivities, opts.Offset, opts.Limit, "-time", qry, &res); err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

type Memory struct {
	mu     sync.RWMutex
	events []activity.Event
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Insert(c ctx.Ctx, e activity.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	return nil
}

func (m *Memory) Search(c ctx.Ctx, optFns ...activity.SearchOptionsFunc) ([]*activity.Event, error) {
	opts, err := activity.GetSearchOptions(optFns...)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	res := []*activity.Event{}
	skipped := 0
	for i := len(m.events) - 1; i >= 0; i-- {
		e := m.events[i]
		if !match(opts, &e) {
			continue
		}
		if skipped < opts.Offset {
			skipped++
			continue
		}
		res = append(res, &e)
		if opts.Limit > 0 && len(res) >= opts.Limit {
			break
		}
	}
	return res, nil
}

func match(opts activity.SearchOptions, e *activity.Event) bool {
	if opts.ItemId != nil && (e.ItemId == nil || *e.ItemId != *opts.ItemId) {
		return false
	}
	if opts.Account != nil && !e.Account.Equals(*opts.Account) {
		return false
	}
	if len(opts.Types) > 0 {
		for _, t := range opts.Types {
			if t == e.Type {
				return true
			}
		}
		return false
	}
	return true
}
