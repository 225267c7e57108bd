package repository

import (
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/ledger"
	"github.com/x-xyz/auctionhouse/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) ledger.Repo {
	return &impl{q}
}

func (im *impl) FindOne(c ctx.Ctx, account domain.Address) (*ledger.Balance, error) {
	res := &ledger.Balance{}
	if err := im.q.FindOne(c, domain.TableBalances, bson.M{"account": account.ToLower()}, res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx) ([]*ledger.Balance, error) {
	res := []*ledger.Balance{}

	// to prevent scancol error
	qry := bson.M{"account": bson.M{"$exists": true}}

	if err := im.q.Search(c, domain.TableBalances, 0, 0, "account", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Upsert(c ctx.Ctx, b ledger.Balance) error {
	b.Account = b.Account.ToLower()
	if err := im.q.Upsert(c, domain.TableBalances, bson.M{"account": b.Account}, b); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

type Memory struct {
	mu       sync.RWMutex
	balances map[domain.Address]ledger.Balance
}

func NewMemory() *Memory {
	return &Memory{balances: map[domain.Address]ledger.Balance{}}
}

func (m *Memory) Snapshot() func() {
	m.mu.RLock()
	copied := make(map[domain.Address]ledger.Balance, len(m.balances))
	for k, v := range m.balances {
		copied[k] = v
	}
	m.mu.RUnlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.balances = copied
	}
}

func (m *Memory) FindOne(c ctx.Ctx, account domain.Address) (*ledger.Balance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.balances[account.ToLower()]; ok {
		return &b, nil
	}
	return nil, nil
}

func (m *Memory) FindAll(c ctx.Ctx) ([]*ledger.Balance, error) {
	m.mu.RLock()
	res := make([]*ledger.Balance, 0, len(m.balances))
	for _, b := range m.balances {
		b := b
		res = append(res, &b)
	}
	m.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool { return res[i].Account < res[j].Account })
	return res, nil
}

func (m *Memory) Upsert(c ctx.Ctx, b ledger.Balance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.Account = b.Account.ToLower()
	m.balances[b.Account] = b
	return nil
}
