package repository

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/vault"
	"github.com/x-xyz/auctionhouse/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) vault.Repo {
	return &impl{q}
}

func (im *impl) Insert(c ctx.Ctx, t vault.Transfer) error {
	if err := im.q.Insert(c, domain.TableVaultTransfers, t); err != nil {
		c.WithFields(log.Fields{
			"transfer": t,
			"err":      err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindByAccount(c ctx.Ctx, account domain.Address, offset, limit int) ([]*vault.Transfer, error) {
	res := []*vault.Transfer{}
	if err := im.q.Search(c, domain.TableVaultTransfers, offset, limit, "-createdAt", bson.M{"account": account.ToLower()}, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

type Memory struct {
	mu        sync.RWMutex
	transfers []vault.Transfer
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Snapshot() func() {
	m.mu.RLock()
	n := len(m.transfers)
	m.mu.RUnlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.transfers = m.transfers[:n]
	}
}

func (m *Memory) Insert(c ctx.Ctx, t vault.Transfer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transfers = append(m.transfers, t)
	return nil
}

// FindByAccount returns the newest transfers first
func (m *Memory) FindByAccount(c ctx.Ctx, account domain.Address, offset, limit int) ([]*vault.Transfer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := []*vault.Transfer{}
	skipped := 0
	for i := len(m.transfers) - 1; i >= 0; i-- {
		t := m.transfers[i]
		if !t.Account.Equals(account) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		res = append(res, &t)
		if limit > 0 && len(res) >= limit {
			break
		}
	}
	return res, nil
}
