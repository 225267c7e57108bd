package repository

import (
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/allowlist"
	"github.com/x-xyz/auctionhouse/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) allowlist.Repo {
	return &impl{q}
}

func (im *impl) FindAll(c ctx.Ctx) ([]*allowlist.Entry, error) {
	res := []*allowlist.Entry{}

	// to prevent scancol error
	qry := bson.M{"address": bson.M{"$exists": true}}

	if err := im.q.Search(c, domain.TableAllowList, 0, 0, "_id", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, address domain.Address) (*allowlist.Entry, error) {
	res := &allowlist.Entry{}
	if err := im.q.FindOne(c, domain.TableAllowList, bson.M{"address": address.ToLower()}, res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Create(c ctx.Ctx, value allowlist.Entry) error {
	value.Address = value.Address.ToLower()
	if err := im.q.Upsert(c, domain.TableAllowList, bson.M{"address": value.Address}, value); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Delete(c ctx.Ctx, address domain.Address) error {
	if err := im.q.Remove(c, domain.TableAllowList, bson.M{"address": address.ToLower()}); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}

type Memory struct {
	mu      sync.RWMutex
	entries map[domain.Address]allowlist.Entry
}

func NewMemory() *Memory {
	return &Memory{entries: map[domain.Address]allowlist.Entry{}}
}

func (m *Memory) Snapshot() func() {
	m.mu.RLock()
	copied := make(map[domain.Address]allowlist.Entry, len(m.entries))
	for k, v := range m.entries {
		copied[k] = v
	}
	m.mu.RUnlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.entries = copied
	}
}

func (m *Memory) FindAll(c ctx.Ctx) ([]*allowlist.Entry, error) {
	m.mu.RLock()
	res := make([]*allowlist.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		e := e
		res = append(res, &e)
	}
	m.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool { return res[i].Address < res[j].Address })
	return res, nil
}

func (m *Memory) FindOne(c ctx.Ctx, address domain.Address) (*allowlist.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[address.ToLower()]; ok {
		return &e, nil
	}
	return nil, nil
}

func (m *Memory) Create(c ctx.Ctx, value allowlist.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	value.Address = value.Address.ToLower()
	m.entries[value.Address] = value
	return nil
}

func (m *Memory) Delete(c ctx.Ctx, address domain.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[address.ToLower()]; !ok {
		return domain.ErrNotFound
	}
	delete(m.entries, address.ToLower())
	return nil
}
