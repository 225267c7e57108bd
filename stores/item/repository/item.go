package repository

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/database/mongoclient"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/item"
	"github.com/x-xyz/auctionhouse/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) item.Repo {
	return &impl{q}
}

func (im *impl) FindOne(c ctx.Ctx, itemId domain.ItemId) (*item.Item, error) {
	res := &item.Item{}
	if err := im.q.FindOne(c, domain.TableItems, bson.M{"itemId": itemId}, res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Insert(c ctx.Ctx, it item.Item) error {
	if err := im.q.Insert(c, domain.TableItems, it); err == query.ErrDuplicateKey {
		return domain.ErrItemExists
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) Patch(c ctx.Ctx, itemId domain.ItemId, patch item.PatchableItem) error {
	if updater, err := mongoclient.MakeBsonM(patch); err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	} else if err := im.q.Patch(c, domain.TableItems, bson.M{"itemId": itemId}, updater); err == query.ErrNotFound {
		return domain.ErrItemNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Patch failed")
		return err
	}
	return nil
}

type Memory struct {
	mu    sync.RWMutex
	items map[domain.ItemId]item.Item
}

func NewMemory() *Memory {
	return &Memory{items: map[domain.ItemId]item.Item{}}
}

func (m *Memory) Snapshot() func() {
	m.mu.RLock()
	copied := make(map[domain.ItemId]item.Item, len(m.items))
	for k, v := range m.items {
		copied[k] = v
	}
	m.mu.RUnlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.items = copied
	}
}

func (m *Memory) FindOne(c ctx.Ctx, itemId domain.ItemId) (*item.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if it, ok := m.items[itemId]; ok {
		return &it, nil
	}
	return nil, nil
}

func (m *Memory) Insert(c ctx.Ctx, it item.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[it.ItemId]; ok {
		return domain.ErrItemExists
	}
	m.items[it.ItemId] = it
	return nil
}

func (m *Memory) Patch(c ctx.Ctx, itemId domain.ItemId, patch item.PatchableItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[itemId]
	if !ok {
		return domain.ErrItemNotFound
	}
	if patch.Owner != nil {
		it.Owner = *patch.Owner
	}
	if patch.Destroyed != nil {
		it.Destroyed = *patch.Destroyed
	}
	if patch.UpdatedAt != nil {
		it.UpdatedAt = *patch.UpdatedAt
	}
	m.items[itemId] = it
	return nil
}
