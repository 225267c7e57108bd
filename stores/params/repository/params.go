package repository

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/params"
	"github.com/x-xyz/auctionhouse/service/query"
)

// params are stored as a single document
const paramsId = "engine"

type document struct {
	Id            string `bson:"_id"`
	params.Params `bson:",inline"`
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) params.Repo {
	return &impl{q}
}

func (im *impl) Get(c ctx.Ctx) (*params.Params, error) {
	res := &document{}
	if err := im.q.FindOne(c, domain.TableParams, bson.M{"_id": paramsId}, res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &res.Params, nil
}

func (im *impl) Upsert(c ctx.Ctx, p params.Params) error {
	if err := im.q.Upsert(c, domain.TableParams, bson.M{"_id": paramsId}, document{Id: paramsId, Params: p}); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

type Memory struct {
	mu     sync.RWMutex
	params *params.Params
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Snapshot() func() {
	m.mu.RLock()
	saved := m.params
	m.mu.RUnlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.params = saved
	}
}

func (m *Memory) Get(c ctx.Ctx) (*params.Params, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.params == nil {
		return nil, nil
	}
	p := *m.params
	return &p, nil
}

func (m *Memory) Upsert(c ctx.Ctx, p params.Params) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.params = &p
	return nil
}
