package repository

import (
	"sort"
	"sync"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
)

type Memory struct {
	mu       sync.RWMutex
	auctions map[domain.ItemId]auction.Auction
}

// NewMemory returns an auction.Repo kept in process memory. It can be registered
// to a memtx.Runner for transactional use.
func NewMemory() *Memory {
	return &Memory{auctions: map[domain.ItemId]auction.Auction{}}
}

func (m *Memory) Snapshot() func() {
	m.mu.RLock()
	copied := make(map[domain.ItemId]auction.Auction, len(m.auctions))
	for k, v := range m.auctions {
		copied[k] = v
	}
	m.mu.RUnlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.auctions = copied
	}
}

func (m *Memory) FindOne(c ctx.Ctx, itemId domain.ItemId) (*auction.Auction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.auctions[itemId]; ok {
		return &a, nil
	}
	return nil, nil
}

func (m *Memory) FindAll(c ctx.Ctx, optFns ...auction.ListOptionsFunc) ([]*auction.Auction, error) {
	opts, err := auction.GetListOptions(optFns...)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	res := []*auction.Auction{}
	for _, a := range m.auctions {
		if opts.EndedBefore != nil && a.EndTime.After(*opts.EndedBefore) {
			continue
		}
		a := a
		res = append(res, &a)
	}
	m.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool {
		if opts.EndedBefore != nil && !res[i].EndTime.Equal(res[j].EndTime) {
			return res[i].EndTime.Before(res[j].EndTime)
		}
		return res[i].ItemId < res[j].ItemId
	})

	if opts.Offset >= len(res) {
		return []*auction.Auction{}, nil
	}
	res = res[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(res) {
		res = res[:opts.Limit]
	}
	return res, nil
}

func (m *Memory) Create(c ctx.Ctx, a auction.Auction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.auctions[a.ItemId]; ok {
		return domain.ErrAuctionAlreadyActive
	}
	m.auctions[a.ItemId] = a
	return nil
}

func (m *Memory) Update(c ctx.Ctx, a auction.Auction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.auctions[a.ItemId] = a
	return nil
}

func (m *Memory) Delete(c ctx.Ctx, itemId domain.ItemId) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.auctions[itemId]; !ok {
		return domain.ErrAuctionNotFound
	}
	delete(m.auctions, itemId)
	return nil
}

type MemoryConfig struct {
	mu      sync.RWMutex
	configs map[domain.ItemId]auction.Config
}

func NewMemoryConfig() *MemoryConfig {
	return &MemoryConfig{configs: map[domain.ItemId]auction.Config{}}
}

func (m *MemoryConfig) Snapshot() func() {
	m.mu.RLock()
	copied := make(map[domain.ItemId]auction.Config, len(m.configs))
	for k, v := range m.configs {
		copied[k] = v
	}
	m.mu.RUnlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.configs = copied
	}
}

func (m *MemoryConfig) FindOne(c ctx.Ctx, itemId domain.ItemId) (*auction.Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if cfg, ok := m.configs[itemId]; ok {
		return &cfg, nil
	}
	return nil, nil
}

func (m *MemoryConfig) Upsert(c ctx.Ctx, cfg auction.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configs[cfg.ItemId] = cfg
	return nil
}

type MemorySettlement struct {
	mu          sync.RWMutex
	settlements []auction.Settlement
}

func NewMemorySettlement() *MemorySettlement {
	return &MemorySettlement{}
}

func (m *MemorySettlement) Snapshot() func() {
	m.mu.RLock()
	n := len(m.settlements)
	m.mu.RUnlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.settlements = m.settlements[:n]
	}
}

func (m *MemorySettlement) Insert(c ctx.Ctx, s auction.Settlement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settlements = append(m.settlements, s)
	return nil
}

func (m *MemorySettlement) FindByItemId(c ctx.Ctx, itemId domain.ItemId) (*auction.Settlement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := len(m.settlements) - 1; i >= 0; i-- {
		if m.settlements[i].ItemId == itemId {
			s := m.settlements[i]
			return &s, nil
		}
	}
	return nil, nil
}
