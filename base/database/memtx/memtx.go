// Package memtx provides all-or-nothing transactions over in-memory stores.
package memtx

import (
	"sync"

	"github.com/x-xyz/auctionhouse/base/ctx"
)

// Snapshotter is a store able to roll its state back.
type Snapshotter interface {
	// Snapshot captures the current state and returns a function restoring it
	Snapshot() (restore func())
}

// Runner serializes transactions and restores every registered store when one fails.
type Runner struct {
	mu     sync.Mutex
	stores []Snapshotter
}

func New(stores ...Snapshotter) *Runner {
	return &Runner{stores: stores}
}

func (r *Runner) Register(stores ...Snapshotter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores = append(r.stores, stores...)
}

func (r *Runner) RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	restores := make([]func(), 0, len(r.stores))
	for _, s := range r.stores {
		restores = append(restores, s.Snapshot())
	}

	rollback := func() {
		for i := len(restores) - 1; i >= 0; i-- {
			restores[i]()
		}
	}

	defer func() {
		if p := recover(); p != nil {
			rollback()
			panic(p)
		}
	}()

	if err := run(c); err != nil {
		rollback()
		return err
	}
	return nil
}
