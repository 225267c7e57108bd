package lock

import (
	"sync"

	"github.com/x-xyz/auctionhouse/base/ctx"
)

type localLocker struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

// NewLocal returns a Locker scoped to this process, for single-replica deployments and tests.
func NewLocal() Locker {
	return &localLocker{locks: map[string]chan struct{}{}}
}

func (l *localLocker) sem(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.locks[key]
	if !ok {
		s = make(chan struct{}, 1)
		l.locks[key] = s
	}
	return s
}

func (l *localLocker) Lock(c ctx.Ctx, key string) (Unlocker, error) {
	s := l.sem(key)
	select {
	case s <- struct{}{}:
	case <-c.Done():
		return nil, c.Err()
	}

	once := sync.Once{}
	return func() {
		once.Do(func() { <-s })
	}, nil
}
