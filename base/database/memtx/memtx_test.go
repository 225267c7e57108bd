package memtx

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
)

var mockCtx = ctx.Background()

type kv struct {
	mu sync.Mutex
	m  map[string]int
}

func (s *kv) Snapshot() func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(map[string]int, len(s.m))
	for k, v := range s.m {
		copied[k] = v
	}
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.m = copied
	}
}

func (s *kv) set(k string, v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[k] = v
}

type memtxSuite struct {
	suite.Suite
	a  *kv
	b  *kv
	im *Runner
}

func (s *memtxSuite) SetupTest() {
	s.a = &kv{m: map[string]int{"x": 1}}
	s.b = &kv{m: map[string]int{}}
	s.im = New(s.a)
	s.im.Register(s.b)
}

func TestMemtxSuite(t *testing.T) {
	suite.Run(t, new(memtxSuite))
}

func (s *memtxSuite) TestCommit() {
	err := s.im.RunWithTransaction(mockCtx, func(c ctx.Ctx) error {
		s.a.set("x", 2)
		s.b.set("y", 3)
		return nil
	})
	s.Require().NoError(err)
	s.Equal(2, s.a.m["x"])
	s.Equal(3, s.b.m["y"])
}

func (s *memtxSuite) TestRollbackOnError() {
	errBoom := errors.New("boom")
	err := s.im.RunWithTransaction(mockCtx, func(c ctx.Ctx) error {
		s.a.set("x", 2)
		s.b.set("y", 3)
		return errBoom
	})
	s.Equal(errBoom, err)
	s.Equal(map[string]int{"x": 1}, s.a.m)
	s.Empty(s.b.m)
}

func (s *memtxSuite) TestRollbackOnPanic() {
	s.Panics(func() {
		s.im.RunWithTransaction(mockCtx, func(c ctx.Ctx) error {
			s.b.set("y", 3)
			panic("boom")
		})
	})
	s.Empty(s.b.m)
}
