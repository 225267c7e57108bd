// Package keeper settles expired auctions so the sequence keeps moving without a caller.
package keeper

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/auctionhouse/base/backoff"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/base/metrics"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
)

var met = metrics.New("keeper")

type SettlerCfg struct {
	Auction  auction.Usecase
	Batch    int
	Workers  int
	Interval time.Duration
	// RetryLimit bounds the attempts per auction within one round
	RetryLimit   int
	BackoffStart time.Duration
	BackoffLimit time.Duration
}

type Settler struct {
	auction      auction.Usecase
	batch        int
	interval     time.Duration
	retryLimit   int
	backoffStart time.Duration
	backoffLimit time.Duration
	workerPool   *goroutines.Pool
	stoppedCh    chan interface{}
}

func NewSettler(cfg *SettlerCfg) *Settler {
	batch, workers, retryLimit := cfg.Batch, cfg.Workers, cfg.RetryLimit
	if batch <= 0 {
		batch = 50
	}
	if workers <= 0 {
		workers = 4
	}
	if retryLimit <= 0 {
		retryLimit = 1
	}
	return &Settler{
		auction:      cfg.Auction,
		batch:        batch,
		interval:     cfg.Interval,
		retryLimit:   retryLimit,
		backoffStart: cfg.BackoffStart,
		backoffLimit: cfg.BackoffLimit,
		workerPool:   goroutines.NewPool(workers, goroutines.WithTaskQueueLength(batch)),
		stoppedCh:    make(chan interface{}),
	}
}

func (s *Settler) Start(ctx bCtx.Ctx) {
	go s.loop(ctx)
}

// Wait blocks until the loop stops and the worker pool drains.
func (s *Settler) Wait() {
	<-s.stoppedCh
}

func (s *Settler) loop(ctx bCtx.Ctx) {
	defer close(s.stoppedCh)
	defer s.workerPool.Release()

	nextTick := time.Duration(0)
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(nextTick):
			n, resolved, err := s.RunOnce(ctx)
			if err != nil {
				ctx.WithField("err", err).Error("settler.RunOnce failed")
			}
			// a full batch means more may be waiting, unless none of it could be resolved
			if err == nil && n >= s.batch && resolved > 0 {
				nextTick = 0
			} else {
				nextTick = s.interval
			}
		}
	}
}

// RunOnce settles one batch of expired auctions. It returns how many were attempted
// and how many of them left the expired list, settled here or elsewhere.
func (s *Settler) RunOnce(ctx bCtx.Ctx) (int, int, error) {
	expired, err := s.auction.ListExpired(ctx, s.batch)
	if err != nil {
		ctx.WithField("err", err).Error("auction.ListExpired failed")
		return 0, 0, err
	}

	var resolved int32
	wg := sync.WaitGroup{}
	for _, a := range expired {
		itemId := a.ItemId
		wg.Add(1)
		if err := s.workerPool.Schedule(func() {
			defer wg.Done()
			if s.settle(ctx, itemId) {
				atomic.AddInt32(&resolved, 1)
			}
		}); err != nil {
			wg.Done()
			ctx.WithFields(log.Fields{"itemId": itemId, "err": err}).Warn("workerPool.Schedule failed")
		}
	}
	wg.Wait()
	return len(expired), int(atomic.LoadInt32(&resolved)), nil
}

// terminal errors mean someone else settled the auction or it is not due, retrying cannot help
func isTerminal(err error) bool {
	return errors.Is(err, domain.ErrAuctionNotFound) || errors.Is(err, domain.ErrAuctionStillActive)
}

// settle reports whether the auction is no longer pending settlement.
func (s *Settler) settle(ctx bCtx.Ctx, itemId domain.ItemId) bool {
	ctx = bCtx.WithLogFields(ctx, log.Fields{"itemId": itemId})
	b := backoff.NewExponential(s.backoffStart, s.backoffLimit)
	for retries := 0; retries < s.retryLimit; retries++ {
		res, err := s.auction.EndAuction(ctx, itemId)
		if err == nil {
			met.BumpSum("settled", 1)
			ctx.WithFields(log.Fields{
				"winner":    res.Winner,
				"amount":    res.Amount,
				"successor": res.HasSuccessor(),
			}).Info("auction settled")
			return true
		} else if isTerminal(err) {
			ctx.WithField("err", err).Info("skip settlement")
			return true
		}

		met.BumpSum("settle.err", 1)
		ctx.WithFields(log.Fields{
			"retries": retries,
			"err":     err,
		}).Warn("auction.EndAuction failed")
		if retries+1 < s.retryLimit && b.Backoff(ctx) != nil {
			// ctx closed
			return false
		}
	}
	return false
}
