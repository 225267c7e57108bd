package keeper

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	mockAuction "github.com/x-xyz/auctionhouse/domain/auction/mocks"
)

var mockCtx = ctx.Background()

type settlerSuite struct {
	suite.Suite
	auction *mockAuction.Usecase
	im      *Settler
}

func TestSettlerSuite(t *testing.T) {
	suite.Run(t, new(settlerSuite))
}

func (s *settlerSuite) SetupTest() {
	s.auction = &mockAuction.Usecase{}
	s.im = NewSettler(&SettlerCfg{
		Auction:      s.auction,
		Batch:        10,
		Workers:      2,
		Interval:     time.Hour,
		RetryLimit:   3,
		BackoffStart: time.Millisecond,
		BackoffLimit: 4 * time.Millisecond,
	})
}

func (s *settlerSuite) TearDownTest() {
	s.auction.AssertExpectations(s.T())
}

func (s *settlerSuite) TestRunOnce() {
	s.auction.On("ListExpired", mock.Anything, 10).Return([]*auction.Auction{{ItemId: 1}, {ItemId: 2}, {ItemId: 3}}, nil).Once()
	s.auction.On("EndAuction", mock.Anything, domain.ItemId(1)).Return(&auction.Settlement{ItemId: 1}, nil).Once()
	// settled concurrently by another replica
	s.auction.On("EndAuction", mock.Anything, domain.ItemId(2)).Return(nil, domain.ErrAuctionNotFound).Once()
	s.auction.On("EndAuction", mock.Anything, domain.ItemId(3)).Return(nil, errors.New("lock wait timeout")).Once()
	s.auction.On("EndAuction", mock.Anything, domain.ItemId(3)).Return(&auction.Settlement{ItemId: 3}, nil).Once()

	n, resolved, err := s.im.RunOnce(mockCtx)
	s.NoError(err)
	s.Equal(3, n)
	s.Equal(3, resolved)
}

func (s *settlerSuite) TestGiveUpAfterRetryLimit() {
	s.auction.On("ListExpired", mock.Anything, 10).Return([]*auction.Auction{{ItemId: 4}}, nil).Once()
	s.auction.On("EndAuction", mock.Anything, domain.ItemId(4)).Return(nil, errors.New("db down")).Times(3)

	n, resolved, err := s.im.RunOnce(mockCtx)
	s.NoError(err)
	s.Equal(1, n)
	s.Equal(0, resolved)
}

func (s *settlerSuite) TestListError() {
	s.auction.On("ListExpired", mock.Anything, 10).Return(nil, errors.New("db down")).Once()

	_, _, err := s.im.RunOnce(mockCtx)
	s.Error(err)
}

func (s *settlerSuite) TestWaitAfterBatchWithoutProgress() {
	s.im = NewSettler(&SettlerCfg{
		Auction:    s.auction,
		Batch:      1,
		Workers:    1,
		Interval:   time.Hour,
		RetryLimit: 1,
	})

	var lists int32
	listed := make(chan struct{}, 8)
	s.auction.On("ListExpired", mock.Anything, 1).Return([]*auction.Auction{{ItemId: 5}}, nil).Run(func(mock.Arguments) {
		atomic.AddInt32(&lists, 1)
		listed <- struct{}{}
	})
	s.auction.On("EndAuction", mock.Anything, domain.ItemId(5)).Return(nil, errors.New("db down"))

	c, cancel := ctx.WithCancel(mockCtx)
	s.im.Start(c)
	<-listed
	// a retry round would list again right away
	time.Sleep(50 * time.Millisecond)
	cancel()
	s.im.Wait()
	s.Equal(int32(1), atomic.LoadInt32(&lists))
}

func (s *settlerSuite) TestStopOnCancel() {
	c, cancel := ctx.WithCancel(mockCtx)
	called := make(chan struct{})
	s.auction.On("ListExpired", mock.Anything, 10).Return([]*auction.Auction{}, nil).Run(func(mock.Arguments) { close(called) }).Once()

	s.im.Start(c)
	<-called
	cancel()
	s.im.Wait()
}
