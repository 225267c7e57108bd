package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/database/memtx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/activity"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/domain/item"
	"github.com/x-xyz/auctionhouse/domain/ledger"
	"github.com/x-xyz/auctionhouse/domain/params"
	"github.com/x-xyz/auctionhouse/domain/vault"
	"github.com/x-xyz/auctionhouse/service/cache"
	"github.com/x-xyz/auctionhouse/service/cache/provider/primitive"
	"github.com/x-xyz/auctionhouse/service/lock"
	activityRepo "github.com/x-xyz/auctionhouse/stores/activity/repository"
	activityUC "github.com/x-xyz/auctionhouse/stores/activity/usecase"
	allowlistRepo "github.com/x-xyz/auctionhouse/stores/allowlist/repository"
	allowlistUC "github.com/x-xyz/auctionhouse/stores/allowlist/usecase"
	"github.com/x-xyz/auctionhouse/stores/auction/repository"
	itemRepo "github.com/x-xyz/auctionhouse/stores/item/repository"
	itemUC "github.com/x-xyz/auctionhouse/stores/item/usecase"
	ledgerRepo "github.com/x-xyz/auctionhouse/stores/ledger/repository"
	ledgerUC "github.com/x-xyz/auctionhouse/stores/ledger/usecase"
	paramsRepo "github.com/x-xyz/auctionhouse/stores/params/repository"
	paramsUC "github.com/x-xyz/auctionhouse/stores/params/usecase"
	vaultRepo "github.com/x-xyz/auctionhouse/stores/vault/repository"
	vaultUC "github.com/x-xyz/auctionhouse/stores/vault/usecase"
)

var (
	mockCtx = ctx.Background()

	engine       = domain.Address("0xe000000000000000000000000000000000000000")
	admin        = domain.Address("0xad00000000000000000000000000000000000000")
	beneficiary  = domain.Address("0xbe00000000000000000000000000000000000000")
	feeRecipient = domain.Address("0xfe00000000000000000000000000000000000000")
	bidderA      = domain.Address("0xaAaA00000000000000000000000000000000000A")
	bidderB      = domain.Address("0xbBbB00000000000000000000000000000000000B")
	bidderC      = domain.Address("0xcCcC00000000000000000000000000000000000C")

	t0 = time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)
)

var errPayout = errors.New("payout rejected")

// refusingVault collects deposits but refuses every payout.
type refusingVault struct {
	vault.Usecase
}

func (refusingVault) Payout(c ctx.Ctx, to domain.Address, amount domain.Amount, reason vault.Reason, itemId *domain.ItemId) error {
	return errPayout
}

// hookedAuctions runs afterFind once, right after the next FindOne has read the store.
type hookedAuctions struct {
	auction.Repo
	afterFind func()
}

func (h *hookedAuctions) FindOne(c ctx.Ctx, itemId domain.ItemId) (*auction.Auction, error) {
	a, err := h.Repo.FindOne(c, itemId)
	if f := h.afterFind; f != nil {
		h.afterFind = nil
		f()
	}
	return a, err
}

type engineSuite struct {
	suite.Suite

	now time.Time

	auctions    *repository.Memory
	configs     *repository.MemoryConfig
	settlements *repository.MemorySettlement
	balances    *ledgerRepo.Memory
	items       *itemRepo.Memory
	transfers   *vaultRepo.Memory
	activities  *activityRepo.Memory
	paramsRepo  *paramsRepo.Memory

	params params.Usecase
	ledger ledger.Usecase
	cfg    *AuctionUseCaseCfg
	im     auction.Usecase
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(engineSuite))
}

func (s *engineSuite) SetupTest() {
	s.now = t0
	timeNow = func() time.Time { return s.now }

	s.auctions = repository.NewMemory()
	s.configs = repository.NewMemoryConfig()
	s.settlements = repository.NewMemorySettlement()
	s.balances = ledgerRepo.NewMemory()
	s.items = itemRepo.NewMemory()
	s.transfers = vaultRepo.NewMemory()
	s.activities = activityRepo.NewMemory()
	s.paramsRepo = paramsRepo.NewMemory()
	allowList := allowlistRepo.NewMemory()

	tx := memtx.New(s.auctions, s.configs, s.settlements, s.balances, s.items, s.transfers, s.paramsRepo, allowList)

	s.params = paramsUC.New(s.paramsRepo)
	s.Require().NoError(s.params.Init(mockCtx, params.Params{
		EngineAddress: engine,
		MinimumBid:    domain.NewAmount(1),
		FeeRate:       "0",
		Admin:         admin,
		Beneficiary:   beneficiary,
		FeeRecipient:  feeRecipient,
	}))

	publisher := activityUC.New(s.activities)
	s.ledger = ledgerUC.New(s.balances)
	items := itemUC.New(&itemUC.ItemUseCaseCfg{
		Repo:      s.items,
		AllowList: allowlistUC.New(allowList, s.params),
		Params:    s.params,
		Publisher: publisher,
	})

	s.cfg = &AuctionUseCaseCfg{
		Tx:          tx,
		Locker:      lock.NewLocal(),
		Registry:    NewRegistry(s.auctions, s.params),
		Auctions:    s.auctions,
		Configs:     s.configs,
		Settlements: s.settlements,
		Ledger:      s.ledger,
		Items:       items,
		Vault:       vaultUC.New(s.transfers),
		Params:      s.params,
		Publisher:   publisher,
	}
	s.im = New(s.cfg)

	s.custody(1)
	s.custody(2)
}

func (s *engineSuite) TearDownTest() {
	timeNow = time.Now
}

func (s *engineSuite) custody(id domain.ItemId) {
	s.Require().NoError(s.items.Insert(mockCtx, item.Item{ItemId: id, Owner: engine, CreatedAt: t0}))
}

func (s *engineSuite) at(d time.Duration) {
	s.now = t0.Add(d)
}

func (s *engineSuite) create(id domain.ItemId, price uint64) *auction.Auction {
	a, err := s.im.CreateAuction(mockCtx, admin, id, domain.NewAmount(price), time.Hour)
	s.Require().NoError(err)
	return a
}

func (s *engineSuite) bid(id domain.ItemId, bidder domain.Address, amount uint64) error {
	_, err := s.im.PlaceBid(mockCtx, id, bidder, domain.NewAmount(amount))
	return err
}

func (s *engineSuite) balance(account domain.Address) *ledger.Balance {
	b, err := s.im.GetBalance(mockCtx, account)
	s.Require().NoError(err)
	return b
}

func (s *engineSuite) owner(id domain.ItemId) *item.Item {
	it, err := s.items.FindOne(mockCtx, id)
	s.Require().NoError(err)
	s.Require().NotNil(it)
	return it
}

func (s *engineSuite) received(account domain.Address) []*vault.Transfer {
	res, err := s.transfers.FindByAccount(mockCtx, account, 0, 0)
	s.Require().NoError(err)
	return res
}

// lockedMatchesHighestBids checks that every locked unit backs exactly one open highest bid.
func (s *engineSuite) lockedMatchesHighestBids() {
	active, err := s.im.ListActive(mockCtx, 0, 100)
	s.Require().NoError(err)
	sum := domain.ZeroAmount
	for _, a := range active {
		sum, err = sum.Add(a.HighestBid)
		s.Require().NoError(err)
	}
	totals, err := s.ledger.Totals(mockCtx)
	s.Require().NoError(err)
	s.Equal(sum.String(), totals.Locked.String())
}

func (s *engineSuite) TestSequentialScenario() {
	req := s.Require()
	s.create(1, 1)

	s.at(time.Minute)
	req.NoError(s.bid(1, bidderA, 1))
	s.Equal("1", s.balance(bidderA).Locked.String())

	s.at(10 * time.Minute)
	req.NoError(s.bid(1, bidderB, 2))
	s.True(s.balance(bidderA).Locked.IsZero())
	s.Equal("1", s.balance(bidderA).Withdrawable.String())
	s.Equal("2", s.balance(bidderB).Locked.String())
	s.lockedMatchesHighestBids()

	hb, err := s.im.GetHighestBid(mockCtx, 1)
	req.NoError(err)
	s.Equal(bidderB.ToLower(), hb.Bidder)
	s.Equal("2", hb.Amount.String())

	amount, err := s.im.Withdraw(mockCtx, bidderA)
	req.NoError(err)
	s.Equal("1", amount.String())
	s.True(s.balance(bidderA).IsZero())

	s.at(61 * time.Minute)
	settlement, err := s.im.EndAuction(mockCtx, 1)
	req.NoError(err)
	s.Equal(bidderB.ToLower(), settlement.Winner)
	s.Equal("2", settlement.Amount.String())
	s.Equal("2", settlement.Net.String())
	s.True(settlement.Fee.IsZero())
	s.False(settlement.Destroyed)
	s.Equal(bidderB.ToLower(), s.owner(1).Owner)
	s.True(s.balance(bidderB).IsZero())

	req.True(settlement.HasSuccessor())
	next, err := s.im.GetAuction(mockCtx, 2)
	req.NoError(err)
	s.Equal("1", next.StartingPrice.String())
	s.Equal(s.now, next.StartTime)
	s.Equal(s.now.Add(time.Hour), next.EndTime)
	s.False(next.HasBid())

	_, err = s.im.GetAuction(mockCtx, 1)
	s.Equal(domain.ErrAuctionNotFound, err)

	proceeds := s.received(beneficiary)
	req.Len(proceeds, 1)
	s.Equal(vault.ReasonProceeds, proceeds[0].Reason)
	s.Equal("2", proceeds[0].Amount.String())

	refunds := s.received(bidderA)
	req.Len(refunds, 2)
	s.Equal(vault.ReasonWithdrawal, refunds[0].Reason)
	s.Equal(vault.TransferTypePayout, refunds[0].Type)
	s.Equal(vault.ReasonBid, refunds[1].Reason)

	stored, err := s.im.GetSettlement(mockCtx, 1)
	req.NoError(err)
	s.Equal(settlement.Id, stored.Id)

	events, err := s.activities.Search(mockCtx, activity.WithTypes(activity.EventAuctionSettled))
	req.NoError(err)
	s.Len(events, 1)
}

func (s *engineSuite) TestBidTooLow() {
	s.create(1, 5)
	s.at(time.Minute)

	s.Equal(domain.ErrBidTooLow, s.bid(1, bidderA, 4))
	s.Require().NoError(s.bid(1, bidderA, 5))
	s.Equal(domain.ErrBidTooLow, s.bid(1, bidderB, 5))
	s.Require().NoError(s.bid(1, bidderB, 6))
	s.True(s.balance(bidderA).Locked.IsZero())
	s.lockedMatchesHighestBids()
}

func (s *engineSuite) TestStartingPriceBelowMinimumBid() {
	a := s.create(1, 0)
	s.Equal("1", a.StartingPrice.String())
	s.Equal(domain.ErrBidTooLow, s.bid(1, bidderA, 0))
	s.NoError(s.bid(1, bidderA, 1))
}

func (s *engineSuite) TestBidAfterExpiry() {
	s.create(1, 1)
	s.at(time.Hour)
	s.Equal(domain.ErrAuctionExpired, s.bid(1, bidderA, 1))
	s.True(s.balance(bidderA).IsZero())
	s.Empty(s.received(bidderA))
}

func (s *engineSuite) TestBidUnknownAuction() {
	s.Equal(domain.ErrAuctionNotFound, s.bid(7, bidderA, 1))
}

func (s *engineSuite) TestEndActiveAuction() {
	s.create(1, 1)
	s.at(30 * time.Minute)
	_, err := s.im.EndAuction(mockCtx, 1)
	s.Equal(domain.ErrAuctionStillActive, err)

	_, err = s.im.EndAuction(mockCtx, 9)
	s.Equal(domain.ErrAuctionNotFound, err)
}

func (s *engineSuite) TestConfigChangesWhileActive() {
	s.create(1, 1)
	_, err := s.im.SetAuctionDuration(mockCtx, admin, 1, 2*time.Hour)
	s.Equal(domain.ErrAuctionAlreadyActive, err)
	_, err = s.im.SetStartingPrice(mockCtx, admin, 1, domain.NewAmount(3))
	s.Equal(domain.ErrAuctionAlreadyActive, err)

	_, err = s.im.CreateAuction(mockCtx, admin, 1, domain.NewAmount(1), time.Hour)
	s.Equal(domain.ErrAuctionAlreadyActive, err)
}

func (s *engineSuite) TestAdminOnly() {
	_, err := s.im.CreateAuction(mockCtx, bidderA, 1, domain.NewAmount(1), time.Hour)
	s.Equal(domain.ErrUnauthorized, err)
	_, err = s.im.SetAuctionDuration(mockCtx, bidderA, 2, time.Hour)
	s.Equal(domain.ErrUnauthorized, err)
	_, err = s.im.SetStartingPrice(mockCtx, bidderA, 2, domain.NewAmount(1))
	s.Equal(domain.ErrUnauthorized, err)
}

func (s *engineSuite) TestCreateRequiresCustody() {
	_, err := s.im.CreateAuction(mockCtx, admin, 3, domain.NewAmount(1), time.Hour)
	s.Equal(domain.ErrItemNotInCustody, err)

	_, err = s.im.CreateAuction(mockCtx, admin, 1, domain.NewAmount(1), 0)
	s.Equal(domain.ErrInvalidDuration, err)
	_, err = s.im.SetAuctionDuration(mockCtx, admin, 1, -time.Second)
	s.Equal(domain.ErrInvalidDuration, err)
}

func (s *engineSuite) TestWithdrawNothing() {
	_, err := s.im.Withdraw(mockCtx, bidderA)
	s.Equal(domain.ErrNoFundsToWithdraw, err)

	s.create(1, 1)
	s.Require().NoError(s.bid(1, bidderA, 1))
	_, err = s.im.Withdraw(mockCtx, bidderA)
	s.Equal(domain.ErrNoFundsToWithdraw, err)
	s.Equal("1", s.balance(bidderA).Locked.String())
}

func (s *engineSuite) TestSettleWithoutBids() {
	s.create(1, 1)
	s.at(time.Hour)

	settlement, err := s.im.EndAuction(mockCtx, 1)
	s.Require().NoError(err)
	s.True(settlement.Destroyed)
	s.True(settlement.Winner.IsEmpty())
	s.True(s.owner(1).Destroyed)
	s.Equal(domain.EmptyAddress, s.owner(1).Owner)
	s.Empty(s.received(beneficiary))
	s.True(settlement.HasSuccessor())
}

func (s *engineSuite) TestSuccessorNeedsCustody() {
	s.create(2, 1)
	s.at(time.Hour)

	settlement, err := s.im.EndAuction(mockCtx, 2)
	s.Require().NoError(err)
	s.False(settlement.HasSuccessor())

	active, err := s.im.ListActive(mockCtx, 0, 10)
	s.Require().NoError(err)
	s.Empty(active)
}

func (s *engineSuite) TestSuccessorUsesOwnConfig() {
	req := s.Require()
	cfg, err := s.im.SetStartingPrice(mockCtx, admin, 2, domain.NewAmount(5))
	req.NoError(err)
	s.Equal(time.Duration(0), cfg.Duration)

	s.create(1, 1)
	s.at(time.Hour)
	settlement, err := s.im.EndAuction(mockCtx, 1)
	req.NoError(err)
	req.True(settlement.HasSuccessor())
	s.Equal("5", settlement.Successor.StartingPrice.String())
	s.Equal(s.now.Add(time.Hour), settlement.Successor.EndTime)

	stored, err := s.im.GetConfig(mockCtx, 2)
	req.NoError(err)
	s.Equal(time.Hour, stored.Duration)
}

func (s *engineSuite) TestThreeBidders() {
	req := s.Require()
	s.create(1, 1)

	req.NoError(s.bid(1, bidderA, 1))
	req.NoError(s.bid(1, bidderB, 2))
	req.NoError(s.bid(1, bidderC, 3))

	a, err := s.im.GetAuction(mockCtx, 1)
	req.NoError(err)
	s.Equal(bidderC.ToLower(), a.HighestBidder)
	s.Equal(bidderB.ToLower(), a.SecondHighestBidder)
	s.Equal("2", a.SecondHighestBid.String())
	s.Equal(3, a.BidCount)

	// the bidder pushed out of the second slot keeps the refund
	s.Equal("1", s.balance(bidderA).Withdrawable.String())
	s.Equal("2", s.balance(bidderB).Withdrawable.String())
	s.Equal("3", s.balance(bidderC).Locked.String())
	s.lockedMatchesHighestBids()

	totals, err := s.ledger.Totals(mockCtx)
	req.NoError(err)
	s.Equal("3", totals.Withdrawable.String())
}

func (s *engineSuite) TestOutbidSelf() {
	s.create(1, 1)
	s.Require().NoError(s.bid(1, bidderA, 1))
	s.Require().NoError(s.bid(1, bidderA, 4))

	b := s.balance(bidderA)
	s.Equal("4", b.Locked.String())
	s.Equal("1", b.Withdrawable.String())
	s.lockedMatchesHighestBids()
}

func (s *engineSuite) TestFailedBidRollsBack() {
	req := s.Require()
	max := domain.MustParseAmount("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	s.create(1, 1)
	s.create(2, 1)
	_, err := s.im.PlaceBid(mockCtx, 1, bidderA, max)
	req.NoError(err)

	// locking one more unit overflows the bidder's balance
	s.Equal(domain.ErrAmountOverflow, s.bid(2, bidderA, 1))

	a, err := s.im.GetAuction(mockCtx, 2)
	req.NoError(err)
	s.False(a.HasBid())
	s.Equal(0, a.BidCount)
	s.Len(s.received(bidderA), 1)
	s.Equal(max.String(), s.balance(bidderA).Locked.String())
	s.lockedMatchesHighestBids()
}

func (s *engineSuite) TestSettleWithFee() {
	req := s.Require()
	_, err := s.params.SetFeeRate(mockCtx, admin, decimal.RequireFromString("0.05"))
	req.NoError(err)

	s.create(1, 1)
	req.NoError(s.bid(1, bidderA, 1001))
	s.at(time.Hour)

	settlement, err := s.im.EndAuction(mockCtx, 1)
	req.NoError(err)
	s.Equal("50", settlement.Fee.String())
	s.Equal("951", settlement.Net.String())
	s.Equal("0.05", settlement.FeeRate)

	fees := s.received(feeRecipient)
	req.Len(fees, 1)
	s.Equal(vault.ReasonFee, fees[0].Reason)
	s.Equal("50", fees[0].Amount.String())
	proceeds := s.received(beneficiary)
	req.Len(proceeds, 1)
	s.Equal("951", proceeds[0].Amount.String())
}

func (s *engineSuite) TestListExpired() {
	s.create(1, 1)
	expired, err := s.im.ListExpired(mockCtx, 10)
	s.Require().NoError(err)
	s.Empty(expired)

	s.at(time.Hour)
	expired, err = s.im.ListExpired(mockCtx, 10)
	s.Require().NoError(err)
	s.Require().Len(expired, 1)
	s.Equal(domain.ItemId(1), expired[0].ItemId)
}

func (s *engineSuite) TestReadMissing() {
	_, err := s.im.GetHighestBid(mockCtx, 1)
	s.Equal(domain.ErrAuctionNotFound, err)
	_, err = s.im.GetConfig(mockCtx, 1)
	s.Equal(domain.ErrNotFound, err)
	_, err = s.im.GetSettlement(mockCtx, 1)
	s.Equal(domain.ErrNotFound, err)
}

func (s *engineSuite) TestHighestBidCache() {
	req := s.Require()
	highestBids := cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "highestBid",
		Cache: primitive.NewPrimitive("highestBid", 1),
	})
	cfg := *s.cfg
	cfg.HighestBidCache = highestBids
	s.im = New(&cfg)

	s.create(1, 1)
	cached := &auction.HighestBid{}
	req.NoError(highestBids.Get(mockCtx, "1", cached))
	s.True(cached.Amount.IsZero())

	req.NoError(s.bid(1, bidderA, 5))
	req.NoError(highestBids.Get(mockCtx, "1", cached))
	s.Equal(bidderA.ToLower(), cached.Bidder)
	s.Equal("5", cached.Amount.String())

	hb, err := s.im.GetHighestBid(mockCtx, 1)
	req.NoError(err)
	s.Equal("5", hb.Amount.String())

	s.at(time.Hour)
	res, err := s.im.EndAuction(mockCtx, 1)
	req.NoError(err)
	req.True(res.HasSuccessor())

	s.Equal(cache.ErrNotFound, highestBids.Get(mockCtx, "1", cached))
	_, err = s.im.GetHighestBid(mockCtx, 1)
	s.Equal(domain.ErrAuctionNotFound, err)

	hb, err = s.im.GetHighestBid(mockCtx, 2)
	req.NoError(err)
	s.Equal(domain.ItemId(2), hb.ItemId)
	s.True(hb.Bidder.IsEmpty())
}

func (s *engineSuite) TestWithdrawRollsBackOnPayoutFailure() {
	req := s.Require()
	s.create(1, 1)
	req.NoError(s.bid(1, bidderA, 1))
	req.NoError(s.bid(1, bidderB, 2))

	cfg := *s.cfg
	cfg.Vault = refusingVault{cfg.Vault}
	s.im = New(&cfg)

	amount, err := s.im.Withdraw(mockCtx, bidderA)
	s.Equal(errPayout, err)
	s.True(amount.IsZero())
	s.Equal("1", s.balance(bidderA).Withdrawable.String())
	for _, t := range s.received(bidderA) {
		s.Equal(vault.TransferTypeDeposit, t.Type)
	}

	s.im = New(s.cfg)
	amount, err = s.im.Withdraw(mockCtx, bidderA)
	req.NoError(err)
	s.Equal("1", amount.String())
}

func (s *engineSuite) TestSettlementRollsBackOnPayoutFailure() {
	req := s.Require()
	s.create(1, 1)
	req.NoError(s.bid(1, bidderB, 2))
	s.at(time.Hour)

	cfg := *s.cfg
	cfg.Vault = refusingVault{cfg.Vault}
	s.im = New(&cfg)

	_, err := s.im.EndAuction(mockCtx, 1)
	s.Equal(errPayout, err)

	a, err := s.im.GetAuction(mockCtx, 1)
	req.NoError(err)
	s.Equal(bidderB.ToLower(), a.HighestBidder)
	s.Equal(engine, s.owner(1).Owner)
	s.Equal("2", s.balance(bidderB).Locked.String())
	s.Empty(s.received(beneficiary))
	_, err = s.im.GetSettlement(mockCtx, 1)
	s.Equal(domain.ErrNotFound, err)
	_, err = s.im.GetAuction(mockCtx, 2)
	s.Equal(domain.ErrAuctionNotFound, err)

	s.im = New(s.cfg)
	settlement, err := s.im.EndAuction(mockCtx, 1)
	req.NoError(err)
	s.Equal(bidderB.ToLower(), settlement.Winner)
	s.Len(s.received(beneficiary), 1)
}

func (s *engineSuite) TestHighestBidMissDoesNotCacheStaleRead() {
	req := s.Require()
	highestBids := cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "highestBid",
		Cache: primitive.NewPrimitive("highestBid", 1),
	})
	auctions := &hookedAuctions{Repo: s.auctions}
	cfg := *s.cfg
	cfg.Auctions = auctions
	cfg.HighestBidCache = highestBids
	s.im = New(&cfg)

	s.create(1, 1)
	req.NoError(s.bid(1, bidderA, 1))
	// the entry expired
	req.NoError(highestBids.Del(mockCtx, "1"))

	// a bid commits between the reader's store read and its return
	auctions.afterFind = func() {
		req.NoError(s.bid(1, bidderB, 5))
	}
	_, err := s.im.GetHighestBid(mockCtx, 1)
	req.NoError(err)

	hb, err := s.im.GetHighestBid(mockCtx, 1)
	req.NoError(err)
	s.Equal(bidderB.ToLower(), hb.Bidder)
	s.Equal("5", hb.Amount.String())
}

func (s *engineSuite) TestSuccessorKeepsPriceWhenOnlyDurationSet() {
	req := s.Require()
	_, err := s.im.SetAuctionDuration(mockCtx, admin, 2, 2*time.Hour)
	req.NoError(err)

	s.create(1, 7)
	s.at(time.Hour)
	settlement, err := s.im.EndAuction(mockCtx, 1)
	req.NoError(err)
	req.True(settlement.HasSuccessor())
	s.Equal("7", settlement.Successor.StartingPrice.String())
	s.Equal(s.now.Add(2*time.Hour), settlement.Successor.EndTime)

	stored, err := s.im.GetConfig(mockCtx, 2)
	req.NoError(err)
	s.True(stored.PriceSet)
	s.Equal("7", stored.StartingPrice.String())
	s.Equal(2*time.Hour, stored.Duration)
}

func (s *engineSuite) TestSuccessorKeepsExplicitZeroPrice() {
	req := s.Require()
	_, err := s.im.SetStartingPrice(mockCtx, admin, 2, domain.ZeroAmount)
	req.NoError(err)

	s.create(1, 7)
	s.at(time.Hour)
	settlement, err := s.im.EndAuction(mockCtx, 1)
	req.NoError(err)
	req.True(settlement.HasSuccessor())
	// raised to the minimum bid, not inherited from item 1
	s.Equal("1", settlement.Successor.StartingPrice.String())
}

func (s *engineSuite) TestUpdateConfig() {
	req := s.Require()
	price, duration := domain.NewAmount(4), 3*time.Hour
	cfg, err := s.im.UpdateConfig(mockCtx, admin, 2, auction.ConfigUpdate{StartingPrice: &price, Duration: &duration})
	req.NoError(err)
	s.Equal("4", cfg.StartingPrice.String())
	s.Equal(3*time.Hour, cfg.Duration)

	other, zero := domain.NewAmount(9), time.Duration(0)
	_, err = s.im.UpdateConfig(mockCtx, admin, 2, auction.ConfigUpdate{StartingPrice: &other, Duration: &zero})
	s.Equal(domain.ErrInvalidDuration, err)
	_, err = s.im.UpdateConfig(mockCtx, admin, 2, auction.ConfigUpdate{})
	s.Equal(domain.ErrBadParamInput, err)
	_, err = s.im.UpdateConfig(mockCtx, bidderA, 2, auction.ConfigUpdate{StartingPrice: &other})
	s.Equal(domain.ErrUnauthorized, err)

	stored, err := s.im.GetConfig(mockCtx, 2)
	req.NoError(err)
	s.Equal("4", stored.StartingPrice.String())
	s.Equal(3*time.Hour, stored.Duration)
}
