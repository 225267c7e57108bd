package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/base/metrics"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/activity"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/domain/item"
	"github.com/x-xyz/auctionhouse/domain/keys"
	"github.com/x-xyz/auctionhouse/domain/ledger"
	"github.com/x-xyz/auctionhouse/domain/params"
	"github.com/x-xyz/auctionhouse/domain/vault"
	"github.com/x-xyz/auctionhouse/service/cache"
	"github.com/x-xyz/auctionhouse/service/lock"
)

var (
	timeNow = time.Now
	met     = metrics.New("auction")

	engineLockKey = keys.RedisKey(keys.PfxEngineLock, "auction")
)

type AuctionUseCaseCfg struct {
	Tx          domain.TxRunner
	Locker      lock.Locker
	Registry    auction.Registry
	Auctions    auction.Repo
	Configs     auction.ConfigRepo
	Settlements auction.SettlementRepo
	Ledger      ledger.Usecase
	Items       item.Usecase
	Vault       vault.Usecase
	Params      params.Usecase
	Publisher   activity.Publisher
	// Fee defaults to the rate based model
	Fee auction.FeeModel
	// HighestBidCache is optional
	HighestBidCache cache.Service
}

type impl struct {
	// mu serializes mutations inside the process; the distributed lock does it across replicas
	mu sync.Mutex

	tx          domain.TxRunner
	locker      lock.Locker
	registry    auction.Registry
	auctions    auction.Repo
	configs     auction.ConfigRepo
	settlements auction.SettlementRepo
	ledger      ledger.Usecase
	items       item.Usecase
	vault       vault.Usecase
	params      params.Usecase
	publisher   activity.Publisher
	fee         auction.FeeModel
	cache       cache.Service
}

func New(cfg *AuctionUseCaseCfg) auction.Usecase {
	fee := cfg.Fee
	if fee == nil {
		fee = NewRateFee()
	}
	return &impl{
		tx:          cfg.Tx,
		locker:      cfg.Locker,
		registry:    cfg.Registry,
		auctions:    cfg.Auctions,
		configs:     cfg.Configs,
		settlements: cfg.Settlements,
		ledger:      cfg.Ledger,
		items:       cfg.Items,
		vault:       cfg.Vault,
		params:      cfg.Params,
		publisher:   cfg.Publisher,
		fee:         fee,
		cache:       cfg.HighestBidCache,
	}
}

// mutate runs fn as one atomic unit, serialized against every other mutation.
func (im *impl) mutate(c ctx.Ctx, op string, fn func(ctx.Ctx) error) error {
	defer met.BumpTime("mutate.time", "op", op).End()

	im.mu.Lock()
	defer im.mu.Unlock()

	unlock, err := im.locker.Lock(c, engineLockKey)
	if err != nil {
		c.WithFields(log.Fields{"op": op, "err": err}).Error("locker.Lock failed")
		return err
	}
	defer unlock()

	if err := im.tx.RunWithTransaction(c, fn); err != nil {
		met.BumpSum("mutate.err", 1, "op", op)
		return err
	}
	return nil
}

func (im *impl) checkAdmin(c ctx.Ctx, caller domain.Address) error {
	if ok, err := im.params.IsAdmin(c, caller); err != nil {
		c.WithField("err", err).Error("params.IsAdmin failed")
		return err
	} else if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

func (im *impl) checkCustody(c ctx.Ctx, itemId domain.ItemId) error {
	if ok, err := im.items.OwnerIsEngine(c, itemId); err != nil {
		c.WithField("err", err).Error("items.OwnerIsEngine failed")
		return err
	} else if !ok {
		return domain.ErrItemNotInCustody
	}
	return nil
}

func (im *impl) CreateAuction(c ctx.Ctx, caller domain.Address, itemId domain.ItemId, startingPrice domain.Amount, duration time.Duration) (*auction.Auction, error) {
	if err := im.checkAdmin(c, caller); err != nil {
		return nil, err
	}

	var res *auction.Auction
	now := timeNow()
	if err := im.mutate(c, "create", func(c ctx.Ctx) error {
		if err := im.checkCustody(c, itemId); err != nil {
			return err
		}

		a, err := im.registry.Create(c, itemId, startingPrice, duration, now)
		if err != nil {
			return err
		}

		cfg := auction.Config{
			ItemId:        itemId,
			StartingPrice: startingPrice,
			PriceSet:      true,
			Duration:      duration,
			UpdatedAt:     now,
		}
		if err := im.configs.Upsert(c, cfg); err != nil {
			c.WithField("err", err).Error("configs.Upsert failed")
			return err
		}

		res = a
		return nil
	}); err != nil {
		return nil, err
	}

	met.BumpSum("created", 1)
	im.refreshHighestBid(c, res)
	im.publisher.Publish(c, createdEvent(res))
	return res, nil
}

func (im *impl) PlaceBid(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address, amount domain.Amount) (*auction.Auction, error) {
	var (
		res       *auction.Auction
		displaced *auction.Displaced
	)
	now := timeNow()
	if err := im.mutate(c, "bid", func(c ctx.Ctx) error {
		a, d, err := im.registry.PlaceBid(c, itemId, bidder, amount, now)
		if err != nil {
			return err
		}

		// the deposit is accepted only together with the bid it funds
		if err := im.vault.Collect(c, bidder, amount, &itemId); err != nil {
			c.WithField("err", err).Error("vault.Collect failed")
			return err
		}
		if d != nil {
			if err := im.ledger.Release(c, d.Bidder, d.Amount); err != nil {
				c.WithFields(log.Fields{"bidder": d.Bidder, "err": err}).Error("ledger.Release failed")
				return err
			}
		}
		if err := im.ledger.Lock(c, bidder, amount); err != nil {
			c.WithFields(log.Fields{"bidder": bidder, "err": err}).Error("ledger.Lock failed")
			return err
		}

		res, displaced = a, d
		return nil
	}); err != nil {
		return nil, err
	}

	met.BumpSum("bid", 1)
	im.refreshHighestBid(c, res)

	events := []activity.Event{{
		Type:    activity.EventBidPlaced,
		ItemId:  &res.ItemId,
		Account: res.HighestBidder,
		Amount:  res.HighestBid,
		Time:    now,
	}}
	if displaced != nil {
		events = append(events, activity.Event{
			Type:    activity.EventBidRefunded,
			ItemId:  &res.ItemId,
			Account: displaced.Bidder,
			Amount:  displaced.Amount,
			Time:    now,
		})
	}
	im.publisher.Publish(c, events...)
	return res, nil
}

// successorConfig returns the config the next item's auction runs with: its own if
// one is stored, completed from the settled item's config otherwise.
func (im *impl) successorConfig(c ctx.Ctx, closed *auction.Auction, next domain.ItemId, now time.Time) (*auction.Config, error) {
	base, err := im.configs.FindOne(c, closed.ItemId)
	if err != nil {
		c.WithField("err", err).Error("configs.FindOne failed")
		return nil, err
	} else if base == nil {
		base = &auction.Config{
			ItemId:        closed.ItemId,
			StartingPrice: closed.StartingPrice,
			PriceSet:      true,
			Duration:      closed.EndTime.Sub(closed.StartTime),
		}
	}
	if !base.PriceSet {
		base.StartingPrice = closed.StartingPrice
	}
	if base.Duration <= 0 {
		base.Duration = closed.EndTime.Sub(closed.StartTime)
	}

	cfg, err := im.configs.FindOne(c, next)
	if err != nil {
		c.WithField("err", err).Error("configs.FindOne failed")
		return nil, err
	}
	if cfg == nil {
		cfg = &auction.Config{ItemId: next}
	}
	if !cfg.PriceSet {
		cfg.StartingPrice = base.StartingPrice
		cfg.PriceSet = true
	}
	if cfg.Duration <= 0 {
		cfg.Duration = base.Duration
	}
	cfg.UpdatedAt = now

	if err := im.configs.Upsert(c, *cfg); err != nil {
		c.WithField("err", err).Error("configs.Upsert failed")
		return nil, err
	}
	return cfg, nil
}

// openSuccessor creates the auction of the item following closed. It returns nil
// when the next item cannot be auctioned yet.
func (im *impl) openSuccessor(c ctx.Ctx, closed *auction.Auction, now time.Time) (*auction.Auction, error) {
	next, err := closed.ItemId.Next()
	if err != nil {
		c.WithField("itemId", closed.ItemId).Warn("no successor item id")
		return nil, nil
	}

	cfg, err := im.successorConfig(c, closed, next, now)
	if err != nil {
		return nil, err
	}

	if existing, err := im.auctions.FindOne(c, next); err != nil {
		c.WithField("err", err).Error("auctions.FindOne failed")
		return nil, err
	} else if existing != nil {
		c.WithField("itemId", next).Info("successor auction already active")
		return nil, nil
	}

	if err := im.checkCustody(c, next); err == domain.ErrItemNotInCustody {
		c.WithField("itemId", next).Info("successor item not in custody")
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return im.registry.Create(c, next, cfg.StartingPrice, cfg.Duration, now)
}

func (im *impl) EndAuction(c ctx.Ctx, itemId domain.ItemId) (*auction.Settlement, error) {
	var res *auction.Settlement
	now := timeNow()
	if err := im.mutate(c, "settle", func(c ctx.Ctx) error {
		closing, err := im.registry.Close(c, itemId, now)
		if err != nil {
			return err
		}

		p, err := im.params.Get(c)
		if err != nil {
			c.WithField("err", err).Error("params.Get failed")
			return err
		}

		s := auction.Settlement{
			Id:        uuid.NewString(),
			ItemId:    itemId,
			FeeRate:   p.FeeRate,
			SettledAt: now,
		}

		if !closing.HasWinner() {
			if err := im.items.Destroy(c, itemId); err != nil {
				c.WithField("err", err).Error("items.Destroy failed")
				return err
			}
			s.Destroyed = true
		} else {
			if err := im.items.Transfer(c, itemId, closing.Winner); err != nil {
				c.WithField("err", err).Error("items.Transfer failed")
				return err
			}
			if err := im.ledger.Unlock(c, closing.Winner, closing.Amount); err != nil {
				c.WithFields(log.Fields{"winner": closing.Winner, "err": err}).Error("ledger.Unlock failed")
				return err
			}

			rate, err := p.Rate()
			if err != nil {
				return err
			}
			fee, err := im.fee.Fee(closing.Amount, rate)
			if err != nil {
				return xerrors.Errorf("fee of item %s: %w", itemId, err)
			}
			net, err := closing.Amount.Sub(fee)
			if err != nil {
				return xerrors.Errorf("fee exceeds winning bid of item %s: %w", itemId, err)
			}

			s.Winner = closing.Winner
			s.Amount = closing.Amount
			s.Fee = fee
			s.Net = net
			s.Beneficiary = p.Beneficiary
			s.FeeRecipient = p.FeeRecipient
		}

		if err := im.registry.Delete(c, itemId); err != nil {
			return err
		}

		successor, err := im.openSuccessor(c, closing.Auction, now)
		if err != nil {
			return err
		}
		s.Successor = successor

		if err := im.settlements.Insert(c, s); err != nil {
			c.WithField("err", err).Error("settlements.Insert failed")
			return err
		}

		// payouts go last so that a failed one rolls the whole settlement back
		if err := im.payout(c, &s); err != nil {
			return err
		}

		res = &s
		return nil
	}); err != nil {
		return nil, err
	}

	im.afterSettlement(c, res)
	return res, nil
}

// payout sends the proceeds of a settlement out of custody.
func (im *impl) payout(c ctx.Ctx, s *auction.Settlement) error {
	if s.Destroyed {
		return nil
	}
	if !s.Net.IsZero() && !s.Beneficiary.IsEmpty() {
		if err := im.vault.Payout(c, s.Beneficiary, s.Net, vault.ReasonProceeds, &s.ItemId); err != nil {
			c.WithFields(log.Fields{"settlement": s.Id, "err": err}).Error("vault.Payout failed")
			met.BumpSum("payout.err", 1, "reason", string(vault.ReasonProceeds))
			return err
		}
	}
	if !s.Fee.IsZero() && !s.FeeRecipient.IsEmpty() {
		if err := im.vault.Payout(c, s.FeeRecipient, s.Fee, vault.ReasonFee, &s.ItemId); err != nil {
			c.WithFields(log.Fields{"settlement": s.Id, "err": err}).Error("vault.Payout failed")
			met.BumpSum("payout.err", 1, "reason", string(vault.ReasonFee))
			return err
		}
	}
	return nil
}

func (im *impl) afterSettlement(c ctx.Ctx, s *auction.Settlement) {
	outcome := "transfer"
	if s.Destroyed {
		outcome = "destroy"
	}
	met.BumpSum("settled", 1, "outcome", outcome)

	im.dropHighestBid(c, s.ItemId)

	events := []activity.Event{{
		Type:      activity.EventAuctionSettled,
		ItemId:    &s.ItemId,
		Account:   s.Winner,
		Amount:    s.Amount,
		Destroyed: s.Destroyed,
		Time:      s.SettledAt,
	}}
	if s.Successor != nil {
		im.refreshHighestBid(c, s.Successor)
		events = append(events, createdEvent(s.Successor))
	}
	im.publisher.Publish(c, events...)
}

func (im *impl) Withdraw(c ctx.Ctx, account domain.Address) (domain.Amount, error) {
	var amount domain.Amount
	if err := im.mutate(c, "withdraw", func(c ctx.Ctx) error {
		var err error
		if amount, err = im.ledger.Withdraw(c, account); err != nil {
			return err
		}
		if err := im.vault.Payout(c, account, amount, vault.ReasonWithdrawal, nil); err != nil {
			c.WithFields(log.Fields{"account": account, "amount": amount, "err": err}).Error("vault.Payout failed")
			met.BumpSum("payout.err", 1, "reason", string(vault.ReasonWithdrawal))
			return err
		}
		return nil
	}); err != nil {
		return domain.ZeroAmount, err
	}

	im.publisher.Publish(c, activity.Event{
		Type:    activity.EventFundsWithdrawn,
		Account: account,
		Amount:  amount,
		Time:    timeNow(),
	})
	return amount, nil
}

func (im *impl) UpdateConfig(c ctx.Ctx, caller domain.Address, itemId domain.ItemId, u auction.ConfigUpdate) (*auction.Config, error) {
	if u.StartingPrice == nil && u.Duration == nil {
		return nil, domain.ErrBadParamInput
	}
	if u.Duration != nil && *u.Duration <= 0 {
		return nil, domain.ErrInvalidDuration
	}
	if err := im.checkAdmin(c, caller); err != nil {
		return nil, err
	}

	var res *auction.Config
	if err := im.mutate(c, "config", func(c ctx.Ctx) error {
		if a, err := im.auctions.FindOne(c, itemId); err != nil {
			c.WithField("err", err).Error("auctions.FindOne failed")
			return err
		} else if a != nil {
			return domain.ErrAuctionAlreadyActive
		}

		if err := im.checkCustody(c, itemId); err != nil {
			return err
		}

		cfg, err := im.configs.FindOne(c, itemId)
		if err != nil {
			c.WithField("err", err).Error("configs.FindOne failed")
			return err
		} else if cfg == nil {
			cfg = &auction.Config{ItemId: itemId}
		}

		if u.StartingPrice != nil {
			cfg.StartingPrice = *u.StartingPrice
			cfg.PriceSet = true
		}
		if u.Duration != nil {
			cfg.Duration = *u.Duration
		}
		cfg.UpdatedAt = timeNow()
		if err := im.configs.Upsert(c, *cfg); err != nil {
			c.WithField("err", err).Error("configs.Upsert failed")
			return err
		}

		res = cfg
		return nil
	}); err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) SetAuctionDuration(c ctx.Ctx, caller domain.Address, itemId domain.ItemId, duration time.Duration) (*auction.Config, error) {
	return im.UpdateConfig(c, caller, itemId, auction.ConfigUpdate{Duration: &duration})
}

func (im *impl) SetStartingPrice(c ctx.Ctx, caller domain.Address, itemId domain.ItemId, price domain.Amount) (*auction.Config, error) {
	return im.UpdateConfig(c, caller, itemId, auction.ConfigUpdate{StartingPrice: &price})
}

// GetHighestBid serves from the cache, which only mutations write to. A miss reads
// the store and leaves the cache alone, since a bid may commit in between.
func (im *impl) GetHighestBid(c ctx.Ctx, itemId domain.ItemId) (*auction.HighestBid, error) {
	if im.cache != nil {
		res := &auction.HighestBid{}
		if err := im.cache.Get(c, itemId.String(), res); err == nil {
			met.BumpSum("cache.hit", 1)
			return res, nil
		} else if err != cache.ErrNotFound {
			met.BumpSum("cache.err", 1, "func", "get")
		}
	}

	a, err := im.GetAuction(c, itemId)
	if err != nil {
		return nil, err
	}
	return a.ToHighestBid(), nil
}

func (im *impl) refreshHighestBid(c ctx.Ctx, a *auction.Auction) {
	if im.cache == nil {
		return
	}
	if err := im.cache.Set(c, a.ItemId.String(), a.ToHighestBid()); err != nil {
		met.BumpSum("cache.err", 1, "func", "set")
		// a stale entry must not survive a failed refresh
		im.dropHighestBid(c, a.ItemId)
	}
}

func (im *impl) dropHighestBid(c ctx.Ctx, itemId domain.ItemId) {
	if im.cache == nil {
		return
	}
	if err := im.cache.Del(c, itemId.String()); err != nil {
		met.BumpSum("cache.err", 1, "func", "del")
	}
}

func (im *impl) GetAuction(c ctx.Ctx, itemId domain.ItemId) (*auction.Auction, error) {
	if a, err := im.auctions.FindOne(c, itemId); err != nil {
		c.WithField("err", err).Error("auctions.FindOne failed")
		return nil, err
	} else if a == nil {
		return nil, domain.ErrAuctionNotFound
	} else {
		return a, nil
	}
}

func (im *impl) GetConfig(c ctx.Ctx, itemId domain.ItemId) (*auction.Config, error) {
	if cfg, err := im.configs.FindOne(c, itemId); err != nil {
		c.WithField("err", err).Error("configs.FindOne failed")
		return nil, err
	} else if cfg == nil {
		return nil, domain.ErrNotFound
	} else {
		return cfg, nil
	}
}

func (im *impl) GetSettlement(c ctx.Ctx, itemId domain.ItemId) (*auction.Settlement, error) {
	if s, err := im.settlements.FindByItemId(c, itemId); err != nil {
		c.WithField("err", err).Error("settlements.FindByItemId failed")
		return nil, err
	} else if s == nil {
		return nil, domain.ErrNotFound
	} else {
		return s, nil
	}
}

func (im *impl) ListActive(c ctx.Ctx, offset, limit int) ([]*auction.Auction, error) {
	res, err := im.auctions.FindAll(c, auction.WithPagination(offset, limit))
	if err != nil {
		c.WithField("err", err).Error("auctions.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) ListExpired(c ctx.Ctx, limit int) ([]*auction.Auction, error) {
	res, err := im.auctions.FindAll(c, auction.WithEndedBefore(timeNow()), auction.WithPagination(0, limit))
	if err != nil {
		c.WithField("err", err).Error("auctions.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetBalance(c ctx.Ctx, account domain.Address) (*ledger.Balance, error) {
	return im.ledger.Balance(c, account)
}

func createdEvent(a *auction.Auction) activity.Event {
	startTime, endTime := a.StartTime, a.EndTime
	return activity.Event{
		Type:      activity.EventAuctionCreated,
		ItemId:    &a.ItemId,
		Amount:    a.StartingPrice,
		StartTime: &startTime,
		EndTime:   &endTime,
		Time:      a.StartTime,
	}
}
