package usecase

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/domain/params"
)

type registry struct {
	auctions auction.Repo
	params   params.Usecase
}

// NewRegistry returns the per-item auction state machine. Every transition is
// validated in full before the record is written.
func NewRegistry(auctions auction.Repo, params params.Usecase) auction.Registry {
	return &registry{auctions, params}
}

func (r *registry) find(c ctx.Ctx, itemId domain.ItemId) (*auction.Auction, error) {
	if a, err := r.auctions.FindOne(c, itemId); err != nil {
		c.WithField("err", err).Error("auctions.FindOne failed")
		return nil, err
	} else if a == nil {
		return nil, domain.ErrAuctionNotFound
	} else {
		return a, nil
	}
}

func (r *registry) Create(c ctx.Ctx, itemId domain.ItemId, startingPrice domain.Amount, duration time.Duration, now time.Time) (*auction.Auction, error) {
	if duration <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	if existing, err := r.auctions.FindOne(c, itemId); err != nil {
		c.WithField("err", err).Error("auctions.FindOne failed")
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrAuctionAlreadyActive
	}

	p, err := r.params.Get(c)
	if err != nil {
		c.WithField("err", err).Error("params.Get failed")
		return nil, err
	}

	price := startingPrice
	if price.Cmp(p.MinimumBid) < 0 {
		price = p.MinimumBid
	}

	endTime, err := domain.AddDuration(now, duration)
	if err != nil {
		return nil, err
	}

	a := auction.Auction{
		ItemId:        itemId,
		StartingPrice: price,
		StartTime:     now,
		EndTime:       endTime,
		UpdatedAt:     now,
	}
	if err := r.auctions.Create(c, a); err != nil {
		c.WithFields(log.Fields{"itemId": itemId, "err": err}).Error("auctions.Create failed")
		return nil, err
	}
	return &a, nil
}

// requiredBid is the lowest amount the next bid may carry.
func requiredBid(a *auction.Auction, minimumBid domain.Amount) (domain.Amount, error) {
	required, err := a.HighestBid.Add(minimumBid)
	if err != nil {
		return domain.ZeroAmount, err
	}
	if !a.HasBid() && required.Cmp(a.StartingPrice) < 0 {
		required = a.StartingPrice
	}
	return required, nil
}

func (r *registry) PlaceBid(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address, amount domain.Amount, now time.Time) (*auction.Auction, *auction.Displaced, error) {
	if bidder.IsEmpty() {
		return nil, nil, domain.ErrInvalidAddress
	}

	a, err := r.find(c, itemId)
	if err != nil {
		return nil, nil, err
	}
	if now.Before(a.StartTime) {
		return nil, nil, domain.ErrAuctionNotYetOpen
	}
	if a.IsExpired(now) {
		return nil, nil, domain.ErrAuctionExpired
	}

	p, err := r.params.Get(c)
	if err != nil {
		c.WithField("err", err).Error("params.Get failed")
		return nil, nil, err
	}
	required, err := requiredBid(a, p.MinimumBid)
	if err != nil {
		return nil, nil, err
	}
	if amount.Cmp(required) < 0 {
		return nil, nil, domain.ErrBidTooLow
	}

	// Only two slots are tracked. The previous highest moves to the second slot,
	// overwriting its occupant, who was already refunded when displaced from the top.
	var displaced *auction.Displaced
	if a.HasBid() {
		displaced = &auction.Displaced{Bidder: a.HighestBidder, Amount: a.HighestBid}
		a.SecondHighestBidder = a.HighestBidder
		a.SecondHighestBid = a.HighestBid
	}
	a.HighestBidder = bidder.ToLower()
	a.HighestBid = amount
	a.BidCount++
	a.UpdatedAt = now

	if err := r.auctions.Update(c, *a); err != nil {
		c.WithFields(log.Fields{"itemId": itemId, "err": err}).Error("auctions.Update failed")
		return nil, nil, err
	}
	return a, displaced, nil
}

func (r *registry) Close(c ctx.Ctx, itemId domain.ItemId, now time.Time) (*auction.Closing, error) {
	a, err := r.find(c, itemId)
	if err != nil {
		return nil, err
	}
	if !a.IsExpired(now) {
		return nil, domain.ErrAuctionStillActive
	}
	return &auction.Closing{
		Auction: a,
		Winner:  a.HighestBidder,
		Amount:  a.HighestBid,
	}, nil
}

func (r *registry) Delete(c ctx.Ctx, itemId domain.ItemId) error {
	if err := r.auctions.Delete(c, itemId); err != nil {
		c.WithFields(log.Fields{"itemId": itemId, "err": err}).Error("auctions.Delete failed")
		return err
	}
	return nil
}
