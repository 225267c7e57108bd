package auction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/ledger"
)

// Auction is the record of one item's current bidding round.
type Auction struct {
	ItemId              domain.ItemId  `json:"itemId" bson:"itemId"`
	// StartingPrice is the effective floor for the first bid, never below the global minimum bid
	StartingPrice       domain.Amount  `json:"startingPrice" bson:"startingPrice"`
	StartTime           time.Time      `json:"startTime" bson:"startTime"`
	EndTime             time.Time      `json:"endTime" bson:"endTime"`
	HighestBidder       domain.Address `json:"highestBidder,omitempty" bson:"highestBidder,omitempty"`
	HighestBid          domain.Amount  `json:"highestBid" bson:"highestBid"`
	SecondHighestBidder domain.Address `json:"secondHighestBidder,omitempty" bson:"secondHighestBidder,omitempty"`
	SecondHighestBid    domain.Amount  `json:"secondHighestBid" bson:"secondHighestBid"`
	BidCount            int            `json:"bidCount" bson:"bidCount"`
	UpdatedAt           time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (a *Auction) HasBid() bool {
	return !a.HighestBidder.IsEmpty()
}

func (a *Auction) IsExpired(now time.Time) bool {
	return !now.Before(a.EndTime)
}

func (a *Auction) ToHighestBid() *HighestBid {
	return &HighestBid{
		ItemId:  a.ItemId,
		Bidder:  a.HighestBidder,
		Amount:  a.HighestBid,
		EndTime: a.EndTime,
	}
}

type HighestBid struct {
	ItemId  domain.ItemId  `json:"itemId"`
	Bidder  domain.Address `json:"bidder,omitempty"`
	Amount  domain.Amount  `json:"amount"`
	EndTime time.Time      `json:"endTime"`
}

// Config is the per-item starting price and duration. It outlives settlement so the
// successor auction can reuse it.
type Config struct {
	ItemId        domain.ItemId `json:"itemId" bson:"itemId"`
	StartingPrice domain.Amount `json:"startingPrice" bson:"startingPrice"`
	// PriceSet tells an explicit zero price apart from one that was never set
	PriceSet      bool          `json:"priceSet" bson:"priceSet"`
	// Duration is zero when never set
	Duration      time.Duration `json:"duration" bson:"duration"`
	UpdatedAt     time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// ConfigUpdate lists the config fields to change; nil fields are left as stored.
type ConfigUpdate struct {
	StartingPrice *domain.Amount
	Duration      *time.Duration
}

// Displaced is the highest bid that a newly accepted bid superseded.
type Displaced struct {
	Bidder domain.Address
	Amount domain.Amount
}

// Closing is the outcome of closing an expired auction.
type Closing struct {
	Auction *Auction
	// Winner is empty when nobody bid
	Winner domain.Address
	Amount domain.Amount
}

func (c *Closing) HasWinner() bool {
	return !c.Winner.IsEmpty()
}

type Settlement struct {
	Id     string         `json:"id" bson:"_id"`
	ItemId domain.ItemId  `json:"itemId" bson:"itemId"`
	Winner domain.Address `json:"winner,omitempty" bson:"winner,omitempty"`
	// Amount is the gross winning bid; Fee + Net == Amount
	Amount       domain.Amount  `json:"amount" bson:"amount"`
	Fee          domain.Amount  `json:"fee" bson:"fee"`
	Net          domain.Amount  `json:"net" bson:"net"`
	FeeRate      string         `json:"feeRate" bson:"feeRate"`
	Destroyed    bool           `json:"destroyed" bson:"destroyed"`
	Beneficiary  domain.Address `json:"beneficiary,omitempty" bson:"beneficiary,omitempty"`
	FeeRecipient domain.Address `json:"feeRecipient,omitempty" bson:"feeRecipient,omitempty"`
	Successor    *Auction       `json:"successor,omitempty" bson:"successor,omitempty"`
	SettledAt    time.Time      `json:"settledAt" bson:"settledAt"`
}

func (s *Settlement) HasSuccessor() bool {
	return s.Successor != nil
}

type ListOptions struct {
	Offset int
	Limit  int
	// EndedBefore keeps only auctions whose end time is at or before the given time
	EndedBefore *time.Time
}

type ListOptionsFunc func(*ListOptions) error

func GetListOptions(opts ...ListOptionsFunc) (ListOptions, error) {
	res := ListOptions{Limit: 100}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithPagination(offset, limit int) ListOptionsFunc {
	return func(o *ListOptions) error {
		if offset < 0 || limit <= 0 {
			return domain.ErrBadParamInput
		}
		o.Offset = offset
		o.Limit = limit
		return nil
	}
}

func WithEndedBefore(t time.Time) ListOptionsFunc {
	return func(o *ListOptions) error {
		o.EndedBefore = &t
		return nil
	}
}

type Repo interface {
	// FindOne returns nil, nil when the item has no active auction
	FindOne(c ctx.Ctx, itemId domain.ItemId) (*Auction, error)
	FindAll(c ctx.Ctx, opts ...ListOptionsFunc) ([]*Auction, error)
	// Create fails with domain.ErrAuctionAlreadyActive if a record exists for the item
	Create(c ctx.Ctx, a Auction) error
	Update(c ctx.Ctx, a Auction) error
	Delete(c ctx.Ctx, itemId domain.ItemId) error
}

type ConfigRepo interface {
	// FindOne returns nil, nil when the item was never configured
	FindOne(c ctx.Ctx, itemId domain.ItemId) (*Config, error)
	Upsert(c ctx.Ctx, cfg Config) error
}

type SettlementRepo interface {
	Insert(c ctx.Ctx, s Settlement) error
	FindByItemId(c ctx.Ctx, itemId domain.ItemId) (*Settlement, error)
}

// FeeModel computes the settlement fee deducted from a winning bid.
type FeeModel interface {
	// Fee must never exceed gross
	Fee(gross domain.Amount, rate decimal.Decimal) (domain.Amount, error)
}

// Registry validates and applies the transitions of a single auction record.
type Registry interface {
	Create(c ctx.Ctx, itemId domain.ItemId, startingPrice domain.Amount, duration time.Duration, now time.Time) (*Auction, error)
	PlaceBid(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address, amount domain.Amount, now time.Time) (*Auction, *Displaced, error)
	Close(c ctx.Ctx, itemId domain.ItemId, now time.Time) (*Closing, error)
	Delete(c ctx.Ctx, itemId domain.ItemId) error
}

// Usecase drives the auction lifecycle: create, bid, settle and chain to the next item.
type Usecase interface {
	CreateAuction(c ctx.Ctx, caller domain.Address, itemId domain.ItemId, startingPrice domain.Amount, duration time.Duration) (*Auction, error)
	PlaceBid(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address, amount domain.Amount) (*Auction, error)
	EndAuction(c ctx.Ctx, itemId domain.ItemId) (*Settlement, error)
	Withdraw(c ctx.Ctx, account domain.Address) (domain.Amount, error)

	SetAuctionDuration(c ctx.Ctx, caller domain.Address, itemId domain.ItemId, duration time.Duration) (*Config, error)
	SetStartingPrice(c ctx.Ctx, caller domain.Address, itemId domain.ItemId, price domain.Amount) (*Config, error)
	// UpdateConfig applies every field of u at once or none of them
	UpdateConfig(c ctx.Ctx, caller domain.Address, itemId domain.ItemId, u ConfigUpdate) (*Config, error)

	GetHighestBid(c ctx.Ctx, itemId domain.ItemId) (*HighestBid, error)
	GetAuction(c ctx.Ctx, itemId domain.ItemId) (*Auction, error)
	GetConfig(c ctx.Ctx, itemId domain.ItemId) (*Config, error)
	GetSettlement(c ctx.Ctx, itemId domain.ItemId) (*Settlement, error)
	ListActive(c ctx.Ctx, offset, limit int) ([]*Auction, error)
	ListExpired(c ctx.Ctx, limit int) ([]*Auction, error)
	GetBalance(c ctx.Ctx, account domain.Address) (*ledger.Balance, error)
}
