package params

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

// Params are the engine-wide settings shared by every auction.
type Params struct {
	// EngineAddress is the custody identity that holds items before and during their auction.
	EngineAddress domain.Address `json:"engineAddress" bson:"engineAddress"`
	MinimumBid    domain.Amount  `json:"minimumBid" bson:"minimumBid"`
	// FeeRate is a decimal string in [0, 1)
	FeeRate       string         `json:"feeRate" bson:"feeRate"`
	Admin         domain.Address `json:"admin" bson:"admin"`
	Beneficiary   domain.Address `json:"beneficiary" bson:"beneficiary"`
	FeeRecipient  domain.Address `json:"feeRecipient" bson:"feeRecipient"`
	UpdatedAt     time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (p *Params) Rate() (decimal.Decimal, error) {
	return ParseFeeRate(p.FeeRate)
}

func (p *Params) IsAdmin(address domain.Address) bool {
	return !p.Admin.IsEmpty() && p.Admin.Equals(address)
}

func ParseFeeRate(s string) (decimal.Decimal, error) {
	if len(s) == 0 {
		return decimal.Zero, nil
	}
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidFeeRate
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, domain.ErrInvalidFeeRate
	}
	return rate, nil
}

type Repo interface {
	// Get returns nil, nil before the params are first stored
	Get(c ctx.Ctx) (*Params, error)
	Upsert(c ctx.Ctx, p Params) error
}

type Usecase interface {
	Get(c ctx.Ctx) (*Params, error)
	// Init stores p unless params already exist
	Init(c ctx.Ctx, p Params) error
	IsAdmin(c ctx.Ctx, address domain.Address) (bool, error)
	SetFeeRate(c ctx.Ctx, caller domain.Address, rate decimal.Decimal) (*Params, error)
}
