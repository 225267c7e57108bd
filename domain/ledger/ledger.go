package ledger

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

// Balance is the custody held by the engine on behalf of one account.
//
// Locked backs the account's current highest bids and cannot be withdrawn.
// Withdrawable holds refunds of superseded bids awaiting withdrawal.
type Balance struct {
	Account      domain.Address `json:"account" bson:"account"`
	Locked       domain.Amount  `json:"locked" bson:"locked"`
	Withdrawable domain.Amount  `json:"withdrawable" bson:"withdrawable"`
	UpdatedAt    time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (b *Balance) IsZero() bool {
	return b.Locked.IsZero() && b.Withdrawable.IsZero()
}

func (b *Balance) Total() (domain.Amount, error) {
	return b.Locked.Add(b.Withdrawable)
}

type Totals struct {
	Locked       domain.Amount `json:"locked"`
	Withdrawable domain.Amount `json:"withdrawable"`
	Accounts     int           `json:"accounts"`
}

type Repo interface {
	// FindOne returns nil, nil for an account without balance
	FindOne(c ctx.Ctx, account domain.Address) (*Balance, error)
	FindAll(c ctx.Ctx) ([]*Balance, error)
	Upsert(c ctx.Ctx, b Balance) error
}

type Usecase interface {
	// Lock adds amount to the account's locked bucket
	Lock(c ctx.Ctx, account domain.Address, amount domain.Amount) error
	// Unlock takes amount out of the locked bucket for settlement
	Unlock(c ctx.Ctx, account domain.Address, amount domain.Amount) error
	// Release moves amount from the locked bucket to the withdrawable one
	Release(c ctx.Ctx, account domain.Address, amount domain.Amount) error
	// Withdraw zeroes the withdrawable bucket and returns what it held
	Withdraw(c ctx.Ctx, account domain.Address) (domain.Amount, error)
	Balance(c ctx.Ctx, account domain.Address) (*Balance, error)
	Totals(c ctx.Ctx) (*Totals, error)
}
