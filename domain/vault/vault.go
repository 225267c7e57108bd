package vault

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

type TransferType string

const (
	// TransferTypeDeposit is funds attached by an account to a call, collected into custody
	TransferTypeDeposit TransferType = "deposit"
	// TransferTypePayout is funds sent out of custody by the engine
	TransferTypePayout TransferType = "payout"
)

type Reason string

const (
	ReasonBid        Reason = "bid"
	ReasonWithdrawal Reason = "withdrawal"
	ReasonProceeds   Reason = "proceeds"
	ReasonFee        Reason = "fee"
)

type Transfer struct {
	Id        string         `json:"id" bson:"_id"`
	Type      TransferType   `json:"type" bson:"type"`
	Reason    Reason         `json:"reason" bson:"reason"`
	Account   domain.Address `json:"account" bson:"account"`
	Amount    domain.Amount  `json:"amount" bson:"amount"`
	ItemId    *domain.ItemId `json:"itemId,omitempty" bson:"itemId,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type Repo interface {
	Insert(c ctx.Ctx, t Transfer) error
	FindByAccount(c ctx.Ctx, account domain.Address, offset, limit int) ([]*Transfer, error)
}

// Usecase is the funds custody: a deposit attached to a call and engine-initiated payouts.
type Usecase interface {
	Collect(c ctx.Ctx, from domain.Address, amount domain.Amount, itemId *domain.ItemId) error
	Payout(c ctx.Ctx, to domain.Address, amount domain.Amount, reason Reason, itemId *domain.ItemId) error
	FindByAccount(c ctx.Ctx, account domain.Address, offset, limit int) ([]*Transfer, error)
}
