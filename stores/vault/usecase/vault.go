package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/base/metrics"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/vault"
)

var (
	timeNow = time.Now
	met     = metrics.New("vault")
)

type impl struct {
	repo vault.Repo
}

// New returns the funds custody journal. Both deposits and payouts are recorded inside
// the caller's transaction; payouts come after the caller's own writes.
func New(repo vault.Repo) vault.Usecase {
	return &impl{repo}
}

func (im *impl) record(c ctx.Ctx, typ vault.TransferType, reason vault.Reason, account domain.Address, amount domain.Amount, itemId *domain.ItemId) error {
	if account.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if amount.IsZero() {
		return domain.ErrInvalidAmount
	}

	t := vault.Transfer{
		Id:        uuid.NewString(),
		Type:      typ,
		Reason:    reason,
		Account:   account.ToLower(),
		Amount:    amount,
		ItemId:    itemId,
		CreatedAt: timeNow(),
	}
	if err := im.repo.Insert(c, t); err != nil {
		c.WithFields(log.Fields{
			"type":    typ,
			"account": account,
			"amount":  amount,
			"err":     err,
		}).Error("repo.Insert failed")
		return err
	}

	amt, _ := amount.Decimal().Float64()
	met.BumpSum(string(typ), amt, "reason", string(reason))
	return nil
}

func (im *impl) Collect(c ctx.Ctx, from domain.Address, amount domain.Amount, itemId *domain.ItemId) error {
	return im.record(c, vault.TransferTypeDeposit, vault.ReasonBid, from, amount, itemId)
}

func (im *impl) Payout(c ctx.Ctx, to domain.Address, amount domain.Amount, reason vault.Reason, itemId *domain.ItemId) error {
	return im.record(c, vault.TransferTypePayout, reason, to, amount, itemId)
}

func (im *impl) FindByAccount(c ctx.Ctx, account domain.Address, offset, limit int) ([]*vault.Transfer, error) {
	return im.repo.FindByAccount(c, account, offset, limit)
}
