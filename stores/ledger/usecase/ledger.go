package usecase

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/ledger"
)

var timeNow = time.Now

type impl struct {
	repo ledger.Repo
}

// New returns the ledger usecase. It relies on the caller for serialization: every
// mutation is a read-modify-write of one balance.
func New(repo ledger.Repo) ledger.Usecase {
	return &impl{repo}
}

func (im *impl) find(c ctx.Ctx, account domain.Address) (*ledger.Balance, error) {
	if account.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	if b, err := im.repo.FindOne(c, account); err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	} else if b == nil {
		return &ledger.Balance{Account: account.ToLower()}, nil
	} else {
		return b, nil
	}
}

func (im *impl) save(c ctx.Ctx, b *ledger.Balance) error {
	b.UpdatedAt = timeNow()
	if err := im.repo.Upsert(c, *b); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Lock(c ctx.Ctx, account domain.Address, amount domain.Amount) error {
	b, err := im.find(c, account)
	if err != nil {
		return err
	}
	if b.Locked, err = b.Locked.Add(amount); err != nil {
		c.WithFields(log.Fields{"account": account, "amount": amount, "err": err}).Error("Locked.Add failed")
		return err
	}
	return im.save(c, b)
}

func (im *impl) take(c ctx.Ctx, account domain.Address, amount domain.Amount) (*ledger.Balance, error) {
	b, err := im.find(c, account)
	if err != nil {
		return nil, err
	}
	if b.Locked.Cmp(amount) < 0 {
		c.WithFields(log.Fields{
			"account": account,
			"locked":  b.Locked,
			"amount":  amount,
		}).Error("insufficient locked funds")
		return nil, domain.ErrInsufficientLockedFunds
	}
	if b.Locked, err = b.Locked.Sub(amount); err != nil {
		return nil, err
	}
	return b, nil
}

func (im *impl) Unlock(c ctx.Ctx, account domain.Address, amount domain.Amount) error {
	b, err := im.take(c, account, amount)
	if err != nil {
		return err
	}
	return im.save(c, b)
}

func (im *impl) Release(c ctx.Ctx, account domain.Address, amount domain.Amount) error {
	b, err := im.take(c, account, amount)
	if err != nil {
		return err
	}
	if b.Withdrawable, err = b.Withdrawable.Add(amount); err != nil {
		c.WithFields(log.Fields{"account": account, "amount": amount, "err": err}).Error("Withdrawable.Add failed")
		return err
	}
	return im.save(c, b)
}

func (im *impl) Withdraw(c ctx.Ctx, account domain.Address) (domain.Amount, error) {
	b, err := im.find(c, account)
	if err != nil {
		return domain.ZeroAmount, err
	}
	if b.Withdrawable.IsZero() {
		return domain.ZeroAmount, domain.ErrNoFundsToWithdraw
	}

	amount := b.Withdrawable
	b.Withdrawable = domain.ZeroAmount
	if err := im.save(c, b); err != nil {
		return domain.ZeroAmount, err
	}
	return amount, nil
}

func (im *impl) Balance(c ctx.Ctx, account domain.Address) (*ledger.Balance, error) {
	return im.find(c, account)
}

func (im *impl) Totals(c ctx.Ctx) (*ledger.Totals, error) {
	balances, err := im.repo.FindAll(c)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}

	res := &ledger.Totals{}
	for _, b := range balances {
		if b.IsZero() {
			continue
		}
		if res.Locked, err = res.Locked.Add(b.Locked); err != nil {
			return nil, err
		}
		if res.Withdrawable, err = res.Withdrawable.Add(b.Withdrawable); err != nil {
			return nil, err
		}
		res.Accounts++
	}
	return res, nil
}
