package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/params"
)

var timeNow = time.Now

type impl struct {
	repo params.Repo
}

func New(repo params.Repo) params.Usecase {
	return &impl{repo}
}

func (im *impl) Get(c ctx.Ctx) (*params.Params, error) {
	if p, err := im.repo.Get(c); err != nil {
		c.WithField("err", err).Error("repo.Get failed")
		return nil, err
	} else if p == nil {
		return nil, domain.ErrNotFound
	} else {
		return p, nil
	}
}

func (im *impl) Init(c ctx.Ctx, p params.Params) error {
	if _, err := params.ParseFeeRate(p.FeeRate); err != nil {
		return err
	}

	if existing, err := im.repo.Get(c); err != nil {
		c.WithField("err", err).Error("repo.Get failed")
		return err
	} else if existing != nil {
		c.WithField("admin", existing.Admin).Info("params already initialized")
		return nil
	}

	p.EngineAddress = p.EngineAddress.ToLower()
	p.Admin = p.Admin.ToLower()
	p.Beneficiary = p.Beneficiary.ToLower()
	p.FeeRecipient = p.FeeRecipient.ToLower()
	p.UpdatedAt = timeNow()
	if err := im.repo.Upsert(c, p); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) IsAdmin(c ctx.Ctx, address domain.Address) (bool, error) {
	p, err := im.Get(c)
	if err != nil {
		return false, err
	}
	return p.IsAdmin(address), nil
}

func (im *impl) SetFeeRate(c ctx.Ctx, caller domain.Address, rate decimal.Decimal) (*params.Params, error) {
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, domain.ErrInvalidFeeRate
	}

	p, err := im.Get(c)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin(caller) {
		return nil, domain.ErrUnauthorized
	}

	p.FeeRate = rate.String()
	p.UpdatedAt = timeNow()
	if err := im.repo.Upsert(c, *p); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return nil, err
	}
	return p, nil
}
