package usecase

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/allowlist"
	"github.com/x-xyz/auctionhouse/domain/params"
)

var timeNow = time.Now

type impl struct {
	allowList allowlist.Repo
	params    params.Usecase
}

func New(allowList allowlist.Repo, params params.Usecase) allowlist.Usecase {
	return &impl{allowList, params}
}

func (im *impl) FindAll(c ctx.Ctx) ([]*allowlist.Entry, error) {
	return im.allowList.FindAll(c)
}

func (im *impl) IsAllowed(c ctx.Ctx, address domain.Address) (bool, error) {
	if address.IsEmpty() {
		return false, nil
	}
	if res, err := im.allowList.FindOne(c, address); err != nil {
		c.WithField("err", err).Error("allowList.FindOne failed")
		return false, err
	} else {
		return res != nil, nil
	}
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

func (im *impl) Add(c ctx.Ctx, caller, address domain.Address, name string) error {
	if err := im.checkAdmin(c, caller); err != nil {
		return err
	}
	if address.IsEmpty() {
		return domain.ErrInvalidAddress
	}

	entry := allowlist.Entry{
		Address:   address.ToLower(),
		Name:      name,
		AddedBy:   caller.ToLower(),
		CreatedAt: timeNow(),
	}
	if err := im.allowList.Create(c, entry); err != nil {
		c.WithField("err", err).Error("allowList.Create failed")
		return err
	}
	return nil
}

func (im *impl) Remove(c ctx.Ctx, caller, address domain.Address) error {
	if err := im.checkAdmin(c, caller); err != nil {
		return err
	}
	if err := im.allowList.Delete(c, address); err != nil {
		c.WithField("err", err).Error("allowList.Delete failed")
		return err
	}
	return nil
}
