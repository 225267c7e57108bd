package usecase

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/activity"
	"github.com/x-xyz/auctionhouse/domain/allowlist"
	"github.com/x-xyz/auctionhouse/domain/item"
	"github.com/x-xyz/auctionhouse/domain/params"
)

var timeNow = time.Now

type ItemUseCaseCfg struct {
	Repo      item.Repo
	AllowList allowlist.Usecase
	Params    params.Usecase
	Publisher activity.Publisher
}

type impl struct {
	repo      item.Repo
	allowList allowlist.Usecase
	params    params.Usecase
	publisher activity.Publisher
}

func New(cfg *ItemUseCaseCfg) item.Usecase {
	return &impl{
		repo:      cfg.Repo,
		allowList: cfg.AllowList,
		params:    cfg.Params,
		publisher: cfg.Publisher,
	}
}

func (im *impl) findLive(c ctx.Ctx, itemId domain.ItemId) (*item.Item, error) {
	if it, err := im.repo.FindOne(c, itemId); err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	} else if it == nil || it.Destroyed {
		return nil, domain.ErrItemNotFound
	} else {
		return it, nil
	}
}

func (im *impl) OwnerIsEngine(c ctx.Ctx, itemId domain.ItemId) (bool, error) {
	p, err := im.params.Get(c)
	if err != nil {
		c.WithField("err", err).Error("params.Get failed")
		return false, err
	}

	it, err := im.findLive(c, itemId)
	if err == domain.ErrItemNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return it.Owner.Equals(p.EngineAddress), nil
}

func (im *impl) Transfer(c ctx.Ctx, itemId domain.ItemId, to domain.Address) error {
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if _, err := im.findLive(c, itemId); err != nil {
		return err
	}

	now := timeNow()
	if err := im.repo.Patch(c, itemId, item.PatchableItem{Owner: to.ToLowerPtr(), UpdatedAt: &now}); err != nil {
		c.WithFields(log.Fields{"itemId": itemId, "to": to, "err": err}).Error("repo.Patch failed")
		return err
	}
	return nil
}

func (im *impl) Destroy(c ctx.Ctx, itemId domain.ItemId) error {
	if _, err := im.findLive(c, itemId); err != nil {
		return err
	}

	now := timeNow()
	destroyed := true
	owner := domain.EmptyAddress
	if err := im.repo.Patch(c, itemId, item.PatchableItem{Owner: &owner, Destroyed: &destroyed, UpdatedAt: &now}); err != nil {
		c.WithFields(log.Fields{"itemId": itemId, "err": err}).Error("repo.Patch failed")
		return err
	}
	return nil
}

func (im *impl) MintTo(c ctx.Ctx, caller, to domain.Address, itemId domain.ItemId, metadata string) (*item.Item, error) {
	if to.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	if ok, err := im.allowList.IsAllowed(c, caller); err != nil {
		c.WithField("err", err).Error("allowList.IsAllowed failed")
		return nil, err
	} else if !ok {
		return nil, domain.ErrNotAllowListed
	}

	now := timeNow()
	it := item.Item{
		ItemId:    itemId,
		Owner:     to.ToLower(),
		Metadata:  metadata,
		MintedBy:  caller.ToLower(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := im.repo.Insert(c, it); err != nil {
		c.WithFields(log.Fields{"itemId": itemId, "err": err}).Error("repo.Insert failed")
		return nil, err
	}

	im.publisher.Publish(c, activity.Event{
		Type:    activity.EventItemMinted,
		ItemId:  &it.ItemId,
		Account: it.Owner,
		Time:    now,
	})
	return &it, nil
}

func (im *impl) Get(c ctx.Ctx, itemId domain.ItemId) (*item.Item, error) {
	if it, err := im.repo.FindOne(c, itemId); err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	} else if it == nil {
		return nil, domain.ErrItemNotFound
	} else {
		return it, nil
	}
}
