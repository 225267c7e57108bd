package usecase

import (
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain/healthcheck"
	"github.com/x-xyz/auctionhouse/domain/params"
)

type impl struct {
	repo   healthcheck.Repo
	params params.Usecase
}

func New(repo healthcheck.Repo, params params.Usecase) healthcheck.Usecase {
	return &impl{
		repo:   repo,
		params: params,
	}
}

// Check fails until the engine params are stored, as no auction can be created before that.
func (im *impl) Check(c ctx.Ctx) error {
	if err := im.repo.Ping(c); err != nil {
		return err
	}
	if _, err := im.params.Get(c); err != nil {
		c.WithField("err", err).Warn("params.Get failed")
		return err
	}
	return nil
}
