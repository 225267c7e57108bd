package allowlist

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

type Entry struct {
	Name      string         `json:"name" bson:"name"`
	Address   domain.Address `json:"address" bson:"address"`
	AddedBy   domain.Address `json:"addedBy" bson:"addedBy"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type Repo interface {
	FindAll(c ctx.Ctx) ([]*Entry, error)
	FindOne(c ctx.Ctx, address domain.Address) (*Entry, error)
	Create(c ctx.Ctx, value Entry) error
	Delete(c ctx.Ctx, address domain.Address) error
}

type Usecase interface {
	FindAll(c ctx.Ctx) ([]*Entry, error)
	Add(c ctx.Ctx, caller, address domain.Address, name string) error
	Remove(c ctx.Ctx, caller, address domain.Address) error
	IsAllowed(c ctx.Ctx, address domain.Address) (bool, error)
}
