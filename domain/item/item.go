package item

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

type Item struct {
	ItemId    domain.ItemId  `json:"itemId" bson:"itemId"`
	Owner     domain.Address `json:"owner" bson:"owner"`
	Metadata  string         `json:"metadata" bson:"metadata"`
	MintedBy  domain.Address `json:"mintedBy" bson:"mintedBy"`
	Destroyed bool           `json:"destroyed" bson:"destroyed"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type PatchableItem struct {
	Owner     *domain.Address `bson:"owner,omitempty"`
	Destroyed *bool           `bson:"destroyed,omitempty"`
	UpdatedAt *time.Time      `bson:"updatedAt,omitempty"`
}

type Repo interface {
	// FindOne returns nil, nil when the item does not exist
	FindOne(c ctx.Ctx, itemId domain.ItemId) (*Item, error)
	// Insert fails with domain.ErrItemExists on a duplicated id
	Insert(c ctx.Ctx, item Item) error
	Patch(c ctx.Ctx, itemId domain.ItemId, patch PatchableItem) error
}

// Usecase is the token registry the auction engine depends on for custody checks and transfers.
type Usecase interface {
	OwnerIsEngine(c ctx.Ctx, itemId domain.ItemId) (bool, error)
	Transfer(c ctx.Ctx, itemId domain.ItemId, to domain.Address) error
	Destroy(c ctx.Ctx, itemId domain.ItemId) error
	// MintTo registers a new item; caller must be allow-listed
	MintTo(c ctx.Ctx, caller, to domain.Address, itemId domain.ItemId, metadata string) (*Item, error)
	Get(c ctx.Ctx, itemId domain.ItemId) (*Item, error)
}
