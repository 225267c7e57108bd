package activity

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

type EventType string

const (
	EventAuctionCreated EventType = "auctionCreated"
	EventBidPlaced      EventType = "bidPlaced"
	EventBidRefunded    EventType = "bidRefunded"
	EventAuctionSettled EventType = "auctionSettled"
	EventFundsWithdrawn EventType = "fundsWithdrawn"
	EventItemMinted     EventType = "itemMinted"
)

type Event struct {
	Id        string         `json:"id" bson:"_id"`
	Type      EventType      `json:"type" bson:"type"`
	ItemId    *domain.ItemId `json:"itemId,omitempty" bson:"itemId,omitempty"`
	Account   domain.Address `json:"account,omitempty" bson:"account,omitempty"`
	Amount    domain.Amount  `json:"amount" bson:"amount"`
	Destroyed bool           `json:"destroyed,omitempty" bson:"destroyed,omitempty"`
	StartTime *time.Time     `json:"startTime,omitempty" bson:"startTime,omitempty"`
	EndTime   *time.Time     `json:"endTime,omitempty" bson:"endTime,omitempty"`
	Time      time.Time      `json:"time" bson:"time"`
}

type SearchOptions struct {
	Offset  int
	Limit   int
	Types   []EventType
	ItemId  *domain.ItemId
	Account *domain.Address
}

type SearchOptionsFunc func(*SearchOptions) error

func GetSearchOptions(opts ...SearchOptionsFunc) (SearchOptions, error) {
	res := SearchOptions{Limit: 50}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithPagination(offset, limit int) SearchOptionsFunc {
	return func(o *SearchOptions) error {
		if offset < 0 || limit <= 0 {
			return domain.ErrBadParamInput
		}
		o.Offset = offset
		o.Limit = limit
		return nil
	}
}

func WithTypes(types ...EventType) SearchOptionsFunc {
	return func(o *SearchOptions) error {
		o.Types = types
		return nil
	}
}

func WithItemId(itemId domain.ItemId) SearchOptionsFunc {
	return func(o *SearchOptions) error {
		o.ItemId = &itemId
		return nil
	}
}

func WithAccount(account domain.Address) SearchOptionsFunc {
	return func(o *SearchOptions) error {
		o.Account = account.ToLowerPtr()
		return nil
	}
}

type Repo interface {
	Insert(c ctx.Ctx, e Event) error
	Search(c ctx.Ctx, opts ...SearchOptionsFunc) ([]*Event, error)
}

// Publisher receives the engine's notifications after each committed operation.
type Publisher interface {
	Publish(c ctx.Ctx, events ...Event)
}

// Sink is an outbound notification channel.
type Sink interface {
	Notify(c ctx.Ctx, e Event) error
}

type Usecase interface {
	Publisher
	Search(c ctx.Ctx, opts ...SearchOptionsFunc) ([]*Event, error)
}
