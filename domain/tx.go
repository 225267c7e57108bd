package domain

import "github.com/x-xyz/auctionhouse/base/ctx"

// TxRunner runs fn as one atomic unit of storage work: either every write in fn
// is kept or none is.
type TxRunner interface {
	RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error
}
