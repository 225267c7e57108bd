package healthcheck

import (
	"github.com/x-xyz/auctionhouse/base/ctx"
)

// Usecase reports whether the engine can serve requests.
type Usecase interface {
	Check(c ctx.Ctx) error
}

// Repo pings the backing stores. A store that is not configured is skipped.
type Repo interface {
	Ping(c ctx.Ctx) error
}
