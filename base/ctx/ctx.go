package ctx

import (
	"context"
	"time"

	"github.com/x-xyz/auctionhouse/base/log"
)

// Ctx carries a context together with a logger that accumulates request fields.
type Ctx struct {
	context.Context
	log.Logger
}

// key keeps values set through this package from colliding with other packages' string keys.
type key string

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

func Todo() Ctx {
	return Ctx{
		Context: context.TODO(),
		Logger:  log.Log(),
	}
}

// WithValue stores val under k and tags every later log line with it.
func WithValue(parent Ctx, k string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent.Context, key(k), val),
		Logger:  parent.Logger.WithField(k, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

// Value returns what WithValue stored under k, or nil.
func Value(c Ctx, k string) interface{} {
	return c.Context.Value(key(k))
}

// WithLogFields only tags the logger; nothing is stored in the context.
func WithLogFields(parent Ctx, fields log.Fields) Ctx {
	return Ctx{
		Context: parent.Context,
		Logger:  parent.Logger.WithFields(fields),
	}
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	c, cancel := context.WithCancel(parent.Context)
	return Ctx{
		Context: c,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	c, cancel := context.WithTimeout(parent.Context, timeout)
	return Ctx{
		Context: c,
		Logger:  parent.Logger,
	}, cancel
}
