package lock

import (
	"errors"
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
)

var (
	// ErrLockTimeout is returned when the lock could not be acquired within the wait time
	ErrLockTimeout = errors.New("lock wait timeout")
)

// Unlocker releases a held lock. It is safe to call more than once.
type Unlocker func()

// Locker is a mutual exclusion shared by every replica of the service.
type Locker interface {
	// Lock blocks until key is held, c is done or the wait time elapses
	Lock(c ctx.Ctx, key string) (Unlocker, error)
}

type Config struct {
	// Ttl bounds how long a crashed holder keeps the lock
	Ttl time.Duration
	// Wait bounds how long Lock retries before ErrLockTimeout
	Wait time.Duration
}
