package domain

import (
	"strconv"
	"strings"
	"time"

	gmath "github.com/ethereum/go-ethereum/common/math"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

// IsEmpty reports whether a is unset or the zero address
func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// ItemId numbers items sequentially; the successor of an item is ItemId+1.
type ItemId uint64

func (i ItemId) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

// Next returns the successor id, failing instead of wrapping at the top of the range.
func (i ItemId) Next() (ItemId, error) {
	n, overflow := gmath.SafeAdd(uint64(i), 1)
	if overflow {
		return 0, ErrAmountOverflow
	}
	return ItemId(n), nil
}

func ParseItemId(s string) (ItemId, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidItemId
	}
	return ItemId(n), nil
}

// AddDuration returns t+d, failing when the result leaves the representable range.
func AddDuration(t time.Time, d time.Duration) (time.Time, error) {
	if d < 0 {
		return time.Time{}, ErrInvalidDuration
	}
	end := t.Add(d)
	if end.Before(t) {
		return time.Time{}, ErrAmountOverflow
	}
	return end, nil
}
