package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// auction
	ErrItemNotInCustody     = errors.New("item not in engine custody")
	ErrInvalidDuration      = errors.New("invalid auction duration")
	ErrAuctionNotFound      = errors.New("auction not found")
	ErrAuctionNotYetOpen    = errors.New("auction not yet open")
	ErrAuctionExpired       = errors.New("auction expired")
	ErrBidTooLow            = errors.New("bid too low")
	ErrAuctionStillActive   = errors.New("auction still active")
	ErrAuctionAlreadyActive = errors.New("auction already active")

	// ledger
	// ErrInsufficientLockedFunds means a ledger invariant was broken; it is unreachable with correct call ordering
	ErrInsufficientLockedFunds = errors.New("insufficient locked funds")
	ErrNoFundsToWithdraw       = errors.New("no funds to withdraw")

	// access
	ErrNotAllowListed = errors.New("caller not allow-listed")
	ErrUnauthorized   = errors.New("unauthorized")

	// arithmetic
	ErrAmountOverflow  = errors.New("amount overflow")
	ErrAmountUnderflow = errors.New("amount underflow")
	ErrInvalidAmount   = errors.New("invalid amount")

	// item registry
	ErrInvalidItemId = errors.New("invalid item id")
	ErrItemNotFound  = errors.New("item not found")
	ErrItemExists    = errors.New("item already exists")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrInvalidNonce     = errors.New("invalid nonce")
	ErrInvalidFeeRate   = errors.New("invalid fee rate")
)
