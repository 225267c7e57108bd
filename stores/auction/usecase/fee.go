package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
)

type rateFee struct{}

// NewRateFee charges floor(gross * rate).
func NewRateFee() auction.FeeModel {
	return rateFee{}
}

func (rateFee) Fee(gross domain.Amount, rate decimal.Decimal) (domain.Amount, error) {
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return domain.ZeroAmount, domain.ErrInvalidFeeRate
	}
	return gross.MulDecimal(rate)
}
