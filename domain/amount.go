package domain

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Amount is a non-negative quantity of currency bounded by 2^256-1.
// The zero value is 0. Amount is immutable; arithmetic returns new values.
type Amount struct {
	v *big.Int
}

var ZeroAmount = Amount{}

func NewAmount(v uint64) Amount {
	return Amount{v: new(big.Int).SetUint64(v)}
}

func AmountFromBig(v *big.Int) (Amount, error) {
	if v == nil {
		return ZeroAmount, nil
	}
	if v.Sign() < 0 {
		return ZeroAmount, ErrAmountUnderflow
	}
	if v.Cmp(math.MaxBig256) > 0 {
		return ZeroAmount, ErrAmountOverflow
	}
	return Amount{v: new(big.Int).Set(v)}, nil
}

func ParseAmount(s string) (Amount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return ZeroAmount, ErrInvalidAmount
	}
	return AmountFromBig(v)
}

func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.v)
}

func (a Amount) IsZero() bool {
	return a.v == nil || a.v.Sign() == 0
}

func (a Amount) Cmp(b Amount) int {
	return a.Big().Cmp(b.Big())
}

func (a Amount) Equals(b Amount) bool {
	return a.Cmp(b) == 0
}

func (a Amount) Add(b Amount) (Amount, error) {
	return AmountFromBig(new(big.Int).Add(a.Big(), b.Big()))
}

func (a Amount) Sub(b Amount) (Amount, error) {
	return AmountFromBig(new(big.Int).Sub(a.Big(), b.Big()))
}

// MulDecimal returns floor(a*rate). rate must be non-negative.
func (a Amount) MulDecimal(rate decimal.Decimal) (Amount, error) {
	if rate.IsNegative() {
		return ZeroAmount, ErrInvalidAmount
	}
	return AmountFromBig(decimal.NewFromBigInt(a.Big(), 0).Mul(rate).Floor().BigInt())
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(a.Big(), 0)
}

func (a Amount) String() string {
	return a.Big().String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// accept bare numbers too
		s = string(data)
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Amount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(a.String())
}

func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	s, ok := raw.StringValueOK()
	if !ok {
		return fmt.Errorf("amount: unexpected bson type %s", t)
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
