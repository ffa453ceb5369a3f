package decimals

import (
	"math/big"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/shopspring/decimal"
)

const (
	DefaultDivPrecision = 36

	// TokenDecimals is the decimal scale of both the reward token and the
	// chain's native currency (18, the EVM convention).
	TokenDecimals = 18
)

func init() {
	decimal.DivisionPrecision = DefaultDivPrecision
}

// MustFromString convert string to decimal.Decimal. Panic if error.
// string must be a valid number, not NaN, Inf or empty string.
func MustFromString(s string) decimal.Decimal {
	return utils.Must(decimal.NewFromString(s))
}

// ToDecimal converts a raw integer amount to decimal.Decimal scaled down by
// the given number of decimals (safety floating point).
func ToDecimal(ivalue any, decimals int32) decimal.Decimal {
	value := new(big.Int)
	switch v := ivalue.(type) {
	case string:
		value.SetString(v, 10)
	case *big.Int:
		if v != nil {
			value = v
		}
	case int64:
		value = big.NewInt(v)
	case uint64:
		value = new(big.Int).SetUint64(v)
	case []byte:
		value.SetBytes(v)
	}
	return decimal.NewFromBigInt(value, -decimals)
}

// FromWei converts a wei-scale amount to token units.
func FromWei(amount *big.Int) decimal.Decimal {
	return ToDecimal(amount, TokenDecimals)
}

// ToWei converts a token-unit amount to a wei-scale *big.Int.
func ToWei(amount decimal.Decimal) *big.Int {
	return amount.Shift(TokenDecimals).BigInt()
}
