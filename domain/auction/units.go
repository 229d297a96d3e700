package auction

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zkzk-trade/goapi/domain"
	"golang.org/x/xerrors"
)

// Decimals of the native currency, 1 ether == 10^18 wei
const Decimals = 18

var maxInt64 = big.NewInt(1<<63 - 1)

// FormatEther renders base units as a decimal string with at least one fractional digit,
// 1e18 -> "1.0", 2e16 -> "0.02".
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}
	s := decimal.NewFromBigInt(wei, -Decimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseEther converts a decimal amount into base units
func ParseEther(amount string) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, xerrors.Errorf("%w: %q", domain.ErrInvalidAmount, amount)
	}
	return ParseEtherDecimal(d)
}

func ParseEtherDecimal(d decimal.Decimal) (*big.Int, error) {
	if d.IsNegative() {
		return nil, xerrors.Errorf("%w: negative amount %s", domain.ErrInvalidAmount, d)
	}
	wei := d.Shift(Decimals)
	if !wei.Equal(wei.Truncate(0)) {
		return nil, xerrors.Errorf("%w: more than %d fractional digits in %s", domain.ErrInvalidAmount, Decimals, d)
	}
	return wei.BigInt(), nil
}

// ToInt64 narrows a contract integer, failing instead of wrapping around
func ToInt64(n *big.Int) (int64, error) {
	if n == nil {
		return 0, nil
	}
	if n.Sign() < 0 || n.Cmp(maxInt64) > 0 {
		return 0, xerrors.Errorf("%w: %s", domain.ErrNumericOverflow, n)
	}
	return n.Int64(), nil
}

// SecondsToMillis rescales a contract timestamp (seconds) to milliseconds.
// The scaling is arithmetic, a value of 1.5s becomes 1500ms.
func SecondsToMillis(sec *big.Int) (int64, error) {
	if sec == nil {
		return 0, nil
	}
	ms := new(big.Int).Mul(sec, domain.Big1000)
	return ToInt64(ms)
}

// DecimalSecondsToMillis applies the same scaling to a fractional seconds value
func DecimalSecondsToMillis(sec decimal.Decimal) decimal.Decimal {
	return sec.Mul(decimal.NewFromInt(1000))
}
