package interest

import (
	"fmt"

	"github.com/GlebRadaev/fundslock/internal/domain"
	"github.com/shopspring/decimal"
)

// BasisPoints is the denominator of a rate: 10000 bps = 100%.
const BasisPoints = 10_000

var bpsDenominator = decimal.NewFromInt(BasisPoints)

// Compute returns floor(principal * rate / 10000) where rate is looked up by
// the time elapsed between createdAt and now. No tier applies below the
// smallest threshold and the interest is zero. createdAt must lie in
// [0, now].
func Compute(principal decimal.Decimal, createdAt, now int64, table *Table) (decimal.Decimal, error) {
	if principal.IsNegative() || !principal.IsInteger() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, principal)
	}
	if createdAt < 0 || now < createdAt {
		return decimal.Decimal{}, fmt.Errorf("%w: created at %d, now %d", domain.ErrInvalidTimestamp, createdAt, now)
	}

	rate, ok := table.Rate(now - createdAt)
	if !ok || rate == 0 {
		return decimal.NewFromInt(0), nil
	}

	return principal.Mul(decimal.NewFromInt(rate)).Div(bpsDenominator).Floor(), nil
}
