package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"deliveryapi/internal/pkg/errs"
)

// Monetary bounds accepted for order totals.
var (
	MinMoney = decimal.RequireFromString("0.01")
	MaxMoney = decimal.RequireFromString("999999.99")
)

// Money is a value object for monetary amounts. Amounts are decimals
// constrained to [0.01, 999999.99]; the zero value is invalid.
//
// Money is immutable: operations return a new Money and never mutate the
// receiver.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount within the accepted range.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.LessThan(MinMoney) || amount.GreaterThan(MaxMoney) {
		return Money{}, errs.NewValueIsOutOfRangeError(
			"amount", amount.String(), MinMoney.String(), MaxMoney.String())
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a Money from its decimal string representation.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// NewMoneyFromFloat creates a Money from a float amount.
func NewMoneyFromFloat(value float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(value))
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// String returns the fixed-point representation with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// IsEqual compares two monetary amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate returns an error for amounts outside the accepted range,
// including the zero value.
func (m Money) Validate() error {
	if m.amount.LessThan(MinMoney) || m.amount.GreaterThan(MaxMoney) {
		return errs.NewValueIsOutOfRangeError(
			"amount", m.amount.String(), MinMoney.String(), MaxMoney.String())
	}
	return nil
}

// ApplyPercentageDiscount returns the amount reduced by a percentage in [0, 100].
// The discounted amount must still lie within the accepted range.
func (m Money) ApplyPercentageDiscount(percentage float64) (Money, error) {
	if percentage < 0 || percentage > 100 {
		return Money{}, errs.NewValueIsOutOfRangeError("discount percentage", percentage, 0, 100)
	}

	factor := decimal.NewFromFloat(1 - percentage/100)
	return NewMoney(m.amount.Mul(factor).Round(2))
}

// ApplySubtotalDiscount returns the amount reduced by a fixed discount.
// The discount must be non-negative and must not exceed the subtotal.
func (m Money) ApplySubtotalDiscount(discount decimal.Decimal) (Money, error) {
	if discount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("%s is negative", discount.String()))
	}
	if discount.GreaterThan(m.amount) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("%s exceeds the subtotal %s", discount.String(), m.amount.String()))
	}

	return NewMoney(m.amount.Sub(discount))
}
