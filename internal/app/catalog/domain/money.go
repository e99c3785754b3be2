package domain

import (
	"fmt"
	"math"
	"math/big"
)

// Money is a monetary value backed by a rational number (big.Rat).
// Storing prices as numerator/denominator keeps bulk price arithmetic exact
// and makes undo reproduce the previous value bit for bit.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a Money from numerator and denominator.
// Example: NewMoney(249900, 100) represents 2499.00.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator <= 0 {
		return nil, fmt.Errorf("denominator must be positive, got %d", denominator)
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// NewMoneyFromFloat creates a Money from a float64 amount.
// Non-finite values are rejected.
func NewMoneyFromFloat(amount float64) (*Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: amount must be a finite number", ErrInvalidParameter)
	}
	rat := new(big.Rat).SetFloat64(amount)
	return &Money{rat: rat}, nil
}

// NewMoneyFromRat creates a Money from a big.Rat.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{rat: big.NewRat(0, 1)}
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// Zero returns a zero-valued Money.
func Zero() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Numerator returns the numerator of the normalized rational value.
func (m *Money) Numerator() int64 {
	return m.rat.Num().Int64()
}

// Denominator returns the denominator of the normalized rational value.
func (m *Money) Denominator() int64 {
	return m.rat.Denom().Int64()
}

// IsSafeForStorage reports whether both numerator and denominator fit in int64 columns.
func (m *Money) IsSafeForStorage() bool {
	return m.rat.Num().IsInt64() && m.rat.Denom().IsInt64()
}

// Add returns m + other.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract returns m - other.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByRat returns m scaled by the given rational factor.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// Round2 rounds to two decimal places using half-up rounding.
// Prices are non-negative, so half away from zero and half up coincide.
func (m *Money) Round2() *Money {
	scaled := new(big.Rat).Mul(m.rat, big.NewRat(100, 1))
	rem := new(big.Int)
	quo, _ := new(big.Int).QuoRem(scaled.Num(), scaled.Denom(), rem)
	rem.Abs(rem)
	rem.Mul(rem, big.NewInt(2))
	if rem.Cmp(scaled.Denom()) >= 0 {
		if scaled.Sign() >= 0 {
			quo.Add(quo, big.NewInt(1))
		} else {
			quo.Sub(quo, big.NewInt(1))
		}
	}
	return &Money{rat: new(big.Rat).SetFrac(quo, big.NewInt(100))}
}

// ClampZero returns zero when the value is negative, the value itself otherwise.
func (m *Money) ClampZero() *Money {
	if m.rat.Sign() < 0 {
		return Zero()
	}
	return m.Copy()
}

// IsZero reports whether the value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative reports whether the value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// LessThan reports whether m < other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// Equals reports whether m and other are the same value.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation (display only).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String renders the value with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy returns a deep copy.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
