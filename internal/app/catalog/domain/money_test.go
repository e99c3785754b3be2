package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money creation", func(t *testing.T) {
		m, err := NewMoney(100, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(100), m.Numerator())
		assert.Equal(t, int64(1), m.Denominator())
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		assert.Error(t, err)
	})

	t.Run("negative denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, -1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "positive")
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("valid amount", func(t *testing.T) {
		m, err := NewMoneyFromFloat(49.99)
		require.NoError(t, err)
		assert.Equal(t, "49.99", m.Round2().String())
	})

	t.Run("NaN rejected", func(t *testing.T) {
		_, err := NewMoneyFromFloat(math.NaN())
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("infinity rejected", func(t *testing.T) {
		_, err := NewMoneyFromFloat(math.Inf(1))
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestMoney_Round2(t *testing.T) {
	cases := []struct {
		name string
		num  int64
		den  int64
		want string
	}{
		{"exact value unchanged", 11000, 100, "110.00"},
		{"half rounds up", 1005, 1000, "1.01"},
		{"just below half rounds down", 10049, 10000, "1.00"},
		{"third rounds to nearest cent", 100, 3, "33.33"},
		{"two thirds rounds up", 200, 3, "66.67"},
		{"zero stays zero", 0, 1, "0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMoney(tc.num, tc.den)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Round2().String())
		})
	}

	t.Run("rounded value is exactly representable in cents", func(t *testing.T) {
		m, _ := NewMoney(100, 3)
		r := m.Round2()
		assert.Zero(t, int64(100)%r.Denominator())
		assert.True(t, r.IsSafeForStorage())
	})
}

func TestMoney_ClampZero(t *testing.T) {
	t.Run("negative clamps to zero", func(t *testing.T) {
		m, _ := NewMoney(-500, 100)
		assert.True(t, m.ClampZero().IsZero())
	})

	t.Run("positive unchanged", func(t *testing.T) {
		m, _ := NewMoney(500, 100)
		assert.True(t, m.ClampZero().Equals(m))
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	m1, _ := NewMoney(100, 1)
	m2, _ := NewMoney(30, 1)

	assert.Equal(t, 130.0, m1.Add(m2).Float64())
	assert.Equal(t, 70.0, m1.Subtract(m2).Float64())
	assert.True(t, m2.LessThan(m1))
	assert.False(t, m1.Equals(m2))
}

func TestMoney_CopyIsIndependent(t *testing.T) {
	m1, _ := NewMoney(100, 1)
	m2 := m1.Copy()
	m3 := m1.Add(m2)

	assert.True(t, m1.Equals(m2))
	assert.Equal(t, 200.0, m3.Float64())
	assert.Equal(t, 100.0, m1.Float64())
}
