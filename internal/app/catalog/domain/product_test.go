package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	now := time.Now().UTC()
	price, _ := NewMoney(9999, 100)

	t.Run("baseline seeded from initial price", func(t *testing.T) {
		p, err := NewProduct("p-1", "iPhone 13", "Latest model", "cat-1", price, 50, "", now)
		require.NoError(t, err)
		assert.True(t, p.CurrentPrice().Equals(p.BaselinePrice()))
		assert.True(t, p.AtBaseline())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewProduct("p-1", "", "", "cat-1", price, 0, "", now)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		neg, _ := NewMoney(-100, 100)
		_, err := NewProduct("p-1", "x", "", "cat-1", neg, 0, "", now)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		_, err := NewProduct("p-1", "x", "", "cat-1", price, -1, "", now)
		assert.ErrorIs(t, err, ErrInvalidStock)
	})
}

func TestProduct_SetCurrentPrice(t *testing.T) {
	now := time.Now().UTC()
	price, _ := NewMoney(10000, 100)
	p, err := NewProduct("p-1", "x", "", "cat-1", price, 1, "", now)
	require.NoError(t, err)

	t.Run("baseline untouched by price change", func(t *testing.T) {
		next, _ := NewMoney(12000, 100)
		require.NoError(t, p.SetCurrentPrice(next))
		assert.Equal(t, "120.00", p.CurrentPrice().String())
		assert.Equal(t, "100.00", p.BaselinePrice().String())
		assert.False(t, p.AtBaseline())
	})

	t.Run("price rounded on write", func(t *testing.T) {
		next, _ := NewMoney(100, 3)
		require.NoError(t, p.SetCurrentPrice(next))
		assert.Equal(t, "33.33", p.CurrentPrice().String())
	})

	t.Run("negative price rejected", func(t *testing.T) {
		neg, _ := NewMoney(-1, 100)
		assert.ErrorIs(t, p.SetCurrentPrice(neg), ErrInvalidPrice)
	})
}

func TestPriceChangeBatch(t *testing.T) {
	now := time.Now().UTC()
	old, _ := NewMoney(10000, 100)
	next, _ := NewMoney(11000, 100)
	entries := []PriceChangeEntry{{ProductID: "p-1", OldPrice: old, NewPrice: next}}

	percent := 10.0
	batch := NewPriceChangeBatch("b-1", KindPercentage, &percent, now, entries)

	t.Run("accessors", func(t *testing.T) {
		assert.Equal(t, "b-1", batch.ID())
		assert.Equal(t, KindPercentage, batch.Kind())
		require.NotNil(t, batch.Parameter())
		assert.Equal(t, 10.0, *batch.Parameter())
		assert.Equal(t, 1, batch.Size())
	})

	t.Run("entries are copied, not shared", func(t *testing.T) {
		got := batch.Entries()
		got[0].ProductID = "mutated"
		assert.Equal(t, "p-1", batch.Entries()[0].ProductID)
	})

	t.Run("reset batches carry no parameter", func(t *testing.T) {
		reset := NewPriceChangeBatch("b-2", KindReset, nil, now, entries)
		assert.Nil(t, reset.Parameter())
	})
}
