package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T, id string, priceNum int64) *Product {
	t.Helper()
	price, err := NewMoney(priceNum, 100)
	require.NoError(t, err)
	p, err := NewProduct(id, "product "+id, "", "cat-1", price, 10, "", time.Now().UTC())
	require.NoError(t, err)
	return p
}

func TestRepricer_Percentage(t *testing.T) {
	r := NewRepricer()

	t.Run("ten percent raise", func(t *testing.T) {
		products := []*Product{
			testProduct(t, "1", 10000), // 100.00
			testProduct(t, "2", 5000),  // 50.00
		}

		entries, err := r.Percentage(products, 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "1", entries[0].ProductID)
		assert.Equal(t, "100.00", entries[0].OldPrice.String())
		assert.Equal(t, "110.00", entries[0].NewPrice.String())
		assert.Equal(t, "2", entries[1].ProductID)
		assert.Equal(t, "50.00", entries[1].OldPrice.String())
		assert.Equal(t, "55.00", entries[1].NewPrice.String())
	})

	t.Run("entries keep catalog iteration order", func(t *testing.T) {
		products := []*Product{
			testProduct(t, "b", 2000),
			testProduct(t, "a", 1000),
		}

		entries, err := r.Percentage(products, 5)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "b", entries[0].ProductID)
		assert.Equal(t, "a", entries[1].ProductID)
	})

	t.Run("result rounds half up", func(t *testing.T) {
		products := []*Product{testProduct(t, "1", 999)} // 9.99

		entries, err := r.Percentage(products, 5) // 10.4895 -> 10.49
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "10.49", entries[0].NewPrice.String())
	})

	t.Run("minus one hundred percent floors at zero", func(t *testing.T) {
		products := []*Product{testProduct(t, "1", 10000)}

		entries, err := r.Percentage(products, -100)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, entries[0].NewPrice.IsZero())
	})

	t.Run("below minus one hundred clamps, not rejects", func(t *testing.T) {
		products := []*Product{testProduct(t, "1", 10000)}

		entries, err := r.Percentage(products, -250)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, entries[0].NewPrice.IsZero())
	})

	t.Run("zero percent yields no entries", func(t *testing.T) {
		products := []*Product{testProduct(t, "1", 10000)}

		entries, err := r.Percentage(products, 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("zero-priced product unchanged by negative percent", func(t *testing.T) {
		products := []*Product{testProduct(t, "1", 0)}

		entries, err := r.Percentage(products, -50)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("NaN percent rejected", func(t *testing.T) {
		_, err := r.Percentage(nil, math.NaN())
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("infinite percent rejected", func(t *testing.T) {
		_, err := r.Percentage(nil, math.Inf(-1))
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestRepricer_Discount(t *testing.T) {
	r := NewRepricer()

	t.Run("flat discount applies to every product", func(t *testing.T) {
		products := []*Product{
			testProduct(t, "1", 10000),
			testProduct(t, "2", 5000),
		}

		entries, err := r.Discount(products, 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "90.00", entries[0].NewPrice.String())
		assert.Equal(t, "40.00", entries[1].NewPrice.String())
	})

	t.Run("discount larger than price clamps to zero", func(t *testing.T) {
		products := []*Product{testProduct(t, "1", 2000)} // 20.00

		entries, err := r.Discount(products, 50)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "20.00", entries[0].OldPrice.String())
		assert.Equal(t, "0.00", entries[0].NewPrice.String())
	})

	t.Run("zero discount yields no entries", func(t *testing.T) {
		products := []*Product{testProduct(t, "1", 10000)}

		entries, err := r.Discount(products, 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := r.Discount(nil, -5)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("NaN amount rejected", func(t *testing.T) {
		_, err := r.Discount(nil, math.NaN())
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestRepricer_Reset(t *testing.T) {
	r := NewRepricer()

	t.Run("drifted products return to baseline", func(t *testing.T) {
		p := testProduct(t, "1", 10000)
		newPrice, _ := NewMoney(12345, 100)
		require.NoError(t, p.SetCurrentPrice(newPrice))

		entries := r.Reset([]*Product{p})
		require.Len(t, entries, 1)
		assert.Equal(t, "123.45", entries[0].OldPrice.String())
		assert.Equal(t, "100.00", entries[0].NewPrice.String())
	})

	t.Run("products at baseline produce no entries", func(t *testing.T) {
		entries := r.Reset([]*Product{testProduct(t, "1", 10000)})
		assert.Empty(t, entries)
	})

	t.Run("reset after repeated mutations restores original baseline", func(t *testing.T) {
		p := testProduct(t, "1", 10000)
		for _, num := range []int64{11000, 9900, 10450} {
			price, _ := NewMoney(num, 100)
			require.NoError(t, p.SetCurrentPrice(price))
		}

		entries := r.Reset([]*Product{p})
		require.Len(t, entries, 1)
		assert.Equal(t, "100.00", entries[0].NewPrice.String())
	})
}
