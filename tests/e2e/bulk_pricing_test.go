package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/tests/testutil"
)

func TestApplyPercentageEndToEnd(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	p1 := testutil.InsertTestProduct(t, services.Client, "First", 10000)
	p2 := testutil.InsertTestProduct(t, services.Client, "Second", 5000)

	count, err := services.ApplyPercentage.Execute(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, int64(11000), testutil.ReadPriceCents(t, services.Client, p1))
	assert.Equal(t, int64(5500), testutil.ReadPriceCents(t, services.Client, p2))
	testutil.AssertRowCount(t, services.Client, "price_batches", 1)
	testutil.AssertRowCount(t, services.Client, "batch_entries", 2)
}

func TestApplyThenUndoRoundTrip(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	p1 := testutil.InsertTestProduct(t, services.Client, "First", 999)

	count, err := services.ApplyPercentage.Execute(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, int64(1049), testutil.ReadPriceCents(t, services.Client, p1))

	reverted, err := services.UndoLast.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reverted)

	assert.Equal(t, int64(999), testutil.ReadPriceCents(t, services.Client, p1))
	testutil.AssertRowCount(t, services.Client, "price_batches", 0)
	testutil.AssertRowCount(t, services.Client, "batch_entries", 0)

	_, err = services.UndoLast.Execute(ctx)
	assert.ErrorIs(t, err, domain.ErrEmptyHistory)
}

func TestDiscountFloorsAtZero(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	p1 := testutil.InsertTestProduct(t, services.Client, "Cheap", 2000)

	count, err := services.ApplyDiscount.Execute(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, int64(0), testutil.ReadPriceCents(t, services.Client, p1))

	reverted, err := services.UndoLast.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reverted)
	assert.Equal(t, int64(2000), testutil.ReadPriceCents(t, services.Client, p1))
}

func TestResetRestoresBaseline(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	p1 := testutil.InsertTestProduct(t, services.Client, "First", 10000)

	_, err := services.ApplyPercentage.Execute(ctx, 25)
	require.NoError(t, err)
	_, err = services.ApplyDiscount.Execute(ctx, 10)
	require.NoError(t, err)

	count, err := services.ResetPrices.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, int64(10000), testutil.ReadPriceCents(t, services.Client, p1))

	// Reset with everything at baseline appends nothing.
	count, err = services.ResetPrices.Execute(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	testutil.AssertRowCount(t, services.Client, "price_batches", 3)
}

func TestRetentionPrunesOldBatches(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	testutil.InsertTestProduct(t, services.Client, "First", 10000)

	// testHistoryLimit is 5; the sixth append prunes the oldest.
	for n := 0; n < 6; n++ {
		_, err := services.ApplyPercentage.Execute(ctx, 1)
		require.NoError(t, err)
	}

	testutil.AssertRowCount(t, services.Client, "price_batches", 5)
	testutil.AssertRowCount(t, services.Client, "batch_entries", 5)
}

func TestPriceHistoryOrder(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	testutil.InsertTestProduct(t, services.Client, "First", 10000)

	_, err := services.ApplyPercentage.Execute(ctx, 10)
	require.NoError(t, err)
	_, err = services.ApplyDiscount.Execute(ctx, 5)
	require.NoError(t, err)

	records, err := services.PriceHistory.Execute(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.KindDiscount, records[0].Kind)
	assert.Equal(t, domain.KindPercentage, records[1].Kind)
	assert.Equal(t, "First", records[0].ProductName)
}
