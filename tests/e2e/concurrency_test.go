package e2e

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/tests/testutil"
)

// Concurrent bulk operations must serialize: every batch sees the prices
// the previous batch committed, and undoing them all restores the
// original price exactly.
func TestConcurrentApplyThenFullUndo(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	p1 := testutil.InsertTestProduct(t, services.Client, "First", 10000)

	const workers = 5
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = services.ApplyPercentage.Execute(ctx, 10)
		}(n)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	testutil.AssertRowCount(t, services.Client, "price_batches", workers)

	for n := 0; n < workers; n++ {
		reverted, err := services.UndoLast.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, reverted)
	}

	assert.Equal(t, int64(10000), testutil.ReadPriceCents(t, services.Client, p1))
	testutil.AssertRowCount(t, services.Client, "price_batches", 0)
}
