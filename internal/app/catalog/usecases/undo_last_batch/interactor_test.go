package undo_last_batch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/tests/testutil"
)

func money(t *testing.T, v float64) *domain.Money {
	t.Helper()
	m, err := domain.NewMoneyFromFloat(v)
	require.NoError(t, err)
	return m.Round2()
}

func percentageBatch(t *testing.T, id string, entries []domain.PriceChangeEntry) *domain.PriceChangeBatch {
	t.Helper()
	param := 10.0
	return domain.NewPriceChangeBatch(id, domain.KindPercentage, &param,
		time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), entries)
}

func TestUndoLastBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("restores old prices and drops the batch in one plan", func(t *testing.T) {
		batch := percentageBatch(t, "b1", []domain.PriceChangeEntry{
			{ProductID: "p1", OldPrice: money(t, 100.00), NewPrice: money(t, 110.00)},
			{ProductID: "p2", OldPrice: money(t, 50.00), NewPrice: money(t, 55.00)},
		})
		catalog := &testutil.FakeCatalog{}
		ledger := &testutil.FakeLedger{Batches: []*domain.PriceChangeBatch{batch}}
		comm := &testutil.FakeCommitter{}

		count, err := NewInteractor(catalog, ledger, comm, &sync.Mutex{}).Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		require.Len(t, catalog.PriceWrites, 2)
		assert.Equal(t, "100.00", catalog.PriceWrites[0].Price.String())
		assert.Equal(t, "50.00", catalog.PriceWrites[1].Price.String())
		assert.Equal(t, []string{"b1"}, ledger.Deleted)

		// Two price restores plus the batch delete travel together.
		require.Len(t, comm.Plans, 1)
		assert.Equal(t, 3, comm.Plans[0].Count())
	})

	t.Run("empty ledger fails with empty history", func(t *testing.T) {
		catalog := &testutil.FakeCatalog{}
		ledger := &testutil.FakeLedger{}
		comm := &testutil.FakeCommitter{}

		count, err := NewInteractor(catalog, ledger, comm, &sync.Mutex{}).Execute(ctx)
		assert.ErrorIs(t, err, domain.ErrEmptyHistory)
		assert.Zero(t, count)
		assert.Empty(t, catalog.PriceWrites)
		assert.Empty(t, comm.Plans)
	})

	t.Run("second undo after consuming the only batch fails", func(t *testing.T) {
		batch := percentageBatch(t, "b1", []domain.PriceChangeEntry{
			{ProductID: "p1", OldPrice: money(t, 100.00), NewPrice: money(t, 110.00)},
		})
		catalog := &testutil.FakeCatalog{}
		ledger := &testutil.FakeLedger{Batches: []*domain.PriceChangeBatch{batch}}
		comm := &testutil.FakeCommitter{}
		comm.OnApply = func() { ledger.Batches = ledger.Batches[:len(ledger.Batches)-1] }

		interactor := NewInteractor(catalog, ledger, comm, &sync.Mutex{})

		count, err := interactor.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		_, err = interactor.Execute(ctx)
		assert.ErrorIs(t, err, domain.ErrEmptyHistory)
	})

	t.Run("commit failure leaves the ledger untouched", func(t *testing.T) {
		batch := percentageBatch(t, "b1", []domain.PriceChangeEntry{
			{ProductID: "p1", OldPrice: money(t, 100.00), NewPrice: money(t, 110.00)},
		})
		catalog := &testutil.FakeCatalog{}
		ledger := &testutil.FakeLedger{Batches: []*domain.PriceChangeBatch{batch}}
		comm := &testutil.FakeCommitter{Err: errors.New("unavailable")}

		_, err := NewInteractor(catalog, ledger, comm, &sync.Mutex{}).Execute(ctx)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.Len(t, ledger.Batches, 1)
		assert.Empty(t, comm.Plans)
	})
}
