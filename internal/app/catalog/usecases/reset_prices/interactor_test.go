package reset_prices

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
	"github.com/light-bringer/backoffice-service/tests/testutil"
)

func driftedProduct(t *testing.T, id string, baseline, current float64) *domain.Product {
	t.Helper()
	b, err := domain.NewMoneyFromFloat(baseline)
	require.NoError(t, err)
	p, err := domain.NewProduct(id, "Product "+id, "", "", b, 10, "", time.Now().UTC())
	require.NoError(t, err)
	if current != baseline {
		cur, err := domain.NewMoneyFromFloat(current)
		require.NoError(t, err)
		require.NoError(t, p.SetCurrentPrice(cur))
	}
	return p
}

func newTestInteractor(catalog *testutil.FakeCatalog, ledger *testutil.FakeLedger, comm *testutil.FakeCommitter) *Interactor {
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewInteractor(catalog, ledger, comm, clk, &sync.Mutex{}, 50)
}

func TestResetPrices(t *testing.T) {
	ctx := context.Background()

	t.Run("restores drifted products to baseline", func(t *testing.T) {
		catalog := &testutil.FakeCatalog{Products: []*domain.Product{
			driftedProduct(t, "p1", 100.00, 110.00),
			driftedProduct(t, "p2", 50.00, 50.00),
			driftedProduct(t, "p3", 30.00, 0.00),
		}}
		ledger := &testutil.FakeLedger{}
		comm := &testutil.FakeCommitter{}

		count, err := newTestInteractor(catalog, ledger, comm).Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		require.Len(t, catalog.PriceWrites, 2)
		assert.Equal(t, "p1", catalog.PriceWrites[0].ProductID)
		assert.Equal(t, "100.00", catalog.PriceWrites[0].Price.String())
		assert.Equal(t, "p3", catalog.PriceWrites[1].ProductID)
		assert.Equal(t, "30.00", catalog.PriceWrites[1].Price.String())

		require.Len(t, ledger.Inserted, 1)
		batch := ledger.Inserted[0]
		assert.Equal(t, domain.KindReset, batch.Kind())
		assert.Nil(t, batch.Parameter())
	})

	t.Run("everything at baseline is a no-op without a batch", func(t *testing.T) {
		catalog := &testutil.FakeCatalog{Products: []*domain.Product{
			driftedProduct(t, "p1", 100.00, 100.00),
		}}
		ledger := &testutil.FakeLedger{}
		comm := &testutil.FakeCommitter{}

		count, err := newTestInteractor(catalog, ledger, comm).Execute(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Empty(t, ledger.Inserted)
		assert.Empty(t, comm.Plans)
	})

	t.Run("empty catalog is a no-op", func(t *testing.T) {
		catalog := &testutil.FakeCatalog{}
		ledger := &testutil.FakeLedger{}
		comm := &testutil.FakeCommitter{}

		count, err := newTestInteractor(catalog, ledger, comm).Execute(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Empty(t, comm.Plans)
	})
}
