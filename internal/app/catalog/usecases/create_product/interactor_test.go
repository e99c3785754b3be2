package create_product

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
	"github.com/light-bringer/backoffice-service/tests/testutil"
)

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	t.Run("creates product with baseline seeded from price", func(t *testing.T) {
		catalog := &testutil.FakeCatalog{}
		comm := &testutil.FakeCommitter{}

		id, err := NewInteractor(catalog, comm, clk).Execute(ctx, &Request{
			Name:  "Widget",
			Price: 19.99,
			Stock: 5,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		require.Len(t, catalog.Inserted, 1)
		p := catalog.Inserted[0]
		assert.Equal(t, "19.99", p.CurrentPrice().String())
		assert.Equal(t, "19.99", p.BaselinePrice().String())
		require.Len(t, comm.Plans, 1)
		assert.Equal(t, 1, comm.Plans[0].Count())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		catalog := &testutil.FakeCatalog{}
		comm := &testutil.FakeCommitter{}

		_, err := NewInteractor(catalog, comm, clk).Execute(ctx, &Request{Price: 10})
		assert.ErrorIs(t, err, domain.ErrEmptyName)
		assert.Empty(t, comm.Plans)
	})

	t.Run("rejects invalid prices", func(t *testing.T) {
		catalog := &testutil.FakeCatalog{}
		comm := &testutil.FakeCommitter{}
		interactor := NewInteractor(catalog, comm, clk)

		_, err := interactor.Execute(ctx, &Request{Name: "Widget", Price: math.NaN()})
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)

		_, err = interactor.Execute(ctx, &Request{Name: "Widget", Price: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	})
}
