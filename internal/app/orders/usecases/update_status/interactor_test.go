package update_status

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/orders/domain"
	"github.com/light-bringer/backoffice-service/tests/testutil"
)

type fakeOrders struct {
	existing map[string]bool
	updates  []string
}

func (f *fakeOrders) Exists(ctx context.Context, orderID string) error {
	if f.existing[orderID] {
		return nil
	}
	return domain.ErrOrderNotFound
}

func (f *fakeOrders) UpdateStatusMut(orderID string, status domain.Status) *spanner.Mutation {
	f.updates = append(f.updates, orderID+":"+status.String())
	return spanner.Delete("noop", spanner.Key{"noop"})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("moves order to a valid status", func(t *testing.T) {
		orders := &fakeOrders{existing: map[string]bool{"o1": true}}
		comm := &testutil.FakeCommitter{}

		err := NewInteractor(orders, comm).Execute(ctx, "o1", "shipped")
		require.NoError(t, err)
		assert.Equal(t, []string{"o1:shipped"}, orders.updates)
		require.Len(t, comm.Plans, 1)
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		orders := &fakeOrders{existing: map[string]bool{"o1": true}}
		comm := &testutil.FakeCommitter{}
		interactor := NewInteractor(orders, comm)

		for _, status := range []string{"", "cancelled", "SHIPPED"} {
			err := interactor.Execute(ctx, "o1", status)
			assert.ErrorIs(t, err, domain.ErrInvalidStatus)
		}
		assert.Empty(t, comm.Plans)
	})

	t.Run("unknown order fails with not found", func(t *testing.T) {
		orders := &fakeOrders{}
		comm := &testutil.FakeCommitter{}

		err := NewInteractor(orders, comm).Execute(ctx, "missing", "paid")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.Empty(t, comm.Plans)
	})
}
