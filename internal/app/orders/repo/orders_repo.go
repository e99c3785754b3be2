// Package repo implements the order persistence interfaces against Spanner.
package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/backoffice-service/internal/app/orders/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/orders/domain"
	"github.com/light-bringer/backoffice-service/internal/models/m_order"
)

// OrdersRepo implements contracts.OrderRepository backed by Spanner.
type OrdersRepo struct {
	client     *spanner.Client
	orderModel *m_order.Model
}

// NewOrdersRepo creates a new OrdersRepo.
func NewOrdersRepo(client *spanner.Client) contracts.OrderRepository {
	return &OrdersRepo{
		client:     client,
		orderModel: m_order.NewModel(),
	}
}

// Exists reads the order key row.
func (r *OrdersRepo) Exists(ctx context.Context, orderID string) error {
	_, err := r.client.Single().ReadRow(ctx, m_order.TableName, spanner.Key{orderID}, []string{m_order.OrderID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("%w: failed to read order: %s", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// UpdateStatusMut creates a mutation writing only the order status.
func (r *OrdersRepo) UpdateStatusMut(orderID string, status domain.Status) *spanner.Mutation {
	return r.orderModel.UpdateStatusMut(orderID, status.String())
}
