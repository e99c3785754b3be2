// Package update_status implements order status transitions.
package update_status

import (
	"context"
	"fmt"

	"github.com/light-bringer/backoffice-service/internal/app/orders/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/orders/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/committer"
)

// Interactor handles the update order status use case.
type Interactor struct {
	orders    contracts.OrderRepository
	committer contracts.Committer
}

// NewInteractor creates a new update status interactor.
func NewInteractor(orders contracts.OrderRepository, comm contracts.Committer) *Interactor {
	return &Interactor{orders: orders, committer: comm}
}

// Execute moves the order to the given status. Any valid status is
// accepted regardless of the current one; transitions are not restricted.
func (i *Interactor) Execute(ctx context.Context, orderID, rawStatus string) error {
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return err
	}

	if err := i.orders.Exists(ctx, orderID); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.orders.UpdateStatusMut(orderID, status))
	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, err)
	}
	return nil
}
