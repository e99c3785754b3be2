// Package contracts defines the interfaces the order use cases depend on.
package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/backoffice-service/internal/app/orders/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/committer"
)

// OrderRepository defines the write-side interface for orders. Mutations are
// returned unapplied and collected into a commit plan.
type OrderRepository interface {
	// Exists reports whether the order is present, returning
	// domain.ErrOrderNotFound when it is not.
	Exists(ctx context.Context, orderID string) error

	// UpdateStatusMut creates a mutation writing only the order status.
	UpdateStatusMut(orderID string, status domain.Status) *spanner.Mutation
}

// Committer applies a commit plan in a single transaction.
type Committer interface {
	Apply(ctx context.Context, plan *committer.CommitPlan) error
}

// OrderDTO is a data transfer object for order queries. The user email is
// resolved by join; orders whose user is gone carry an empty email.
type OrderDTO struct {
	OrderID   string
	UserID    string
	UserEmail string
	Total     float64
	Status    string
	CreatedAt time.Time
}

// ListFilter defines pagination and search options for listing orders.
type ListFilter struct {
	Search  string
	Status  string
	Page    int
	PerPage int
}

// ListResult contains one page of orders plus the unpaged total.
type ListResult struct {
	Orders []*OrderDTO
	Total  int64
}

// HourActivity counts orders created within one hour of the day.
type HourActivity struct {
	Hour  int64
	Count int64
}

// ReadModel defines the read-only query interface for orders.
type ReadModel interface {
	// ListOrders retrieves a page of orders with filtering.
	ListOrders(ctx context.Context, filter *ListFilter) (*ListResult, error)

	// LastOrders retrieves the most recent orders, newest first.
	LastOrders(ctx context.Context, limit int) ([]*OrderDTO, error)

	// ActiveTimes aggregates order counts by hour of day.
	ActiveTimes(ctx context.Context) ([]*HourActivity, error)
}
