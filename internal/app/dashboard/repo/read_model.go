// Package repo implements the dashboard queries against Spanner.
package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/backoffice-service/internal/app/dashboard/contracts"
	"github.com/light-bringer/backoffice-service/internal/models/m_order"
	"github.com/light-bringer/backoffice-service/internal/models/m_product"
	"github.com/light-bringer/backoffice-service/internal/models/m_user"
)

// ReadModel implements contracts.ReadModel backed by Spanner.
type ReadModel struct {
	client *spanner.Client
}

// NewReadModel creates a new dashboard ReadModel.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModel{client: client}
}

// Stats gathers the headline counters in one query round trip per figure.
func (rm *ReadModel) Stats(ctx context.Context) (*contracts.StatsDTO, error) {
	stats := &contracts.StatsDTO{}

	var err error
	if stats.TotalProducts, err = rm.count(ctx, spanner.Statement{
		SQL: fmt.Sprintf("SELECT COUNT(*) FROM %s", m_product.TableName),
	}); err != nil {
		return nil, err
	}

	if stats.TotalOrders, err = rm.count(ctx, spanner.Statement{
		SQL: fmt.Sprintf("SELECT COUNT(*) FROM %s", m_order.TableName),
	}); err != nil {
		return nil, err
	}

	if stats.TotalCustomers, err = rm.count(ctx, spanner.Statement{
		SQL:    fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = @role", m_user.TableName, m_user.Role),
		Params: map[string]interface{}{"role": "customer"},
	}); err != nil {
		return nil, err
	}

	revenue, err := rm.revenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = revenue

	return stats, nil
}

func (rm *ReadModel) count(ctx context.Context, stmt spanner.Statement) (int64, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to query dashboard counter: %w", err)
	}
	var total int64
	if err := row.Columns(&total); err != nil {
		return 0, fmt.Errorf("failed to parse counter row: %w", err)
	}
	return total, nil
}

// revenue sums order totals for paid, shipped and delivered orders. The
// division happens per row so mixed denominators add up correctly.
func (rm *ReadModel) revenue(ctx context.Context) (float64, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`
			SELECT COALESCE(SUM(%s / %s), 0)
			FROM %s
			WHERE %s IN UNNEST(@statuses)
		`, m_order.TotalNumerator, m_order.TotalDenominator,
			m_order.TableName, m_order.Status),
		Params: map[string]interface{}{
			"statuses": []string{"paid", "shipped", "delivered"},
		},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to query revenue: %w", err)
	}
	var revenue float64
	if err := row.Columns(&revenue); err != nil {
		return 0, fmt.Errorf("failed to parse revenue row: %w", err)
	}
	return revenue, nil
}
