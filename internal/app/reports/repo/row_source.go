// Package repo fetches report rows from Spanner.
package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/backoffice-service/internal/app/reports/contracts"
)

// RowSource implements contracts.RowSource backed by Spanner.
type RowSource struct {
	client *spanner.Client
}

// NewRowSource creates a new report RowSource.
func NewRowSource(client *spanner.Client) contracts.RowSource {
	return &RowSource{client: client}
}

// ProductRows fetches every product with its category name resolved.
func (s *RowSource) ProductRows(ctx context.Context) ([]*contracts.ProductRow, error) {
	stmt := spanner.Statement{
		SQL: `
			SELECT p.product_id, p.name, COALESCE(c.name, '') AS category,
			       p.price_numerator, p.price_denominator, p.stock, p.created_at
			FROM products p
			LEFT JOIN categories c ON c.category_id = p.category_id
			ORDER BY p.product_id
		`,
	}

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var rows []*contracts.ProductRow
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch product report rows: %w", err)
		}

		var (
			id, name, category string
			num, den, stock    int64
			createdAt          time.Time
		)
		if err := row.Columns(&id, &name, &category, &num, &den, &stock, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse product report row: %w", err)
		}

		price := 0.0
		if den != 0 {
			price = float64(num) / float64(den)
		}
		rows = append(rows, &contracts.ProductRow{
			ProductID: id,
			Name:      name,
			Category:  category,
			Price:     price,
			Stock:     stock,
			CreatedAt: createdAt,
		})
	}
	return rows, nil
}

// OrderRows fetches every order with its line items flattened into one
// summary string per order.
func (s *RowSource) OrderRows(ctx context.Context) ([]*contracts.OrderRow, error) {
	stmt := spanner.Statement{
		SQL: `
			SELECT o.order_id, COALESCE(u.email, '') AS user_email,
			       ARRAY(
			           SELECT COALESCE(p.name, i.product_id) || ' x' || CAST(i.quantity AS STRING)
			           FROM order_items i
			           LEFT JOIN products p ON p.product_id = i.product_id
			           WHERE i.order_id = o.order_id
			           ORDER BY i.item_id
			       ) AS items,
			       o.total_numerator, o.total_denominator, o.status, o.created_at
			FROM orders o
			LEFT JOIN users u ON u.user_id = o.user_id
			ORDER BY o.created_at DESC, o.order_id DESC
		`,
	}

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var rows []*contracts.OrderRow
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch order report rows: %w", err)
		}

		var (
			id, email, status string
			items             []string
			num, den          int64
			createdAt         time.Time
		)
		if err := row.Columns(&id, &email, &items, &num, &den, &status, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse order report row: %w", err)
		}

		total := 0.0
		if den != 0 {
			total = float64(num) / float64(den)
		}
		rows = append(rows, &contracts.OrderRow{
			OrderID:   id,
			UserEmail: email,
			Items:     strings.Join(items, ", "),
			Total:     total,
			Status:    status,
			CreatedAt: createdAt,
		})
	}
	return rows, nil
}
