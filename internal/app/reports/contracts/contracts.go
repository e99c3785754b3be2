// Package contracts defines the report row sources.
package contracts

import (
	"context"
	"time"
)

// ProductRow is one line of the product export.
type ProductRow struct {
	ProductID string
	Name      string
	Category  string
	Price     float64
	Stock     int64
	CreatedAt time.Time
}

// OrderRow is one line of the order export. Items is a human readable
// summary such as "Widget x2, Gadget x1".
type OrderRow struct {
	OrderID   string
	UserEmail string
	Items     string
	Total     float64
	Status    string
	CreatedAt time.Time
}

// RowSource fetches the report rows.
type RowSource interface {
	ProductRows(ctx context.Context) ([]*ProductRow, error)
	OrderRows(ctx context.Context) ([]*OrderRow, error)
}
