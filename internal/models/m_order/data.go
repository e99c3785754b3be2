package m_order

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Field name constants for the orders table.
const (
	TableName = "orders"

	OrderID          = "order_id"
	UserID           = "user_id"
	TotalNumerator   = "total_numerator"
	TotalDenominator = "total_denominator"
	Status           = "status"
	CreatedAt        = "created_at"
)

// Data represents the database model for the orders table.
type Data struct {
	OrderID          string    `spanner:"order_id"`
	UserID           string    `spanner:"user_id"`
	TotalNumerator   int64     `spanner:"total_numerator"`
	TotalDenominator int64     `spanner:"total_denominator"`
	Status           string    `spanner:"status"`
	CreatedAt        time.Time `spanner:"created_at"`
}

// Model provides type-safe database operations for orders.
type Model struct{}

// NewModel creates a new order model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting an order.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}

// UpdateStatusMut creates a mutation writing only the order status.
func (m *Model) UpdateStatusMut(orderID, status string) *spanner.Mutation {
	return spanner.Update(TableName, []string{OrderID, Status}, []interface{}{orderID, status})
}

// ReadColumns returns the column names for reading orders.
func (m *Model) ReadColumns() []string {
	return []string{OrderID, UserID, TotalNumerator, TotalDenominator, Status, CreatedAt}
}
