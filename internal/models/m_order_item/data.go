package m_order_item

import "cloud.google.com/go/spanner"

// Field name constants for the order_items table.
const (
	TableName = "order_items"

	OrderID          = "order_id"
	ItemID           = "item_id"
	ProductID        = "product_id"
	Quantity         = "quantity"
	PriceNumerator   = "price_numerator"
	PriceDenominator = "price_denominator"
)

// Data represents one line item within an order. The price columns hold the
// product price at order time, not the current catalog price.
type Data struct {
	OrderID          string `spanner:"order_id"`
	ItemID           string `spanner:"item_id"`
	ProductID        string `spanner:"product_id"`
	Quantity         int64  `spanner:"quantity"`
	PriceNumerator   int64  `spanner:"price_numerator"`
	PriceDenominator int64  `spanner:"price_denominator"`
}

// Model provides type-safe database operations for order items.
type Model struct{}

// NewModel creates a new order item model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting an order item.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}

// ReadColumns returns the column names for reading order items.
func (m *Model) ReadColumns() []string {
	return []string{OrderID, ItemID, ProductID, Quantity, PriceNumerator, PriceDenominator}
}
