package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Model provides type-safe mutation builders for the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}

// UpdateMut creates a mutation updating the given product fields.
func (m *Model) UpdateMut(productID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, ProductID)
	values = append(values, productID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// UpdatePriceMut creates a mutation writing only the current price columns.
func (m *Model) UpdatePriceMut(productID string, numerator, denominator int64, updatedAt time.Time) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{ProductID, PriceNumerator, PriceDenominator, UpdatedAt},
		[]interface{}{productID, numerator, denominator, updatedAt},
	)
}

// DeleteMut creates a mutation for deleting a product.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}

// ReadColumns returns the column names for reading products.
func (m *Model) ReadColumns() []string {
	return []string{
		ProductID,
		Name,
		Description,
		CategoryID,
		PriceNumerator,
		PriceDenominator,
		BaselinePriceNumerator,
		BaselinePriceDenominator,
		Stock,
		ImageURL,
		CreatedAt,
		UpdatedAt,
	}
}
