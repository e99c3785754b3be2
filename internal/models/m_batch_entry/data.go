package m_batch_entry

import "cloud.google.com/go/spanner"

// Field name constants for the batch_entries table.
const (
	TableName = "batch_entries"

	BatchID             = "batch_id"
	Seq                 = "seq"
	ProductID           = "product_id"
	OldPriceNumerator   = "old_price_numerator"
	OldPriceDenominator = "old_price_denominator"
	NewPriceNumerator   = "new_price_numerator"
	NewPriceDenominator = "new_price_denominator"
)

// Data represents one per-product change row within a batch. Seq preserves
// the catalog iteration order at application time.
type Data struct {
	BatchID             string `spanner:"batch_id"`
	Seq                 int64  `spanner:"seq"`
	ProductID           string `spanner:"product_id"`
	OldPriceNumerator   int64  `spanner:"old_price_numerator"`
	OldPriceDenominator int64  `spanner:"old_price_denominator"`
	NewPriceNumerator   int64  `spanner:"new_price_numerator"`
	NewPriceDenominator int64  `spanner:"new_price_denominator"`
}

// Model provides type-safe database operations for batch entries.
type Model struct{}

// NewModel creates a new batch entry model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting an entry row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertStruct(TableName, data)
	return mut
}

// ReadColumns returns the column names for reading entries.
func (m *Model) ReadColumns() []string {
	return []string{
		BatchID,
		Seq,
		ProductID,
		OldPriceNumerator,
		OldPriceDenominator,
		NewPriceNumerator,
		NewPriceDenominator,
	}
}
