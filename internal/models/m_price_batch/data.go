package m_price_batch

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a price batch row. Entries live in the interleaved
// batch_entries table and are deleted with their parent batch.
type Data struct {
	BatchID   string              `spanner:"batch_id"`
	Kind      string              `spanner:"kind"`
	Parameter spanner.NullFloat64 `spanner:"parameter"`
	CreatedAt time.Time           `spanner:"created_at"`
}

// Model provides type-safe database operations for price batches.
type Model struct{}

// NewModel creates a new price batch model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a batch row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertStruct(TableName, data)
	return mut
}

// DeleteMut creates a mutation deleting a batch row and, through
// interleaving, its entries.
func (m *Model) DeleteMut(batchID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{batchID})
}

// ReadColumns returns the column names for reading batches.
func (m *Model) ReadColumns() []string {
	return []string{BatchID, Kind, Parameter, CreatedAt}
}
