package m_price_batch

// Field name constants for the price_batches table.
const (
	TableName = "price_batches"

	BatchID   = "batch_id"
	Kind      = "kind"
	Parameter = "parameter"
	CreatedAt = "created_at"
)
