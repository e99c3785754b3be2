package domain

import "time"

// BatchKind identifies which bulk operation produced a batch.
type BatchKind string

const (
	KindPercentage BatchKind = "percentage"
	KindDiscount   BatchKind = "discount"
	KindReset      BatchKind = "reset"
)

// PriceChangeEntry is one product's before/after prices within a batch.
// Both values are the rounded prices as committed, so reversing an entry
// restores the exact previous price rather than recomputing it.
type PriceChangeEntry struct {
	ProductID string
	OldPrice  *Money
	NewPrice  *Money
}

// PriceChangeBatch is one bulk pricing operation's full set of changes.
// A batch is immutable once created; it lives in the ledger until it is
// consumed by an undo.
type PriceChangeBatch struct {
	id        string
	kind      BatchKind
	parameter *float64 // percent or discount amount; nil for reset
	createdAt time.Time
	entries   []PriceChangeEntry
}

// NewPriceChangeBatch creates a batch. Entries keep the catalog iteration
// order they were computed in.
func NewPriceChangeBatch(id string, kind BatchKind, parameter *float64, createdAt time.Time, entries []PriceChangeEntry) *PriceChangeBatch {
	copied := make([]PriceChangeEntry, len(entries))
	copy(copied, entries)
	return &PriceChangeBatch{
		id:        id,
		kind:      kind,
		parameter: parameter,
		createdAt: createdAt,
		entries:   copied,
	}
}

func (b *PriceChangeBatch) ID() string           { return b.id }
func (b *PriceChangeBatch) Kind() BatchKind      { return b.kind }
func (b *PriceChangeBatch) CreatedAt() time.Time { return b.createdAt }

// Parameter returns the operation parameter, or nil for reset batches.
func (b *PriceChangeBatch) Parameter() *float64 {
	if b.parameter == nil {
		return nil
	}
	v := *b.parameter
	return &v
}

// Entries returns the per-product changes in application order.
func (b *PriceChangeBatch) Entries() []PriceChangeEntry {
	out := make([]PriceChangeEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Size returns the number of products the batch changed.
func (b *PriceChangeBatch) Size() int {
	return len(b.entries)
}
