// Package recent_entries exposes the flattened price history view.
package recent_entries

import (
	"context"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
)

const (
	defaultLimit = 5
	maxLimit     = 50
)

// Query handles the recent price history query use case.
type Query struct {
	ledger contracts.LedgerRepository
}

// NewQuery creates a new recent entries query.
func NewQuery(ledger contracts.LedgerRepository) *Query {
	return &Query{ledger: ledger}
}

// Execute retrieves the most recent price change entries, newest batch
// first, most recently ordered entry first within a batch. An empty
// ledger yields an empty slice, not an error.
func (q *Query) Execute(ctx context.Context, limit int) ([]contracts.LedgerEntryRecord, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return q.ledger.RecentEntries(ctx, limit)
}
