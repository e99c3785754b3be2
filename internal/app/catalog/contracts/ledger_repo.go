package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
)

// LedgerEntryRecord is a flattened price change for the history panel.
type LedgerEntryRecord struct {
	BatchID     string
	Kind        domain.BatchKind
	ProductID   string
	ProductName string
	OldPrice    *domain.Money
	NewPrice    *domain.Money
	ChangedAt   time.Time
}

// LedgerRepository defines the interface for the price change ledger.
// The ledger is append-only except for removal of the most recent batch
// during undo; only the bulk pricing usecases may hold a reference to it.
type LedgerRepository interface {
	// PeekLast returns the most recent batch with its entries, or
	// domain.ErrEmptyHistory when the ledger is empty.
	PeekLast(ctx context.Context) (*domain.PriceChangeBatch, error)

	// InsertMuts creates the mutations appending a batch and its entries.
	// Returns an error if money values exceed int64 storage bounds.
	InsertMuts(batch *domain.PriceChangeBatch) ([]*spanner.Mutation, error)

	// DeleteMut creates the mutation removing a batch. Entry rows are
	// interleaved in the batch row and cascade with it.
	DeleteMut(batchID string) *spanner.Mutation

	// RecentEntries returns up to limit entries across batches,
	// most recent first (read path only).
	RecentEntries(ctx context.Context, limit int) ([]LedgerEntryRecord, error)

	// StaleBatchIDs returns ids of batches beyond the retention bound,
	// oldest first, so appends can prune them in the same commit.
	StaleBatchIDs(ctx context.Context, keep int) ([]string, error)
}
