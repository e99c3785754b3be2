// Package undo_last_batch implements single-level undo of the most recent
// bulk price change.
package undo_last_batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/committer"
)

// Interactor reverses the most recent ledger batch. The price restores and
// the batch removal travel in one commit, so the ledger and the catalog
// cannot diverge: a failed commit leaves both exactly as they were, and a
// successful one removes the batch and restores every price together.
// Undo is not itself undoable.
type Interactor struct {
	catalog   contracts.CatalogRepository
	ledger    contracts.LedgerRepository
	committer contracts.Committer
	gate      *sync.Mutex
}

// NewInteractor creates a new undo interactor. The gate is the same mutex
// the bulk mutation interactors hold.
func NewInteractor(
	catalog contracts.CatalogRepository,
	ledger contracts.LedgerRepository,
	comm contracts.Committer,
	gate *sync.Mutex,
) *Interactor {
	return &Interactor{
		catalog:   catalog,
		ledger:    ledger,
		committer: comm,
		gate:      gate,
	}
}

// Execute reverses the most recent batch and returns the number of products
// restored. With an empty ledger it fails with domain.ErrEmptyHistory and
// touches nothing.
func (i *Interactor) Execute(ctx context.Context) (int, error) {
	i.gate.Lock()
	defer i.gate.Unlock()

	batch, err := i.ledger.PeekLast(ctx)
	if err != nil {
		return 0, err
	}

	plan := committer.NewPlan()
	for _, entry := range batch.Entries() {
		mut, err := i.catalog.UpdatePriceMut(entry.ProductID, entry.OldPrice)
		if err != nil {
			return 0, err
		}
		plan.Add(mut)
	}
	plan.Add(i.ledger.DeleteMut(batch.ID()))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, err)
	}
	return batch.Size(), nil
}
