// Package reset_prices implements the bulk reset to baseline prices.
package reset_prices

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
	"github.com/light-bringer/backoffice-service/internal/pkg/committer"
)

// Interactor restores every drifted product to its baseline price and
// appends one reset batch to the ledger in the same commit.
type Interactor struct {
	catalog      contracts.CatalogRepository
	ledger       contracts.LedgerRepository
	committer    contracts.Committer
	clock        clock.Clock
	repricer     *domain.Repricer
	gate         *sync.Mutex
	historyLimit int
}

// NewInteractor creates a new reset prices interactor.
func NewInteractor(
	catalog contracts.CatalogRepository,
	ledger contracts.LedgerRepository,
	comm contracts.Committer,
	clk clock.Clock,
	gate *sync.Mutex,
	historyLimit int,
) *Interactor {
	return &Interactor{
		catalog:      catalog,
		ledger:       ledger,
		committer:    comm,
		clock:        clk,
		repricer:     domain.NewRepricer(),
		gate:         gate,
		historyLimit: historyLimit,
	}
}

// Execute resets prices and returns the number of products restored.
// A catalog already at baseline is a no-op: no batch is appended, so the
// undo slot still points at the previous bulk change.
func (i *Interactor) Execute(ctx context.Context) (int, error) {
	i.gate.Lock()
	defer i.gate.Unlock()

	products, err := i.catalog.GetAllProducts(ctx)
	if err != nil {
		return 0, err
	}

	entries := i.repricer.Reset(products)
	if len(entries) == 0 {
		return 0, nil
	}

	batch := domain.NewPriceChangeBatch(uuid.New().String(), domain.KindReset, nil, i.clock.Now(), entries)

	plan := committer.NewPlan()
	for _, entry := range batch.Entries() {
		mut, err := i.catalog.UpdatePriceMut(entry.ProductID, entry.NewPrice)
		if err != nil {
			return 0, err
		}
		plan.Add(mut)
	}

	muts, err := i.ledger.InsertMuts(batch)
	if err != nil {
		return 0, err
	}
	plan.AddMultiple(muts)

	stale, err := i.ledger.StaleBatchIDs(ctx, i.historyLimit-1)
	if err != nil {
		return 0, err
	}
	for _, id := range stale {
		plan.Add(i.ledger.DeleteMut(id))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, err)
	}
	return len(entries), nil
}
