// Package apply_percentage implements the bulk percentage price change.
package apply_percentage

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

// Interactor applies a percentage change to every catalog price and appends
// one batch to the ledger, all in a single commit.
type Interactor struct {
	catalog      contracts.CatalogRepository
	ledger       contracts.LedgerRepository
	committer    contracts.Committer
	clock        clock.Clock
	repricer     *domain.Repricer
	gate         *sync.Mutex
	historyLimit int
}

// NewInteractor creates a new apply percentage interactor. The gate is
// shared with the other bulk pricing operations; holding it is what keeps
// two bulk operations, or a bulk operation and an undo, from interleaving.
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

// Execute applies the percentage change and returns the number of products
// whose price changed. When nothing changes, no batch is appended and the
// undo slot is not consumed.
func (i *Interactor) Execute(ctx context.Context, percent float64) (int, error) {
	i.gate.Lock()
	defer i.gate.Unlock()

	products, err := i.catalog.GetAllProducts(ctx)
	if err != nil {
		return 0, err
	}

	entries, err := i.repricer.Percentage(products, percent)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	param := percent
	batch := domain.NewPriceChangeBatch(uuid.New().String(), domain.KindPercentage, &param, i.clock.Now(), entries)

	// One plan carries the price updates, the ledger append, and retention
	// pruning, so none of them can land without the others.
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
