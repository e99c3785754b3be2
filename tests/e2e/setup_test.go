package e2e

import (
	"sync"
	"testing"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/queries/recent_entries"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/repo"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/apply_discount"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/apply_percentage"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/reset_prices"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/undo_last_batch"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
	"github.com/light-bringer/backoffice-service/internal/pkg/committer"
	"github.com/light-bringer/backoffice-service/tests/testutil"
)

const testHistoryLimit = 5

// Services holds the pricing use cases wired against the emulator.
type Services struct {
	ApplyPercentage *apply_percentage.Interactor
	ApplyDiscount   *apply_discount.Interactor
	ResetPrices     *reset_prices.Interactor
	UndoLast        *undo_last_batch.Interactor
	PriceHistory    *recent_entries.Query

	Catalog contracts.CatalogRepository
	Ledger  contracts.LedgerRepository
	Client  *spanner.Client
}

// setupTest initializes all dependencies for the emulator suite.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(client)
	gate := &sync.Mutex{}

	catalogRepo := repo.NewCatalogRepo(client, clk)
	ledgerRepo := repo.NewLedgerRepo(client)

	return &Services{
		ApplyPercentage: apply_percentage.NewInteractor(catalogRepo, ledgerRepo, comm, clk, gate, testHistoryLimit),
		ApplyDiscount:   apply_discount.NewInteractor(catalogRepo, ledgerRepo, comm, clk, gate, testHistoryLimit),
		ResetPrices:     reset_prices.NewInteractor(catalogRepo, ledgerRepo, comm, clk, gate, testHistoryLimit),
		UndoLast:        undo_last_batch.NewInteractor(catalogRepo, ledgerRepo, comm, gate),
		PriceHistory:    recent_entries.NewQuery(ledgerRepo),
		Catalog:         catalogRepo,
		Ledger:          ledgerRepo,
		Client:          client,
	}, cleanup
}
