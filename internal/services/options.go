// Package services wires the application dependency graph.
package services

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	catalogqueries_categories "github.com/light-bringer/backoffice-service/internal/app/catalog/queries/list_categories"
	catalogqueries_products "github.com/light-bringer/backoffice-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/queries/recent_entries"
	catalogrepo "github.com/light-bringer/backoffice-service/internal/app/catalog/repo"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/apply_discount"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/apply_percentage"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/create_category"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/reset_prices"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/undo_last_batch"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/update_product"
	dashboardrepo "github.com/light-bringer/backoffice-service/internal/app/dashboard/repo"
	ordersrepo "github.com/light-bringer/backoffice-service/internal/app/orders/repo"
	"github.com/light-bringer/backoffice-service/internal/app/orders/usecases/update_status"
	reportsrepo "github.com/light-bringer/backoffice-service/internal/app/reports/repo"
	"github.com/light-bringer/backoffice-service/internal/infrastructure/config"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
	"github.com/light-bringer/backoffice-service/internal/pkg/committer"
	transport "github.com/light-bringer/backoffice-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Handlers      *transport.Handlers
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, log *zap.Logger) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, cfg.Spanner.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// All bulk pricing operations share one gate so at most one batch is
	// in flight at a time.
	pricingGate := &sync.Mutex{}

	catalogRepo := catalogrepo.NewCatalogRepo(spannerClient, clk)
	ledgerRepo := catalogrepo.NewLedgerRepo(spannerClient)
	catalogReads := catalogrepo.NewReadModel(spannerClient)
	orderRepo := ordersrepo.NewOrdersRepo(spannerClient)
	orderReads := ordersrepo.NewReadModel(spannerClient)
	dashboardReads := dashboardrepo.NewReadModel(spannerClient)
	reportRows := reportsrepo.NewRowSource(spannerClient)

	historyLimit := cfg.Pricing.HistoryLimit

	applyPercentage := apply_percentage.NewInteractor(catalogRepo, ledgerRepo, comm, clk, pricingGate, historyLimit)
	applyDiscount := apply_discount.NewInteractor(catalogRepo, ledgerRepo, comm, clk, pricingGate, historyLimit)
	resetPrices := reset_prices.NewInteractor(catalogRepo, ledgerRepo, comm, clk, pricingGate, historyLimit)
	undoLast := undo_last_batch.NewInteractor(catalogRepo, ledgerRepo, comm, pricingGate)

	createProduct := create_product.NewInteractor(catalogRepo, comm, clk)
	updateProduct := update_product.NewInteractor(catalogRepo, comm)
	deleteProduct := delete_product.NewInteractor(catalogRepo, comm)
	createCategory := create_category.NewInteractor(catalogRepo, comm)
	updateStatus := update_status.NewInteractor(orderRepo, comm)

	listProducts := catalogqueries_products.NewQuery(catalogReads)
	listCategories := catalogqueries_categories.NewQuery(catalogReads)
	priceHistory := recent_entries.NewQuery(ledgerRepo)

	handlers := &transport.Handlers{
		Products:   transport.NewProductsHandler(listProducts, createProduct, updateProduct, deleteProduct),
		Pricing:    transport.NewPricingHandler(applyPercentage, applyDiscount, resetPrices, undoLast, priceHistory),
		Categories: transport.NewCategoriesHandler(listCategories, createCategory),
		Orders:     transport.NewOrdersHandler(orderReads, updateStatus),
		Dashboard:  transport.NewDashboardHandler(dashboardReads, orderReads),
		Reports:    transport.NewReportsHandler(reportRows),
	}

	log.Info("service dependencies wired",
		zap.String("database", cfg.Spanner.DatabasePath()),
		zap.Int("history_limit", historyLimit),
	)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Handlers:      handlers,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
