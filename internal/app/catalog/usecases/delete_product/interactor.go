// Package delete_product implements product deletion.
package delete_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/committer"
)

// Interactor handles the delete product use case.
type Interactor struct {
	catalog   contracts.CatalogRepository
	committer contracts.Committer
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(catalog contracts.CatalogRepository, comm contracts.Committer) *Interactor {
	return &Interactor{catalog: catalog, committer: comm}
}

// Execute removes the product. Ledger entries referencing the product are
// kept; history rows resolve missing products to an empty name on read.
func (i *Interactor) Execute(ctx context.Context, productID string) error {
	if _, err := i.catalog.GetByID(ctx, productID); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.catalog.DeleteMut(productID))
	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, err)
	}
	return nil
}
