// Package update_product implements partial product updates.
package update_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/committer"
)

// Request carries the fields to change. Nil fields are left untouched.
type Request struct {
	ProductID   string
	Name        *string
	Description *string
	CategoryID  *string
	Price       *float64
	Stock       *int64
	ImageURL    *string
}

// Interactor handles the update product use case.
type Interactor struct {
	catalog   contracts.CatalogRepository
	committer contracts.Committer
}

// NewInteractor creates a new update product interactor.
func NewInteractor(catalog contracts.CatalogRepository, comm contracts.Committer) *Interactor {
	return &Interactor{catalog: catalog, committer: comm}
}

// Execute applies the requested field changes. A price change through this
// path moves only the current price; the baseline stays fixed.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	product, err := i.catalog.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		if err := product.SetName(*req.Name); err != nil {
			return err
		}
	}
	if req.Description != nil {
		product.SetDescription(*req.Description)
	}
	if req.CategoryID != nil {
		product.SetCategoryID(*req.CategoryID)
	}
	if req.Price != nil {
		price, err := domain.NewMoneyFromFloat(*req.Price)
		if err != nil {
			return err
		}
		if err := product.SetCurrentPrice(price); err != nil {
			return err
		}
	}
	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return err
		}
	}
	if req.ImageURL != nil {
		product.SetImageURL(*req.ImageURL)
	}

	mut, err := i.catalog.UpdateMut(product)
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(mut)
	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, err)
	}
	return nil
}
