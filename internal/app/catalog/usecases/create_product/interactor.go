// Package create_product implements product creation.
package create_product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
	"github.com/light-bringer/backoffice-service/internal/pkg/committer"
)

// Request contains the data to create a product.
type Request struct {
	Name        string
	Description string
	CategoryID  string
	Price       float64
	Stock       int64
	ImageURL    string
}

// Interactor handles the create product use case.
type Interactor struct {
	catalog   contracts.CatalogRepository
	committer contracts.Committer
	clock     clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(catalog contracts.CatalogRepository, comm contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{catalog: catalog, committer: comm, clock: clk}
}

// Execute creates the product and returns its id. The baseline price is
// seeded from the initial price.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	price, err := domain.NewMoneyFromFloat(req.Price)
	if err != nil {
		return "", err
	}

	product, err := domain.NewProduct(
		uuid.New().String(),
		req.Name,
		req.Description,
		req.CategoryID,
		price,
		req.Stock,
		req.ImageURL,
		i.clock.Now(),
	)
	if err != nil {
		return "", err
	}

	mut, err := i.catalog.InsertMut(product)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.Add(mut)
	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, err)
	}
	return product.ID(), nil
}
