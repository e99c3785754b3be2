// Package create_category implements category creation.
package create_category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/committer"
)

// Request contains the data to create a category.
type Request struct {
	Name        string
	Description string
}

// Interactor handles the create category use case.
type Interactor struct {
	catalog   contracts.CatalogRepository
	committer contracts.Committer
}

// NewInteractor creates a new create category interactor.
func NewInteractor(catalog contracts.CatalogRepository, comm contracts.Committer) *Interactor {
	return &Interactor{catalog: catalog, committer: comm}
}

// Execute creates the category and returns its id.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	category, err := domain.NewCategory(uuid.New().String(), req.Name, req.Description)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.Add(i.catalog.InsertCategoryMut(category))
	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, err)
	}
	return category.ID(), nil
}
