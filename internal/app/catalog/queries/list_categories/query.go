package list_categories

import (
	"context"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
)

// Query handles the list categories query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list categories query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute retrieves all categories.
func (q *Query) Execute(ctx context.Context) ([]*contracts.CategoryDTO, error) {
	return q.readModel.ListCategories(ctx)
}
