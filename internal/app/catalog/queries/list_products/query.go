package list_products

import (
	"context"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
)

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute retrieves a page of products. Page and page size defaults are
// applied by the read model.
func (q *Query) Execute(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	if filter == nil {
		filter = &contracts.ListFilter{}
	}
	return q.readModel.ListProducts(ctx, filter)
}
