package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
)

// CatalogRepository defines the interface for product persistence.
// Write methods return mutations without applying them; usecases collect
// the mutations into a commit plan and apply the plan atomically.
type CatalogRepository interface {
	// GetAllProducts returns the full catalog snapshot ordered by product id.
	// Bulk pricing iterates this order when building batch entries.
	GetAllProducts(ctx context.Context) ([]*domain.Product, error)

	// GetByID retrieves a product by ID, reconstructing the domain aggregate.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// InsertMut creates a mutation for inserting a new product.
	// Returns an error if money values exceed int64 storage bounds.
	InsertMut(product *domain.Product) (*spanner.Mutation, error)

	// UpdateMut creates a mutation rewriting a product's mutable fields.
	UpdateMut(product *domain.Product) (*spanner.Mutation, error)

	// UpdatePriceMut creates a mutation that writes only the current price.
	UpdatePriceMut(productID string, price *domain.Money) (*spanner.Mutation, error)

	// DeleteMut creates a mutation for deleting a product.
	DeleteMut(productID string) *spanner.Mutation

	// InsertCategoryMut creates a mutation for inserting a category.
	InsertCategoryMut(category *domain.Category) *spanner.Mutation
}
