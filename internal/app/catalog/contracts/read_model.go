package contracts

import (
	"context"
	"time"
)

// ProductDTO is a data transfer object for product queries.
// Prices are approximate float64 values for display only.
type ProductDTO struct {
	ProductID     string
	Name          string
	Description   string
	CategoryID    string
	Price         float64
	BaselinePrice float64
	Stock         int64
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CategoryDTO is a data transfer object for category queries.
type CategoryDTO struct {
	CategoryID  string
	Name        string
	Description string
}

// ListFilter defines pagination and search options for listing products.
// Search terms are matched as case-insensitive substrings across id, name,
// description, price, stock and category; every term must match.
type ListFilter struct {
	Search  string
	Page    int
	PerPage int
}

// ListResult contains one page of products plus the unpaged total.
type ListResult struct {
	Products []*ProductDTO
	Total    int64
}

// ReadModel defines the read-only query interface for the catalog.
// Read models bypass the domain layer for performance.
type ReadModel interface {
	// ListProducts retrieves a page of products with filtering.
	ListProducts(ctx context.Context, filter *ListFilter) (*ListResult, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]*CategoryDTO, error)
}
