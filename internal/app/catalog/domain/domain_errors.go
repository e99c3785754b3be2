package domain

import "errors"

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound  = errors.New("product not found")
	ErrEmptyName        = errors.New("product name cannot be empty")
	ErrInvalidPrice     = errors.New("product price cannot be negative")
	ErrInvalidStock     = errors.New("product stock cannot be negative")
	ErrCategoryNotFound = errors.New("category not found")
	ErrEmptyCategory    = errors.New("category name cannot be empty")

	// Bulk pricing errors
	ErrInvalidParameter = errors.New("invalid pricing parameter")
	ErrEmptyHistory     = errors.New("no price change to undo")

	// Storage errors
	ErrStoreUnavailable = errors.New("catalog store unavailable")
	ErrMoneyOverflow    = errors.New("money value exceeds storage bounds")
)
