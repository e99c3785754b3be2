// Package contracts defines the dashboard query interfaces.
package contracts

import "context"

// StatsDTO holds the headline dashboard figures. Revenue covers orders
// that have been paid for, including shipped and delivered ones.
type StatsDTO struct {
	TotalProducts  int64
	TotalOrders    int64
	TotalCustomers int64
	TotalRevenue   float64
}

// ReadModel defines the read-only dashboard interface.
type ReadModel interface {
	Stats(ctx context.Context) (*StatsDTO, error)
}
