// Package domain holds the order aggregate's value types.
package domain

import "errors"

// Order errors.
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrStoreUnavailable = errors.New("order store unavailable")
)

// Status is the fulfilment state of an order.
type Status string

// Valid order statuses, in fulfilment order.
const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
)

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered:
		return Status(raw), nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string { return string(s) }
