package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	dashcontracts "github.com/light-bringer/backoffice-service/internal/app/dashboard/contracts"
	orderscontracts "github.com/light-bringer/backoffice-service/internal/app/orders/contracts"
)

type statsReader interface {
	Stats(ctx context.Context) (*dashcontracts.StatsDTO, error)
}

type recentOrdersReader interface {
	LastOrders(ctx context.Context, limit int) ([]*orderscontracts.OrderDTO, error)
	ActiveTimes(ctx context.Context) ([]*orderscontracts.HourActivity, error)
}

// DashboardHandler exposes the dashboard aggregates.
type DashboardHandler struct {
	stats  statsReader
	orders recentOrdersReader
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(stats statsReader, orders recentOrdersReader) *DashboardHandler {
	return &DashboardHandler{stats: stats, orders: orders}
}

// Stats returns the headline dashboard counters.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_products":  stats.TotalProducts,
		"total_orders":    stats.TotalOrders,
		"total_customers": stats.TotalCustomers,
		"total_revenue":   stats.TotalRevenue,
	})
}

// LastOrders returns the five most recent orders.
func (h *DashboardHandler) LastOrders(c *gin.Context) {
	orders, err := h.orders.LastOrders(c.Request.Context(), 5)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderJSON(o))
	}
	c.JSON(http.StatusOK, gin.H{"orders": out})
}

// ActiveTimes returns order counts per hour of day.
func (h *DashboardHandler) ActiveTimes(c *gin.Context) {
	hours, err := h.orders.ActiveTimes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(hours))
	for _, hr := range hours {
		out = append(out, gin.H{"hour": hr.Hour, "orders": hr.Count})
	}
	c.JSON(http.StatusOK, gin.H{"active_times": out})
}
