package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/backoffice-service/internal/app/orders/contracts"
)

type orderLister interface {
	ListOrders(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error)
}

type statusUpdater interface {
	Execute(ctx context.Context, orderID, rawStatus string) error
}

// OrdersHandler exposes order listing and status transitions.
type OrdersHandler struct {
	list         orderLister
	updateStatus statusUpdater
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(list orderLister, updateStatus statusUpdater) *OrdersHandler {
	return &OrdersHandler{list: list, updateStatus: updateStatus}
}

// List returns one page of orders.
func (h *OrdersHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	result, err := h.list.ListOrders(c.Request.Context(), &contracts.ListFilter{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	orders := make([]gin.H, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, orderJSON(o))
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":   orders,
		"total":    result.Total,
		"page":     page,
		"per_page": perPage,
	})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves an order to a new status.
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	if err := h.updateStatus.Execute(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
}

func orderJSON(o *contracts.OrderDTO) gin.H {
	return gin.H{
		"order_id":   o.OrderID,
		"user_id":    o.UserID,
		"user_email": o.UserEmail,
		"total":      o.Total,
		"status":     o.Status,
		"created_at": o.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
