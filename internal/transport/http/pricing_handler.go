package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
)

type bulkPricer interface {
	Execute(ctx context.Context, param float64) (int, error)
}

type bulkRunner interface {
	Execute(ctx context.Context) (int, error)
}

type historyReader interface {
	Execute(ctx context.Context, limit int) ([]contracts.LedgerEntryRecord, error)
}

// PricingHandler exposes the bulk pricing operations and the price history.
type PricingHandler struct {
	percentage bulkPricer
	discount   bulkPricer
	reset      bulkRunner
	undo       bulkRunner
	history    historyReader
}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler(percentage, discount bulkPricer, reset, undo bulkRunner, history historyReader) *PricingHandler {
	return &PricingHandler{
		percentage: percentage,
		discount:   discount,
		reset:      reset,
		undo:       undo,
		history:    history,
	}
}

type percentRequest struct {
	Percent *float64 `json:"percent" binding:"required"`
}

// BulkUpdatePrices applies a percentage change to every product.
func (h *PricingHandler) BulkUpdatePrices(c *gin.Context) {
	var req percentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "percent is required"})
		return
	}

	updated, err := h.percentage.Execute(c.Request.Context(), *req.Percent)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"updated": updated,
		"message": "prices updated",
	})
}

type discountRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// BulkDiscount subtracts a fixed amount from every product price.
func (h *PricingHandler) BulkDiscount(c *gin.Context) {
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount is required"})
		return
	}

	updated, err := h.discount.Execute(c.Request.Context(), *req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"updated": updated,
		"message": "discount applied",
	})
}

// ResetPrices restores every product to its baseline price.
func (h *PricingHandler) ResetPrices(c *gin.Context) {
	updated, err := h.reset.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"updated": updated,
		"message": "prices reset",
	})
}

// UndoLastPriceChange reverses the most recent bulk pricing operation.
func (h *PricingHandler) UndoLastPriceChange(c *gin.Context) {
	reverted, err := h.undo.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reverted": reverted,
		"message":  "last price change undone",
	})
}

type historyEntryResponse struct {
	BatchID     string  `json:"batch_id"`
	Kind        string  `json:"kind"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	OldPrice    float64 `json:"old_price"`
	NewPrice    float64 `json:"new_price"`
	ChangedAt   string  `json:"changed_at"`
}

// PriceHistory returns the flattened recent price changes, newest first.
func (h *PricingHandler) PriceHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := h.history.Execute(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	history := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		history = append(history, historyEntryResponse{
			BatchID:     e.BatchID,
			Kind:        string(e.Kind),
			ProductID:   e.ProductID,
			ProductName: e.ProductName,
			OldPrice:    e.OldPrice.Float64(),
			NewPrice:    e.NewPrice.Float64(),
			ChangedAt:   e.ChangedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}
