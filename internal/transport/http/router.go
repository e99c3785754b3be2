// Package http wires the REST surface with gin.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/backoffice-service/internal/infrastructure/config"
)

// Handlers aggregates the per-area handlers the router mounts.
type Handlers struct {
	Products   *ProductsHandler
	Pricing    *PricingHandler
	Categories *CategoriesHandler
	Orders     *OrdersHandler
	Dashboard  *DashboardHandler
	Reports    *ReportsHandler
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(cfg *config.Config, log *zap.Logger, h *Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(Recovery(log))
	r.Use(RequestLogger(log))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	} else {
		// Development fallback; production validation rejects wildcards.
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", h.Products.List)
			products.POST("", h.Products.Create)
			products.POST("/bulk-update-prices", h.Pricing.BulkUpdatePrices)
			products.POST("/bulk-discount", h.Pricing.BulkDiscount)
			products.POST("/reset-prices", h.Pricing.ResetPrices)
			products.POST("/undo-last-price-change", h.Pricing.UndoLastPriceChange)
			products.GET("/price-history", h.Pricing.PriceHistory)
			products.PUT("/:id", h.Products.Update)
			products.DELETE("/:id", h.Products.Delete)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", h.Orders.List)
			orders.PUT("/:id/status", h.Orders.UpdateStatus)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", h.Categories.List)
			categories.POST("", h.Categories.Create)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", h.Dashboard.Stats)
			dashboard.GET("/last-orders", h.Dashboard.LastOrders)
			dashboard.GET("/active-times", h.Dashboard.ActiveTimes)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/products", h.Reports.Products)
			reports.GET("/orders", h.Reports.Orders)
		}
	}

	return r
}
