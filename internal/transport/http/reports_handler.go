package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/light-bringer/backoffice-service/internal/app/reports/builder"
	"github.com/light-bringer/backoffice-service/internal/app/reports/contracts"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsHandler streams xlsx exports.
type ReportsHandler struct {
	rows contracts.RowSource
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(rows contracts.RowSource) *ReportsHandler {
	return &ReportsHandler{rows: rows}
}

// Products streams the product export workbook.
func (h *ReportsHandler) Products(c *gin.Context) {
	rows, err := h.rows.ProductRows(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	f, err := builder.Products(rows)
	if err != nil {
		respondError(c, err)
		return
	}
	h.stream(c, f, "products")
}

// Orders streams the order export workbook.
func (h *ReportsHandler) Orders(c *gin.Context) {
	rows, err := h.rows.OrderRows(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	f, err := builder.Orders(rows)
	if err != nil {
		respondError(c, err)
		return
	}
	h.stream(c, f, "orders")
}

func (h *ReportsHandler) stream(c *gin.Context, f *excelize.File, name string) {
	defer f.Close()

	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
