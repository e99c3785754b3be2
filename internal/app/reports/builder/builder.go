// Package builder renders report rows into xlsx workbooks.
package builder

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/light-bringer/backoffice-service/internal/app/reports/contracts"
)

const timeLayout = "2006-01-02 15:04"

// Products builds the product export workbook. The caller owns the file
// and must Close it.
func Products(rows []*contracts.ProductRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Products"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Product ID", "Name", "Category", "Price", "Stock", "Created At"}
	if err := writeHeader(f, sheet, headers); err != nil {
		return nil, err
	}

	for n, row := range rows {
		cells := []interface{}{
			row.ProductID,
			row.Name,
			row.Category,
			row.Price,
			row.Stock,
			row.CreatedAt.Format(timeLayout),
		}
		if err := writeRow(f, sheet, n+2, cells); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Orders builds the order export workbook.
func Orders(rows []*contracts.OrderRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Orders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Order ID", "Customer", "Items", "Total", "Status", "Created At"}
	if err := writeHeader(f, sheet, headers); err != nil {
		return nil, err
	}

	for n, row := range rows {
		cells := []interface{}{
			row.OrderID,
			row.UserEmail,
			row.Items,
			row.Total,
			row.Status,
			row.CreatedAt.Format(timeLayout),
		}
		if err := writeRow(f, sheet, n+2, cells); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	for n, h := range headers {
		cell, err := excelize.CoordinatesToCellName(n+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to style header cell: %w", err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []interface{}) error {
	for n, v := range cells {
		cell, err := excelize.CoordinatesToCellName(n+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write report cell: %w", err)
		}
	}
	return nil
}
