package builder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/reports/contracts"
)

func TestProductsWorkbook(t *testing.T) {
	rows := []*contracts.ProductRow{
		{
			ProductID: "p1",
			Name:      "Widget",
			Category:  "Electronics",
			Price:     19.99,
			Stock:     42,
			CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	f, err := Products(rows)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Products", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Name", name)

	got, err := f.GetCellValue("Products", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Widget", got)

	price, err := f.GetCellValue("Products", "D2")
	require.NoError(t, err)
	assert.Equal(t, "19.99", price)
}

func TestOrdersWorkbook(t *testing.T) {
	rows := []*contracts.OrderRow{
		{
			OrderID:   "o1",
			UserEmail: "alice@example.com",
			Items:     "Widget x2, Gadget x1",
			Total:     64.97,
			Status:    "paid",
			CreatedAt: time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC),
		},
	}

	f, err := Orders(rows)
	require.NoError(t, err)
	defer f.Close()

	items, err := f.GetCellValue("Orders", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Widget x2, Gadget x1", items)

	status, err := f.GetCellValue("Orders", "E2")
	require.NoError(t, err)
	assert.Equal(t, "paid", status)
}

func TestEmptyWorkbookKeepsHeader(t *testing.T) {
	f, err := Products(nil)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Products", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Product ID", header)
}
