package export

import (
	"testing"
	"time"

	"lixishop/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatisticsWorkbook(t *testing.T) {
	stats := usecase.OrderStatistics{
		TotalOrders:  3,
		TotalRevenue: decimal.RequireFromString("350"),
		StatusBreakdown: usecase.StatusBreakdown{
			Pending:   1,
			Completed: 2,
		},
		DailyRevenue: []usecase.DailyRevenue{
			{Date: "2026-01-20", Revenue: decimal.RequireFromString("150")},
			{Date: "2026-01-21", Revenue: decimal.RequireFromString("200")},
		},
	}
	products := []usecase.ProductStatistics{
		{ProductID: "p-1", ProductName: "Lì xì rồng vàng", TotalQuantity: 6, TotalRevenue: decimal.RequireFromString("300"), OrderCount: 2},
	}

	f, err := StatisticsWorkbook(stats, products)
	assert.NoError(t, err)
	defer f.Close()

	//3シート構成
	assert.Equal(t, []string{sheetOverview, sheetDaily, sheetProducts}, f.GetSheetList())

	v, err := f.GetCellValue(sheetOverview, "B2")
	assert.NoError(t, err)
	assert.Equal(t, "3", v)

	v, _ = f.GetCellValue(sheetOverview, "B3")
	assert.Equal(t, "350", v)

	v, _ = f.GetCellValue(sheetDaily, "A2")
	assert.Equal(t, "2026-01-20", v)
	v, _ = f.GetCellValue(sheetDaily, "B3")
	assert.Equal(t, "200", v)

	v, _ = f.GetCellValue(sheetProducts, "A2")
	assert.Equal(t, "Lì xì rồng vàng", v)
	v, _ = f.GetCellValue(sheetProducts, "D2")
	assert.Equal(t, "300", v)
}

func TestOrdersWorkbook(t *testing.T) {
	orders := []usecase.OrderOutput{
		{
			ID:           "123e4567-e89b-12d3-a456-426614174000",
			CustomerName: "Nguyễn Văn A",
			Email:        "a@example.com",
			Phone:        "0901234567",
			Address:      "123 Lê Lợi",
			Status:       "pending",
			TotalAmount:  decimal.RequireFromString("41.50"),
			CreatedAt:    time.Date(2026, 1, 20, 10, 30, 0, 0, time.Local),
			Note:         "Giao giờ hành chính",
		},
	}

	f, err := OrdersWorkbook(orders)
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetOrders}, f.GetSheetList())

	v, err := f.GetCellValue(sheetOrders, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Mã đơn hàng", v)

	v, _ = f.GetCellValue(sheetOrders, "A2")
	assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", v)
	v, _ = f.GetCellValue(sheetOrders, "B2")
	assert.Equal(t, "Nguyễn Văn A", v)
	v, _ = f.GetCellValue(sheetOrders, "F2")
	assert.Equal(t, "41.5", v)
	v, _ = f.GetCellValue(sheetOrders, "G2")
	assert.Equal(t, "pending", v)
	v, _ = f.GetCellValue(sheetOrders, "H2")
	assert.Equal(t, "2026-01-20 10:30:00", v)
}

func TestStatisticsWorkbook_EmptyData(t *testing.T) {
	f, err := StatisticsWorkbook(usecase.OrderStatistics{TotalRevenue: decimal.Zero}, nil)
	assert.NoError(t, err)
	defer f.Close()

	v, _ := f.GetCellValue(sheetOverview, "B2")
	assert.Equal(t, "0", v)
}
