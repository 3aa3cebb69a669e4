package usecase_test

import (
	"context"
	"testing"
	"time"

	"lixishop/internal/apperr"
	"lixishop/internal/domain/model"
	"lixishop/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

// =====================
// ParseDateRange
// =====================

func TestParseDateRange_Empty(t *testing.T) {
	r, err := usecase.ParseDateRange("", "")
	assert.NoError(t, err)
	assert.Nil(t, r.From)
	assert.Nil(t, r.To)
}

func TestParseDateRange_Bounds(t *testing.T) {
	r, err := usecase.ParseDateRange("2026-01-20", "2026-01-21")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 20, 0, 0, 0, 0, time.Local), *r.From)
	//endDateの丸一日を含むよう、Toは翌日の頭
	assert.Equal(t, time.Date(2026, 1, 22, 0, 0, 0, 0, time.Local), *r.To)
}

func TestParseDateRange_Invalid(t *testing.T) {
	_, err := usecase.ParseDateRange("20/01/2026", "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = usecase.ParseDateRange("", "not-a-date")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestParseDateRange_Inverted(t *testing.T) {
	_, err := usecase.ParseDateRange("2026-02-01", "2026-01-01")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.ErrorContains(t, err, "startDate must not be after endDate")
}

// =====================
// OrderStatistics
// =====================

func statsTestOrders() []model.Order {
	return []model.Order{
		{
			ID: "o-1", Status: model.OrderStatusCompleted,
			TotalAmount: dec("100"), CreatedAt: day(2026, 1, 20),
			Items: []model.OrderItem{
				{ProductID: "p-1", ProductName: "Lì xì rồng vàng", Price: dec("50"), Quantity: 2},
			},
		},
		{
			ID: "o-2", Status: model.OrderStatusPending,
			TotalAmount: dec("50"), CreatedAt: day(2026, 1, 20),
			Items: []model.OrderItem{
				{ProductID: "p-2", ProductName: "Lì xì mèo thần tài", Price: dec("25"), Quantity: 2},
			},
		},
		{
			ID: "o-3", Status: model.OrderStatusCompleted,
			TotalAmount: dec("200"), CreatedAt: day(2026, 1, 21),
			Items: []model.OrderItem{
				{ProductID: "p-1", ProductName: "Lì xì rồng vàng", Price: dec("50"), Quantity: 4},
			},
		},
	}
}

func newStatsUsecase(orders []model.Order) *usecase.StatisticsUsecase {
	orderRepo := new(OrderRepoMock)
	orderRepo.On("List", mock.Anything, mock.Anything).Return(orders, nil)
	tx := &TxManagerFake{repos: &txReposFake{orders: orderRepo, items: new(OrderItemRepoMock)}}
	return usecase.NewStatisticsUsecase(tx)
}

func TestStatisticsUsecase_OrderStatistics(t *testing.T) {
	uc := newStatsUsecase(statsTestOrders())

	stats, err := uc.OrderStatistics(context.Background(), usecase.DateRange{})
	assert.NoError(t, err)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(dec("350")), "got %s", stats.TotalRevenue)

	assert.Equal(t, 1, stats.StatusBreakdown.Pending)
	assert.Equal(t, 2, stats.StatusBreakdown.Completed)
	//該当なしのステータスも0で埋まる
	assert.Equal(t, 0, stats.StatusBreakdown.Confirmed)
	assert.Equal(t, 0, stats.StatusBreakdown.Shipping)
	assert.Equal(t, 0, stats.StatusBreakdown.Cancelled)

	//日別売上は日付昇順
	assert.Len(t, stats.DailyRevenue, 2)
	assert.Equal(t, "2026-01-20", stats.DailyRevenue[0].Date)
	assert.True(t, stats.DailyRevenue[0].Revenue.Equal(dec("150")))
	assert.Equal(t, "2026-01-21", stats.DailyRevenue[1].Date)
	assert.True(t, stats.DailyRevenue[1].Revenue.Equal(dec("200")))
}

func TestStatisticsUsecase_OrderStatistics_Empty(t *testing.T) {
	uc := newStatsUsecase(nil)

	stats, err := uc.OrderStatistics(context.Background(), usecase.DateRange{})
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.Empty(t, stats.DailyRevenue)
	assert.Equal(t, usecase.StatusBreakdown{}, stats.StatusBreakdown)
}

// =====================
// ProductStatistics
// =====================

func TestStatisticsUsecase_ProductStatistics(t *testing.T) {
	uc := newStatsUsecase(statsTestOrders())

	stats, err := uc.ProductStatistics(context.Background(), usecase.DateRange{})
	assert.NoError(t, err)
	assert.Len(t, stats, 2)

	//売上の降順
	assert.Equal(t, "p-1", stats[0].ProductID)
	assert.Equal(t, "Lì xì rồng vàng", stats[0].ProductName)
	assert.Equal(t, int64(6), stats[0].TotalQuantity)
	assert.True(t, stats[0].TotalRevenue.Equal(dec("300")), "got %s", stats[0].TotalRevenue)
	assert.Equal(t, 2, stats[0].OrderCount)

	assert.Equal(t, "p-2", stats[1].ProductID)
	assert.Equal(t, int64(2), stats[1].TotalQuantity)
	assert.True(t, stats[1].TotalRevenue.Equal(dec("50")))
	assert.Equal(t, 1, stats[1].OrderCount)
}

// 商品マスタが消えていてもスナップショットの名前で集計される
func TestStatisticsUsecase_ProductStatistics_UsesSnapshotName(t *testing.T) {
	orders := []model.Order{
		{
			ID: "o-1", Status: model.OrderStatusCompleted,
			TotalAmount: dec("30"), CreatedAt: day(2026, 1, 5),
			Items: []model.OrderItem{
				{ProductID: "deleted-product", ProductName: "Lì xì cũ (đã xoá)", Price: dec("15"), Quantity: 2},
			},
		},
	}
	uc := newStatsUsecase(orders)

	stats, err := uc.ProductStatistics(context.Background(), usecase.DateRange{})
	assert.NoError(t, err)
	assert.Len(t, stats, 1)
	assert.Equal(t, "Lì xì cũ (đã xoá)", stats[0].ProductName)
}
