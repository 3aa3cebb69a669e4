package usecase

import (
	"context"
	"sort"
	"time"

	"lixishop/internal/apperr"
	"lixishop/internal/domain/model"
	repo "lixishop/internal/repository"

	"github.com/shopspring/decimal"
)

// 集計対象の作成日時範囲。Fromは日付の頭、Toは翌日の頭（未満比較）で、
// startDate/endDateはどちらも丸一日含む
type DateRange struct {
	From *time.Time
	To   *time.Time
}

const dateLayout = "2006-01-02"

// ParseDateRange はISO日付のクエリを検証して範囲に変換する。
// 片方だけの指定も可。start > end はValidationエラー
func ParseDateRange(startDate, endDate string) (DateRange, error) {
	var r DateRange

	if startDate != "" {
		t, err := time.ParseInLocation(dateLayout, startDate, time.Local)
		if err != nil {
			return DateRange{}, apperr.Validation("invalid startDate")
		}
		r.From = &t
	}
	if endDate != "" {
		t, err := time.ParseInLocation(dateLayout, endDate, time.Local)
		if err != nil {
			return DateRange{}, apperr.Validation("invalid endDate")
		}
		if r.From != nil && r.From.After(t) {
			return DateRange{}, apperr.Validation("startDate must not be after endDate")
		}
		end := t.AddDate(0, 0, 1)
		r.To = &end
	}
	return r, nil
}

type StatusBreakdown struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Shipping  int `json:"shipping"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type DailyRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type OrderStatistics struct {
	TotalOrders     int             `json:"total_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	StatusBreakdown StatusBreakdown `json:"status_breakdown"`
	DailyRevenue    []DailyRevenue  `json:"daily_revenue"`
}

type ProductStatistics struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	OrderCount    int             `json:"order_count"`
}

type StatisticsUsecase struct {
	tx repo.TransactionManager
}

func NewStatisticsUsecase(tx repo.TransactionManager) *StatisticsUsecase {
	return &StatisticsUsecase{tx: tx}
}

func (u *StatisticsUsecase) loadOrders(ctx context.Context, r DateRange) ([]model.Order, error) {
	var orders []model.Order
	err := u.tx.WithinTx(ctx, func(tr repo.TxRepos) error {
		var err error
		orders, err = tr.Orders().List(ctx, repo.OrderListFilter{From: r.From, To: r.To})
		if err != nil {
			return apperr.Persistence("failed to load orders for statistics", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderStatistics は範囲内の注文から件数・売上・ステータス内訳・
// 日別売上を計算する。永続化はしない派生データ
func (u *StatisticsUsecase) OrderStatistics(ctx context.Context, r DateRange) (OrderStatistics, error) {
	orders, err := u.loadOrders(ctx, r)
	if err != nil {
		return OrderStatistics{}, err
	}
	return computeOrderStatistics(orders), nil
}

func computeOrderStatistics(orders []model.Order) OrderStatistics {
	stats := OrderStatistics{
		TotalOrders:  len(orders),
		TotalRevenue: decimal.Zero,
		DailyRevenue: []DailyRevenue{},
	}

	byStatus := make(map[model.OrderStatus]int, 5)
	byDay := make(map[string]decimal.Decimal)

	for _, o := range orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount)
		byStatus[o.Status]++

		// 日付キーはローカルタイムの暦日
		day := o.CreatedAt.Local().Format(dateLayout)
		byDay[day] = byDay[day].Add(o.TotalAmount)
	}

	stats.StatusBreakdown = StatusBreakdown{
		Pending:   byStatus[model.OrderStatusPending],
		Confirmed: byStatus[model.OrderStatusConfirmed],
		Shipping:  byStatus[model.OrderStatusShipping],
		Completed: byStatus[model.OrderStatusCompleted],
		Cancelled: byStatus[model.OrderStatusCancelled],
	}

	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	// YYYY-MM-DDは辞書順＝日付順
	sort.Strings(days)
	for _, d := range days {
		stats.DailyRevenue = append(stats.DailyRevenue, DailyRevenue{Date: d, Revenue: byDay[d]})
	}

	return stats
}

// ProductStatistics は範囲内の明細を商品ごとにまとめる。
// グルーピングはスナップショットのproduct_id/名前で行うので、
// 削除・改名された商品も注文時の名前で出てくる
func (u *StatisticsUsecase) ProductStatistics(ctx context.Context, r DateRange) ([]ProductStatistics, error) {
	orders, err := u.loadOrders(ctx, r)
	if err != nil {
		return nil, err
	}
	return computeProductStatistics(orders), nil
}

func computeProductStatistics(orders []model.Order) []ProductStatistics {
	type rollup struct {
		name     string
		quantity int64
		revenue  decimal.Decimal
		orders   map[string]struct{}
	}

	byProduct := make(map[string]*rollup)

	for _, o := range orders {
		for _, it := range o.Items {
			ru, ok := byProduct[it.ProductID]
			if !ok {
				ru = &rollup{
					name:    it.ProductName,
					revenue: decimal.Zero,
					orders:  make(map[string]struct{}),
				}
				byProduct[it.ProductID] = ru
			}
			ru.quantity += it.Quantity
			ru.revenue = ru.revenue.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
			ru.orders[o.ID] = struct{}{}
		}
	}

	out := make([]ProductStatistics, 0, len(byProduct))
	for id, ru := range byProduct {
		out = append(out, ProductStatistics{
			ProductID:     id,
			ProductName:   ru.name,
			TotalQuantity: ru.quantity,
			TotalRevenue:  ru.revenue,
			OrderCount:    len(ru.orders),
		})
	}

	// 売上の降順
	sort.Slice(out, func(i, j int) bool {
		return out[i].TotalRevenue.GreaterThan(out[j].TotalRevenue)
	})
	return out
}
