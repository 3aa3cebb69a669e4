package export

import (
	"lixishop/internal/usecase"

	"github.com/xuri/excelize/v2"
)

// 集計結果をそのままセルに写すだけの整形層。
// 再集計や丸めはしない（表示フォーマットのみ）

const (
	sheetOverview = "Tổng quan"
	sheetDaily    = "Doanh thu theo ngày"
	sheetProducts = "Sản phẩm"
	sheetOrders   = "Đơn hàng"
)

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// StatisticsWorkbook は集計を3シート構成のブックに落とす：
// 概要 / 日別売上 / 商品別
func StatisticsWorkbook(stats usecase.OrderStatistics, products []usecase.ProductStatistics) (*excelize.File, error) {
	f := excelize.NewFile()

	// Sheet1を概要に改名して先頭にする
	if err := f.SetSheetName("Sheet1", sheetOverview); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(sheetOverview, "A", "A", 30)
	_ = f.SetColWidth(sheetOverview, "B", "B", 20)

	rows := [][]interface{}{
		{"Chỉ số", "Giá trị"},
		{"Tổng số đơn hàng", stats.TotalOrders},
		{"Tổng doanh thu", stats.TotalRevenue.InexactFloat64()},
		{""},
		{"Đơn hàng theo trạng thái", ""},
		{"  - Chờ xác nhận", stats.StatusBreakdown.Pending},
		{"  - Đã xác nhận", stats.StatusBreakdown.Confirmed},
		{"  - Đang giao", stats.StatusBreakdown.Shipping},
		{"  - Hoàn thành", stats.StatusBreakdown.Completed},
		{"  - Đã hủy", stats.StatusBreakdown.Cancelled},
	}
	for i, r := range rows {
		if err := setRow(f, sheetOverview, i+1, r...); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(sheetDaily); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(sheetDaily, "A", "A", 15)
	_ = f.SetColWidth(sheetDaily, "B", "B", 20)
	if err := setRow(f, sheetDaily, 1, "Ngày", "Doanh thu"); err != nil {
		return nil, err
	}
	for i, d := range stats.DailyRevenue {
		if err := setRow(f, sheetDaily, i+2, d.Date, d.Revenue.InexactFloat64()); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(sheetProducts); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(sheetProducts, "A", "A", 30)
	_ = f.SetColWidth(sheetProducts, "B", "D", 15)
	if err := setRow(f, sheetProducts, 1, "Tên sản phẩm", "Số lượng bán", "Số đơn hàng", "Doanh thu"); err != nil {
		return nil, err
	}
	for i, p := range products {
		err := setRow(f, sheetProducts, i+2,
			p.ProductName, p.TotalQuantity, p.OrderCount, p.TotalRevenue.InexactFloat64())
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

// OrdersWorkbook は注文一覧を1行1注文で落とす。日時はローカル表記
func OrdersWorkbook(orders []usecase.OrderOutput) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetOrders); err != nil {
		return nil, err
	}
	widths := []float64{36, 20, 25, 15, 40, 15, 15, 20, 30}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetColWidth(sheetOrders, col, col, w)
	}

	header := []interface{}{
		"Mã đơn hàng", "Khách hàng", "Email", "Số điện thoại",
		"Địa chỉ", "Tổng tiền", "Trạng thái", "Ngày đặt", "Ghi chú",
	}
	if err := setRow(f, sheetOrders, 1, header...); err != nil {
		return nil, err
	}

	for i, o := range orders {
		err := setRow(f, sheetOrders, i+2,
			o.ID,
			o.CustomerName,
			o.Email,
			o.Phone,
			o.Address,
			o.TotalAmount.InexactFloat64(),
			o.Status,
			o.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			o.Note,
		)
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}
