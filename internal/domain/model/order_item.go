package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。商品名と単価は注文時点のスナップショットで、
// 商品側が後から改名・改価されても変わらない
type OrderItem struct {
	ID          string          `gorm:"primaryKey;type:uuid" json:"id"`
	OrderID     string          `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   string          `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string          `gorm:"type:varchar(255);not null" json:"product_name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}

// OrderItemsTotal は明細の合計金額（price×quantityの和）。
// 通貨の丸め誤差を避けるため固定小数で計算する
func OrderItemsTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}
