package usecase

import (
	"time"

	"lixishop/internal/domain/model"
)

// IDの生成をusecaseから切り離す（テストで固定値を渡せるように）
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// 注文確定後の通知の約束。送信はベストエフォートで、
// 失敗しても注文作成の結果には影響させない
type OrderNotifier interface {
	NotifyOrderCreated(order model.Order, items []model.OrderItem)
}
