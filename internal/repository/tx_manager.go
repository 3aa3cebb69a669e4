package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがerrorを返したら必ずロールバックされる
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
