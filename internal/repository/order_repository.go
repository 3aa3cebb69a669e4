package repository

import (
	"context"
	"errors"
	"time"

	"lixishop/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 楽観ロックの版数が合わなかった（他の更新が先に入った）
var ErrVersionConflict = errors.New("version conflict")

type OrderListFilter struct {
	// ステータス絞り込み（空なら全件）
	Status string
	// 顧客名/電話/メールの部分一致（大文字小文字を区別しない）
	Search string
	// 作成日時の範囲。Fromは以上、Toは未満
	From *time.Time
	To   *time.Time
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) error
	// 明細込みで1件取得
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	// 明細込みで一覧取得（新しい順）
	List(ctx context.Context, f OrderListFilter) ([]model.Order, error)
	// fromVersionが一致する行だけ更新する。0件なら存在有無を調べて
	// ErrNotFound / ErrVersionConflict を返す
	UpdateStatusVersioned(ctx context.Context, orderID string, status model.OrderStatus, fromVersion int64) error
}
