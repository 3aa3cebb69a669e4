package repository

import (
	"context"

	"lixishop/internal/domain/model"
)

type CommentListFilter struct {
	ProductID string
	// 名前/本文の部分一致
	Search string
	Page   int
	Limit  int
}

type CommentRepository interface {
	Create(ctx context.Context, comment model.Comment) error
	FindByID(ctx context.Context, commentID string) (model.Comment, error)
	// 公開側：非表示を除いた新しい順。totalは絞り込み後の全件数
	ListVisibleByProduct(ctx context.Context, productID string, page, limit int) ([]model.Comment, int64, error)
	// 管理側：非表示も含む
	ListAdmin(ctx context.Context, f CommentListFilter) ([]model.Comment, int64, error)
	UpdateHidden(ctx context.Context, commentID string, hidden bool) error
	Delete(ctx context.Context, commentID string) error
}
