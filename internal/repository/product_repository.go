package repository

import (
	"context"

	"lixishop/internal/domain/model"
)

type ProductListFilter struct {
	// 商品名の部分一致
	Search string
	// nilなら全件、true/falseでis_active絞り込み
	ActiveOnly *bool
}

type ProductRepository interface {
	FindByID(ctx context.Context, productID string) (model.Product, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)
	List(ctx context.Context, f ProductListFilter) ([]model.Product, error)
	Create(ctx context.Context, p model.Product) error
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, productID string) error
}
